package easing

import "errors"

var (
	ErrUnknownEasing = errors.New("unknown easing")
	ErrInvalidBezier = errors.New("invalid bezier control points")
	ErrInvalidLut    = errors.New("invalid look-up table size")
)
