package keyframe

import "errors"

var (
	ErrNoKeyframes  = errors.New("there are no keyframes")
	ErrNilKeyframe  = errors.New("nil keyframe")
	ErrInvalidRange = errors.New("invalid keyframe progress range")
	ErrUnordered    = errors.New("keyframes out of order")
	ErrNilResolver  = errors.New("nil resolver")
)
