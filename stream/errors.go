package stream

import "errors"

var (
	ErrFrameTooLarge = errors.New("frame too large")
	ErrInvalidConfig = errors.New("invalid config")
	ErrNoClips       = errors.New("no clips")
)
