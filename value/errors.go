package value

import "errors"

var ErrUnknownColorSpace = errors.New("unknown colour space")
