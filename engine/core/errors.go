package core

import (
	"errors"
)

// Hard failures of the texture subsystem. Numerical edge cases (singular
// matrices, zero-length normalization) never surface as errors; callers get
// an unchanged value and, where it matters, a bool.
var (
	ErrInvalidPixelFormat = errors.New("invalid pixel format")
	ErrInvalidBufferSize  = errors.New("invalid buffer size")
	ErrInvalidMipLevel    = errors.New("invalid mip level")
	ErrNoBaseImage        = errors.New("base image not provided")
	ErrUnknown            = errors.New("unknown")
)
