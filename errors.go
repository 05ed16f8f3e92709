package asciitorus

import "errors"

var (
	ErrInvalidResolution = errors.New("invalid mesh resolution")
	ErrInvalidRadius     = errors.New("invalid torus radius")
	ErrInvalidGrid       = errors.New("invalid grid size")
	ErrEmptyPalette      = errors.New("palette has no symbols")
	ErrInvalidDivisor    = errors.New("invalid depth divisor")
	ErrZeroLight         = errors.New("light vector has zero length")
	ErrUnknownShading    = errors.New("unknown shading mode")
	ErrInvalidDelay      = errors.New("frame delay must be positive")
)
