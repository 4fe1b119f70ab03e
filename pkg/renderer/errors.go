package renderer

import "errors"

var (
	ErrInvalidMode    = errors.New("renderer: unknown scheduling mode")
	ErrInvalidWorkers = errors.New("renderer: worker count must not be negative")
	ErrInterrupted    = errors.New("renderer: interrupted while rendering")
)
