package scene

import "errors"

var (
	ErrInvalidSize     = errors.New("scene: width and height must be positive")
	ErrInvalidTileSize = errors.New("scene: tile size must be positive")
	ErrInvalidSampling = errors.New("scene: antialiasing, bounce limit and iterations must be at least 1")
	ErrNoCamera        = errors.New("scene: no camera defined")
	ErrInvalidFloor    = errors.New("scene: checkerboard size must be at least 1")
	ErrInvalidMaterial = errors.New("scene: invalid material")
	ErrMissingMaterial = errors.New("scene: body without material")
	ErrUnknownScene    = errors.New("scene: unknown scene")
)
