package world

import "errors"

var (
	// ErrInvalidDimension is returned when a width, height or size is not positive.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrOutOfBounds is returned when a cell access falls outside the grid.
	ErrOutOfBounds = errors.New("out of bounds")
)
