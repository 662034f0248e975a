package grid

import "errors"

// Errors returned by grid operations.
var (
	// ErrInvalidSize indicates a map was created with a non-positive size.
	ErrInvalidSize = errors.New("invalid map size")

	// ErrOutOfBounds indicates a coordinate outside the map.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)
