package terrain

import "errors"

var (
	// ErrShapeMismatch indicates input layers of different dimensions.
	ErrShapeMismatch = errors.New("terrain: input layers differ in size")
	// ErrInvalidArea indicates a playable area that does not fit the grid.
	ErrInvalidArea = errors.New("terrain: invalid playable area")
	// ErrUnknownMapType indicates a map type selector outside the known set.
	ErrUnknownMapType = errors.New("terrain: unknown map type")
)
