package pathfind

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no columns or no rows.
	ErrEmptyGrid = errors.New("pathfind: grid must have at least one column and one row")
	// ErrNonRectangular indicates columns of differing lengths.
	ErrNonRectangular = errors.New("pathfind: all columns must have the same length")
	// ErrNegativeCost indicates a cell with a negative cost.
	ErrNegativeCost = errors.New("pathfind: cell cost must not be negative")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("pathfind: coordinate out of bounds")
	// ErrShapeMismatch indicates a replacement grid with different dimensions.
	ErrShapeMismatch = errors.New("pathfind: grid dimensions differ")
	// ErrInvalidInfluence indicates a non-positive normal influence.
	ErrInvalidInfluence = errors.New("pathfind: normal influence must be positive")
)
