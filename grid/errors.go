package grid

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates an unchecked access outside the grid.
	ErrOutOfBounds = errors.New("grid: point out of bounds")
	// ErrBadCell indicates an input character that cannot be decoded.
	ErrBadCell = errors.New("grid: invalid cell")
	// ErrBadDirection indicates a rune that does not name a direction.
	ErrBadDirection = errors.New("grid: invalid direction")
)
