package terrain

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("terrain: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("terrain: all rows must have the same length")
	// ErrUnknownKind indicates a kind outside the terrain catalog.
	ErrUnknownKind = errors.New("terrain: unknown terrain kind")
	// ErrOutOfBounds indicates a coordinate outside the grid extents.
	ErrOutOfBounds = errors.New("terrain: coordinate out of bounds")
)
