package grid2d

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid2d: input grid must have at least one row and one column")
	// ErrMalformedInput indicates text that cannot be parsed into a grid.
	ErrMalformedInput = errors.New("grid2d: malformed input")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedInput)
	// ErrOutOfBounds indicates a point outside the grid.
	ErrOutOfBounds = errors.New("grid2d: point out of bounds")
)
