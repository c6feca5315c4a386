package gridgraph

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGrid is the umbrella for structural grid problems.
	// Both ErrEmptyGrid and ErrNonRectangular match it with errors.Is.
	ErrInvalidGrid = errors.New("gridgraph: invalid grid")
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrInvalidGrid)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrInvalidGrid)
	// ErrPointOutOfBounds indicates a point outside the grid dimensions.
	ErrPointOutOfBounds = errors.New("gridgraph: point out of bounds")
	// ErrInvalidDirection indicates a Direction outside Up..Down.
	ErrInvalidDirection = errors.New("gridgraph: invalid direction")
)
