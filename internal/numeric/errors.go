package numeric

import "errors"

// Domain errors for grid construction.
var (
	// ErrEmptyGrid indicates a grid with no samples was requested.
	ErrEmptyGrid = errors.New("numeric: grid needs at least one point")

	// ErrShapeMismatch indicates two matrices that should share a shape do not.
	ErrShapeMismatch = errors.New("numeric: matrix shape mismatch")
)
