package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter below the shape's minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices for shape")
	// ErrBadDimensions indicates a non-positive grid dimension.
	ErrBadDimensions = errors.New("builder: grid dimensions must be positive")
)
