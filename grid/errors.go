package grid

import "errors"

// ErrOutOfBounds indicates a (x, y) access fell outside the grid's rectangle.
var ErrOutOfBounds = errors.New("grid: coordinates out of bounds")

// ErrDimensionMismatch indicates a construction call received a width or
// height that is not positive.
var ErrDimensionMismatch = errors.New("grid: width and height must be positive")
