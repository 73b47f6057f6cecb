package tile

import "errors"

// ErrOutOfBounds indicates a row or column index outside [0, Rows) x [0, Cols).
var ErrOutOfBounds = errors.New("tile: index out of bounds")

// ErrShapeMismatch indicates two tiles were combined despite disagreeing on
// the dimension that must be shared (rows for HCat, cols for VCat).
var ErrShapeMismatch = errors.New("tile: shape mismatch")

// ErrNonRectangular indicates FromRows was given rows of differing lengths.
var ErrNonRectangular = errors.New("tile: rows must all have the same length")
