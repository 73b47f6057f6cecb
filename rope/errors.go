package rope

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds indicates Get/Set addressed a cell outside [0, Rows) x
// [0, Cols), or Get was called on Empty.
var ErrOutOfBounds = errors.New("rope: index out of bounds")

// ErrShapeMismatch indicates HCat/VCat/Zip/HFilter/VFilter were given
// shapes that disagree on the dimension that must match. (Equals does
// not return it; it reports differing shapes as false.)
var ErrShapeMismatch = errors.New("rope: shape mismatch")

// ErrInvalidArgument indicates a malformed argument, such as
// FromFlatArray receiving a slice whose length isn't a multiple of the
// requested width.
var ErrInvalidArgument = errors.New("rope: invalid argument")

// wrapShape formats a shape-mismatch error for the given caller and
// the two conflicting extents.
func wrapShape(op string, got, want int) error {
	return fmt.Errorf("%s: %d != %d: %w", op, got, want, ErrShapeMismatch)
}
