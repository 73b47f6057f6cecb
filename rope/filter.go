package rope

import (
	"fmt"

	"github.com/katalvlaran/quadrope/tile"
)

// HFilter keeps the cells of a single-row (Rows(r) == 1) rope for
// which p holds, returning a possibly narrower 1 x k rope. It returns
// ErrShapeMismatch if r has more than one row.
func HFilter[T any](r *Rope[T], p func(v T) bool, opts Options) (*Rope[T], error) {
	if r.rows != 1 {
		return nil, fmt.Errorf("rope.HFilter: rows=%d: %w", r.rows, ErrShapeMismatch)
	}
	t := Materialize(r)
	out := tile.HFilterRow(p, t)
	return FromArray2D(out.ToRows(), opts)
}

// VFilter keeps the cells of a single-column (Cols(r) == 1) rope for
// which p holds, returning a possibly narrower k x 1 rope. It returns
// ErrShapeMismatch if r has more than one column.
func VFilter[T any](r *Rope[T], p func(v T) bool, opts Options) (*Rope[T], error) {
	if r.cols != 1 {
		return nil, fmt.Errorf("rope.VFilter: cols=%d: %w", r.cols, ErrShapeMismatch)
	}
	t := Materialize(r)
	out := tile.VFilterCol(p, t)
	return FromArray2D(out.ToRows(), opts)
}
