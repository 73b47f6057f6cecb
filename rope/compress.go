package rope

import "github.com/katalvlaran/quadrope/tile"

// Compress rewrites r into an equivalent rope that replaces any Leaf
// or Slice region holding a single repeated value with a Sparse node,
// then lets HCat/VCat's ordinary fusion merge newly-adjacent Sparse
// siblings. It requires T comparable because, unlike the rest of the
// package, detecting uniformity genuinely needs value equality rather
// than the best-effort reflect.DeepEqual used for Sparse-merge
// opportunism elsewhere.
func Compress[T comparable](r *Rope[T], opts Options) (*Rope[T], error) {
	switch r.kind {
	case KEmpty, KSparse:
		return r, nil
	case KLeaf:
		if v, ok := uniformValue(r.leaf); ok {
			return sparseNode[T](r.rows, r.cols, v), nil
		}
		return r, nil
	case KSlice:
		t := Materialize(r)
		if v, ok := uniformValue(t); ok {
			return sparseNode[T](r.rows, r.cols, v), nil
		}
		return r, nil
	case KHCat:
		na, err := Compress(r.a, opts)
		if err != nil {
			return nil, err
		}
		nb, err := Compress(r.b, opts)
		if err != nil {
			return nil, err
		}
		return HCat(na, nb, opts)
	default: // KVCat
		na, err := Compress(r.a, opts)
		if err != nil {
			return nil, err
		}
		nb, err := Compress(r.b, opts)
		if err != nil {
			return nil, err
		}
		return VCat(na, nb, opts)
	}
}

// uniformValue reports whether every cell of t equals its first cell,
// returning that value when so.
func uniformValue[T comparable](t tile.Tile[T]) (T, bool) {
	var zero T
	if t.Rows() == 0 || t.Cols() == 0 {
		return zero, false
	}
	first, _ := t.At(0, 0)
	ok := true
	t.Iterate(func(_, _ int, v T) {
		if ok && v != first {
			ok = false
		}
	})
	if !ok {
		return zero, false
	}
	return first, true
}

// Reallocate rebuilds r's internal chunking under opts' leaf-size
// policy without changing its logical content: cats are rebuilt
// bottom-up through HCat/VCat, which re-applies leaf fusion and
// Fibonacci rebalancing, while Sparse and Leaf nodes (and, conservatively,
// Slice windows, which are re-chunked via materialization) are
// normalized in place.
func Reallocate[T any](r *Rope[T], opts Options) (*Rope[T], error) {
	switch r.kind {
	case KEmpty, KSparse, KLeaf:
		return r, nil
	case KSlice:
		return FromArray2D(Materialize(r).ToRows(), opts)
	case KHCat:
		na, err := Reallocate(r.a, opts)
		if err != nil {
			return nil, err
		}
		nb, err := Reallocate(r.b, opts)
		if err != nil {
			return nil, err
		}
		return HCat(na, nb, opts)
	default: // KVCat
		na, err := Reallocate(r.a, opts)
		if err != nil {
			return nil, err
		}
		nb, err := Reallocate(r.b, opts)
		if err != nil {
			return nil, err
		}
		return VCat(na, nb, opts)
	}
}
