package rope

// Get returns the value at (i, j). It returns ErrOutOfBounds if the
// index falls outside [0, Rows) x [0, Cols).
func Get[T any](r *Rope[T], i, j int) (T, error) {
	var zero T
	if i < 0 || i >= r.rows || j < 0 || j >= r.cols {
		return zero, ErrOutOfBounds
	}
	for {
		switch r.kind {
		case KLeaf:
			return r.leaf.At(i, j)
		case KSparse:
			return r.val, nil
		case KSlice:
			i, j = r.si+i, r.sj+j
			r = r.inner
		case KHCat:
			if j < r.a.cols {
				r = r.a
			} else {
				j -= r.a.cols
				r = r.b
			}
		case KVCat:
			if i < r.a.rows {
				r = r.a
			} else {
				i -= r.a.rows
				r = r.b
			}
		default: // KEmpty: unreachable given the bounds check above
			return zero, ErrOutOfBounds
		}
	}
}

// Set returns a copy of r with (i, j) replaced by v, sharing all other
// structure. It returns ErrOutOfBounds if the index falls outside
// [0, Rows) x [0, Cols).
func Set[T any](r *Rope[T], i, j int, v T) (*Rope[T], error) {
	if i < 0 || i >= r.rows || j < 0 || j >= r.cols {
		return nil, ErrOutOfBounds
	}
	switch r.kind {
	case KLeaf:
		t, err := r.leaf.WithCell(i, j, v)
		if err != nil {
			return nil, err
		}
		return leaf(t), nil
	case KSparse:
		// Materialize a private 1x1 leaf carved out by three slices
		// around (i, j) and four sparse quadrants, cheapest expressed as
		// a height split then a width split per row-band.
		top := sparseNode[T](i, r.cols, r.val)
		mid := sparseNode[T](1, j, r.val)
		cell := Singleton(v)
		tail := sparseNode[T](1, r.cols-j-1, r.val)
		bot := sparseNode[T](r.rows-i-1, r.cols, r.val)
		midRow, err := hcat3(mid, cell, tail)
		if err != nil {
			return nil, err
		}
		return vcat3(top, midRow, bot)
	case KSlice:
		inner, err := Set(r.inner, r.si+i, r.sj+j, v)
		if err != nil {
			return nil, err
		}
		return sliceCtor(r.si, r.sj, r.rows, r.cols, inner), nil
	case KHCat:
		if j < r.a.cols {
			na, err := Set(r.a, i, j, v)
			if err != nil {
				return nil, err
			}
			return hnode(na, r.b)
		}
		nb, err := Set(r.b, i, j-r.a.cols, v)
		if err != nil {
			return nil, err
		}
		return hnode(r.a, nb)
	case KVCat:
		if i < r.a.rows {
			na, err := Set(r.a, i, j, v)
			if err != nil {
				return nil, err
			}
			return vnode(na, r.b)
		}
		nb, err := Set(r.b, i-r.a.rows, j, v)
		if err != nil {
			return nil, err
		}
		return vnode(r.a, nb)
	default: // KEmpty: unreachable given the bounds check above
		return nil, ErrOutOfBounds
	}
}

// hcat3 concatenates three ropes horizontally, using the raw
// pseudo-constructor directly since all three operands are already
// sized to fit together exactly (no fusion or rebalancing needed for
// this narrow internal use).
func hcat3[T any](a, b, c *Rope[T]) (*Rope[T], error) {
	ab, err := hnode(a, b)
	if err != nil {
		return nil, err
	}
	return hnode(ab, c)
}

// vcat3 is the vertical counterpart of hcat3.
func vcat3[T any](a, b, c *Rope[T]) (*Rope[T], error) {
	ab, err := vnode(a, b)
	if err != nil {
		return nil, err
	}
	return vnode(ab, c)
}
