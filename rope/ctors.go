package rope

import (
	"fmt"

	"github.com/katalvlaran/quadrope/tile"
)

// leaf is the pseudo-constructor for Leaf nodes: it collapses a 0-area
// tile down to Empty, per the invariant that Leaf never wraps an empty
// tile.
func leaf[T any](s tile.Tile[T]) *Rope[T] {
	if s.Rows() == 0 || s.Cols() == 0 {
		return Empty[T]()
	}
	return &Rope[T]{kind: KLeaf, rows: s.Rows(), cols: s.Cols(), leaf: s}
}

// sparseNode is the pseudo-constructor for Sparse nodes.
func sparseNode[T any](h, w int, v T) *Rope[T] {
	if h <= 0 || w <= 0 {
		return Empty[T]()
	}
	return &Rope[T]{kind: KSparse, rows: h, cols: w, sparse: true, val: v}
}

// hnode is the pseudo-constructor for HCat: empty children are
// eliminated, row counts must agree, and depth/sparse are derived.
func hnode[T any](a, b *Rope[T]) (*Rope[T], error) {
	if a.IsEmpty() {
		return b, nil
	}
	if b.IsEmpty() {
		return a, nil
	}
	if a.rows != b.rows {
		return nil, fmt.Errorf("rope.hnode: rows %d != %d: %w", a.rows, b.rows, ErrShapeMismatch)
	}
	d := a.depth
	if b.depth > d {
		d = b.depth
	}
	return &Rope[T]{
		kind: KHCat, rows: a.rows, cols: a.cols + b.cols, depth: d + 1,
		sparse: a.sparse || b.sparse, a: a, b: b,
	}, nil
}

// vnode is the pseudo-constructor for VCat, symmetric to hnode.
func vnode[T any](a, b *Rope[T]) (*Rope[T], error) {
	if a.IsEmpty() {
		return b, nil
	}
	if b.IsEmpty() {
		return a, nil
	}
	if a.cols != b.cols {
		return nil, fmt.Errorf("rope.vnode: cols %d != %d: %w", a.cols, b.cols, ErrShapeMismatch)
	}
	d := a.depth
	if b.depth > d {
		d = b.depth
	}
	return &Rope[T]{
		kind: KVCat, rows: a.rows + b.rows, cols: a.cols, depth: d + 1,
		sparse: a.sparse || b.sparse, a: a, b: b,
	}, nil
}

// sliceCtor is the pseudo-constructor behind Slice/HSlice/VSlice: it
// clamps the requested window to r's extent, collapses an empty clamp
// to Empty, short-circuits an exact cover back to r itself, fuses by
// offset addition into an existing Slice, reshapes a Sparse directly,
// slices a Leaf at the tile layer, and otherwise emits a Slice node.
func sliceCtor[T any](i, j, h, w int, r *Rope[T]) *Rope[T] {
	if i < 0 {
		h += i
		i = 0
	}
	if j < 0 {
		w += j
		j = 0
	}
	if h > r.rows-i {
		h = r.rows - i
	}
	if w > r.cols-j {
		w = r.cols - j
	}
	if h <= 0 || w <= 0 {
		return Empty[T]()
	}
	if i == 0 && j == 0 && h == r.rows && w == r.cols {
		return r
	}
	switch r.kind {
	case KSlice:
		return sliceCtor(r.si+i, r.sj+j, h, w, r.inner)
	case KSparse:
		return sparseNode[T](h, w, r.val)
	case KLeaf:
		v, err := r.leaf.View(i, j, h, w)
		if err != nil {
			// i,j,h,w were clamped to r's extent above, so a leaf of the
			// same extent must accept this view.
			panic(err)
		}
		return leaf(v)
	default:
		return &Rope[T]{
			kind: KSlice, rows: h, cols: w, depth: r.depth, sparse: r.sparse,
			si: i, sj: j, inner: r,
		}
	}
}

// Create returns a Sparse h x w rope, every cell equal to v, in O(1)
// space. Non-positive dimensions yield Empty (not an error).
func Create[T any](h, w int, v T) *Rope[T] {
	return sparseNode[T](h, w, v)
}

// Init builds an h x w rope by calling f(i, j) for every cell,
// chunking the result into leaves no larger than opts' SMax on either
// edge and assembling them with balanced cats. Non-positive dimensions
// yield Empty.
func Init[T any](h, w int, f func(i, j int) T, opts Options) (*Rope[T], error) {
	if h <= 0 || w <= 0 {
		return Empty[T](), nil
	}
	rows := make([][]T, h)
	for i := 0; i < h; i++ {
		row := make([]T, w)
		for j := 0; j < w; j++ {
			row[j] = f(i, j)
		}
		rows[i] = row
	}
	return FromArray2D(rows, opts)
}

// FromArray2D builds a rope from a rectangular 2-D slice, chunking it
// into leaves bounded by opts' SMax and assembling balanced cats.
func FromArray2D[T any](a [][]T, opts Options) (*Rope[T], error) {
	h := len(a)
	if h == 0 {
		return Empty[T](), nil
	}
	w := len(a[0])
	for _, row := range a {
		if len(row) != w {
			return nil, fmt.Errorf("rope.FromArray2D: %w", ErrInvalidArgument)
		}
	}
	if w == 0 {
		return Empty[T](), nil
	}

	sm := opts.smax()
	// Build row-bands of height <= sm, each band built by chunking
	// columns into leaves of width <= sm, then vcat the bands.
	var whole *Rope[T]
	for i0 := 0; i0 < h; i0 += sm {
		i1 := i0 + sm
		if i1 > h {
			i1 = h
		}
		var band *Rope[T]
		for j0 := 0; j0 < w; j0 += sm {
			j1 := j0 + sm
			if j1 > w {
				j1 = w
			}
			chunkRows := make([][]T, i1-i0)
			for i := i0; i < i1; i++ {
				chunkRows[i-i0] = a[i][j0:j1]
			}
			t, err := tile.FromRows(chunkRows)
			if err != nil {
				return nil, err
			}
			leafRope := leaf(t)
			var herr error
			band, herr = HCat(band, leafRope, opts)
			if herr != nil {
				return nil, herr
			}
		}
		var verr error
		whole, verr = VCat(whole, band, opts)
		if verr != nil {
			return nil, verr
		}
	}
	return whole, nil
}

// FromFlatArray builds a rope from a flat row-major slice of length
// len(vs), reshaped to width w. len(vs) must be a multiple of w (w > 0
// is implied; w <= 0 with a non-empty vs is rejected as invalid).
func FromFlatArray[T any](vs []T, w int, opts Options) (*Rope[T], error) {
	if len(vs) == 0 {
		return Empty[T](), nil
	}
	if w <= 0 || len(vs)%w != 0 {
		return nil, fmt.Errorf("rope.FromFlatArray: len=%d w=%d: %w", len(vs), w, ErrInvalidArgument)
	}
	h := len(vs) / w
	rows := make([][]T, h)
	for i := 0; i < h; i++ {
		rows[i] = vs[i*w : (i+1)*w]
	}
	return FromArray2D(rows, opts)
}
