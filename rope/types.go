package rope

import "github.com/katalvlaran/quadrope/tile"

// Kind tags the six variants a Rope can hold.
type Kind uint8

const (
	// KEmpty is the 0x0 (or h x 0 / 0 x w) rectangle.
	KEmpty Kind = iota
	// KLeaf holds a dense tile.
	KLeaf
	// KHCat holds two horizontally adjacent children of equal height.
	KHCat
	// KVCat holds two vertically adjacent children of equal width.
	KVCat
	// KSlice holds an offset-and-size view onto another rope.
	KSlice
	// KSparse holds a rectangle of one repeated value.
	KSparse
)

// Rope is a persistent, immutable two-dimensional sequence. The zero
// value is not meaningful; obtain ropes through Empty, Singleton,
// Create, Init, FromArray2D, FromFlatArray, or a transformation of an
// existing rope. Interior construction happens exclusively through the
// package's pseudo-constructors so the shape invariants in the
// package doc always hold.
type Rope[T any] struct {
	kind   Kind
	rows   int
	cols   int
	depth  int
	sparse bool // true if this node or any descendant is Sparse

	leaf tile.Tile[T] // valid when kind == KLeaf

	a, b *Rope[T] // valid when kind == KHCat or KVCat

	si, sj int      // valid when kind == KSlice
	inner  *Rope[T] // valid when kind == KSlice

	val T // valid when kind == KSparse
}

// Empty returns the 0x0 rope.
func Empty[T any]() *Rope[T] {
	return &Rope[T]{kind: KEmpty}
}

// Singleton returns a 1x1 rope holding v.
func Singleton[T any](v T) *Rope[T] {
	t := tile.New[T](1, 1)
	t.SetUnsafe(0, 0, v)
	return leaf(t)
}

// Rows returns the number of rows.
func (r *Rope[T]) Rows() int { return r.rows }

// Cols returns the number of columns.
func (r *Rope[T]) Cols() int { return r.cols }

// Depth returns the tree depth: 0 for Empty/Leaf/Sparse, 1+max(depth(a),
// depth(b)) for a cat, and depth(inner) for a Slice.
func (r *Rope[T]) Depth() int { return r.depth }

// IsEmpty reports whether r is the 0x0 rope.
func (r *Rope[T]) IsEmpty() bool { return r.kind == KEmpty }

// IsSingleton reports whether r is exactly 1x1.
func (r *Rope[T]) IsSingleton() bool { return r.rows == 1 && r.cols == 1 }

// IsSparse reports whether r or any descendant is a Sparse node.
func (r *Rope[T]) IsSparse() bool { return r.sparse }

// IsLeaf reports whether r is a dense Leaf.
func (r *Rope[T]) IsLeaf() bool { return r.kind == KLeaf }

// SparseValue returns (v, true) if r is a Sparse(h, w, v) node; returns
// the zero value and false otherwise. It does not look inside children
// of a cat -- callers that want to detect sparsity arbitrarily deep in
// a tree use IsSparse plus structural recursion via Children.
func (r *Rope[T]) SparseValue() (T, bool) {
	if r.kind == KSparse {
		return r.val, true
	}
	var zero T
	return zero, false
}

// Children returns (a, b, true) if r is an HCat or VCat node, or
// (nil, nil, false) otherwise. This is a read-only introspection
// accessor for packages (numeric, parallel) that need to recurse
// structurally using only the public API -- it does not let a caller
// build or mutate interior nodes, which remains the exclusive job of
// the unexported pseudo-constructors.
func (r *Rope[T]) Children() (a, b *Rope[T], ok bool) {
	if r.kind == KHCat || r.kind == KVCat {
		return r.a, r.b, true
	}
	return nil, nil, false
}

// IsHCat reports whether r is a horizontal concatenation node.
func (r *Rope[T]) IsHCat() bool { return r.kind == KHCat }

// IsVCat reports whether r is a vertical concatenation node.
func (r *Rope[T]) IsVCat() bool { return r.kind == KVCat }
