package rope

import (
	"reflect"

	"github.com/katalvlaran/quadrope/tile"
)

// HCat concatenates a and b horizontally: a's columns precede b's, and
// both must have equal row counts (Empty is exempt and is dropped).
// The result opportunistically fuses adjacent Leaf tiles whose fused
// edge stays within opts' SMax, and adjacent Sparse regions of equal
// value at any size, and rebalances if the naive cat would exceed the
// Fibonacci depth bound.
func HCat[T any](a, b *Rope[T], opts Options) (*Rope[T], error) {
	if a == nil {
		a = Empty[T]()
	}
	if b == nil {
		b = Empty[T]()
	}
	if a.IsEmpty() {
		return b, nil
	}
	if b.IsEmpty() {
		return a, nil
	}
	if a.rows != b.rows {
		return nil, wrapShape("rope.HCat", a.rows, b.rows)
	}
	if m, ok := tryHMerge(a, b, opts); ok {
		return m, nil
	}
	n, err := hnode(a, b)
	if err != nil {
		return nil, err
	}
	if isBalanced(n) {
		return n, nil
	}
	return rebalance(n, true)
}

// VCat concatenates a and b vertically, symmetric to HCat.
func VCat[T any](a, b *Rope[T], opts Options) (*Rope[T], error) {
	if a == nil {
		a = Empty[T]()
	}
	if b == nil {
		b = Empty[T]()
	}
	if a.IsEmpty() {
		return b, nil
	}
	if b.IsEmpty() {
		return a, nil
	}
	if a.cols != b.cols {
		return nil, wrapShape("rope.VCat", a.cols, b.cols)
	}
	if m, ok := tryVMerge(a, b, opts); ok {
		return m, nil
	}
	n, err := vnode(a, b)
	if err != nil {
		return nil, err
	}
	if isBalanced(n) {
		return n, nil
	}
	return rebalance(n, false)
}

// tryHMerge fuses two horizontally adjacent Leaf tiles, or two
// Sparse(a) | Sparse(b) regions carrying a deeply-equal value, into a
// single node, so long as the fused leaf would stay within opts' SMax.
// It reports (nil, false) when no fusion applies.
func tryHMerge[T any](a, b *Rope[T], opts Options) (*Rope[T], bool) {
	if a.kind == KLeaf && b.kind == KLeaf && a.cols+b.cols <= opts.smax() {
		t, err := tile.HCat(a.leaf, b.leaf)
		if err != nil {
			return nil, false
		}
		return leaf(t), true
	}
	if a.kind == KSparse && b.kind == KSparse && reflect.DeepEqual(a.val, b.val) {
		return sparseNode[T](a.rows, a.cols+b.cols, a.val), true
	}
	return nil, false
}

// tryVMerge fuses two vertically adjacent Leaf tiles or Sparse regions,
// symmetric to tryHMerge.
func tryVMerge[T any](a, b *Rope[T], opts Options) (*Rope[T], bool) {
	if a.kind == KLeaf && b.kind == KLeaf && a.rows+b.rows <= opts.smax() {
		t, err := tile.VCat(a.leaf, b.leaf)
		if err != nil {
			return nil, false
		}
		return leaf(t), true
	}
	if a.kind == KSparse && b.kind == KSparse && reflect.DeepEqual(a.val, b.val) {
		return sparseNode[T](a.rows+b.rows, a.cols, a.val), true
	}
	return nil, false
}
