package numeric

import (
	"math"

	"github.com/katalvlaran/quadrope/rope"
)

// Sum adds every cell of r. Sparse regions are folded in closed form
// (v * area) instead of being expanded cell by cell.
func Sum(r *rope.Rope[float64]) float64 {
	if r.IsEmpty() {
		return 0
	}
	if v, ok := r.SparseValue(); ok {
		return v * float64(r.Rows()*r.Cols())
	}
	if a, b, ok := r.Children(); ok {
		return Sum(a) + Sum(b)
	}
	return rope.Reduce(r, func(acc, v float64) float64 { return acc + v }, 0)
}

// Prod multiplies every cell of r, short-circuiting to 0 as soon as a
// zero factor is found without evaluating the remaining subtree.
// Sparse regions are folded via math.Pow instead of repeated
// multiplication.
func Prod(r *rope.Rope[float64]) float64 {
	if r.IsEmpty() {
		return 1
	}
	if v, ok := r.SparseValue(); ok {
		n := r.Rows() * r.Cols()
		switch v {
		case 0:
			return 0
		case 1:
			return 1
		default:
			return math.Pow(v, float64(n))
		}
	}
	if a, b, ok := r.Children(); ok {
		pa := Prod(a)
		if pa == 0 {
			return 0
		}
		return pa * Prod(b)
	}
	return rope.Reduce(r, func(acc, v float64) float64 {
		if acc == 0 {
			return 0
		}
		return acc * v
	}, 1)
}

// Identity returns the n x n identity matrix, built by recursively
// splitting into quadrants: the two diagonal quadrants recurse and
// the two off-diagonal quadrants are Sparse(0) in O(1) space. A
// caller that materializes the result gets an ordinary dense matrix;
// left unmaterialized, the off-diagonal quadrants never allocate.
func Identity(n int, opts rope.Options) (*rope.Rope[float64], error) {
	if n <= 0 {
		return rope.Empty[float64](), nil
	}
	if n == 1 {
		return rope.Singleton(1.0), nil
	}
	k := n / 2
	tl, err := Identity(k, opts)
	if err != nil {
		return nil, err
	}
	br, err := Identity(n-k, opts)
	if err != nil {
		return nil, err
	}
	tr := rope.Create(k, n-k, 0.0)
	bl := rope.Create(n-k, k, 0.0)
	top, err := rope.HCat(tl, tr, opts)
	if err != nil {
		return nil, err
	}
	bot, err := rope.HCat(bl, br, opts)
	if err != nil {
		return nil, err
	}
	return rope.VCat(top, bot, opts)
}

// UpperDiagonal returns the n x n matrix holding v on and above the
// diagonal and 0 below it, using the same quadrant recursion as
// Identity: the strictly-above-diagonal quadrant is Sparse(v) and the
// strictly-below-diagonal quadrant is Sparse(0) in O(1) space.
func UpperDiagonal(n int, v float64, opts rope.Options) (*rope.Rope[float64], error) {
	if n <= 0 {
		return rope.Empty[float64](), nil
	}
	if n == 1 {
		return rope.Singleton(v), nil
	}
	k := n / 2
	tl, err := UpperDiagonal(k, v, opts)
	if err != nil {
		return nil, err
	}
	br, err := UpperDiagonal(n-k, v, opts)
	if err != nil {
		return nil, err
	}
	tr := rope.Create(k, n-k, v)
	bl := rope.Create(n-k, k, 0.0)
	top, err := rope.HCat(tl, tr, opts)
	if err != nil {
		return nil, err
	}
	bot, err := rope.HCat(bl, br, opts)
	if err != nil {
		return nil, err
	}
	return rope.VCat(top, bot, opts)
}

// LowerDiagonal returns the n x n matrix holding v on and below the
// diagonal and 0 above it, symmetric to UpperDiagonal.
func LowerDiagonal(n int, v float64, opts rope.Options) (*rope.Rope[float64], error) {
	if n <= 0 {
		return rope.Empty[float64](), nil
	}
	if n == 1 {
		return rope.Singleton(v), nil
	}
	k := n / 2
	tl, err := LowerDiagonal(k, v, opts)
	if err != nil {
		return nil, err
	}
	br, err := LowerDiagonal(n-k, v, opts)
	if err != nil {
		return nil, err
	}
	tr := rope.Create(k, n-k, 0.0)
	bl := rope.Create(n-k, k, v)
	top, err := rope.HCat(tl, tr, opts)
	if err != nil {
		return nil, err
	}
	bot, err := rope.HCat(bl, br, opts)
	if err != nil {
		return nil, err
	}
	return rope.VCat(top, bot, opts)
}

// Pointwise computes the elementwise product of a and b. A Sparse(0)
// operand short-circuits to a fresh Sparse(0) of the result shape
// without visiting the other operand; a Sparse(1) operand short-
// circuits to the other operand unchanged. Otherwise it delegates to
// rope.Zip, which already implements the fast-path/general-path
// structural alignment this operation needs -- reimplementing that
// alignment here would just be Zip under a different name.
func Pointwise(a, b *rope.Rope[float64], opts rope.Options) (*rope.Rope[float64], error) {
	if v, ok := a.SparseValue(); ok {
		switch v {
		case 0:
			return rope.Create(a.Rows(), a.Cols(), 0.0), nil
		case 1:
			return b, nil
		}
	}
	if v, ok := b.SparseValue(); ok {
		switch v {
		case 0:
			return rope.Create(b.Rows(), b.Cols(), 0.0), nil
		case 1:
			return a, nil
		}
	}
	return rope.Zip(a, b, func(x, y float64) float64 { return x * y }, opts)
}
