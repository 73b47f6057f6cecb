package parallel

import (
	"github.com/katalvlaran/quadrope/rope"
	"github.com/panjf2000/ants/v2"
)

// Zip is rope.Zip's fork-join counterpart. It forks across a matching
// pair of HCat/VCat children, the same fast-path structural check
// rope.Zip's sequential implementation uses, and otherwise falls back
// to the sequential rope.Zip (which itself implements the bisecting
// general path) once the fast-path match doesn't apply or the subtree
// is small enough.
func Zip[T, U, V any](a *rope.Rope[T], b *rope.Rope[U], f func(T, U) V, pool *ants.Pool, opts Options, ropeOpts rope.Options) (*rope.Rope[V], error) {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return nil, rope.ErrShapeMismatch
	}
	if a.Rows()*a.Cols() <= opts.seqThreshold() {
		return rope.Zip(a, b, f, ropeOpts)
	}
	aa, ab, aok := a.Children()
	ba, bb, bok := b.Children()
	if !aok || !bok {
		return rope.Zip(a, b, f, ropeOpts)
	}
	if a.IsHCat() && b.IsHCat() && aa.Cols() == ba.Cols() {
		left, right, err := Par2(pool,
			func() (*rope.Rope[V], error) { return Zip(aa, ba, f, pool, opts, ropeOpts) },
			func() (*rope.Rope[V], error) { return Zip(ab, bb, f, pool, opts, ropeOpts) },
		)
		if err != nil {
			return nil, err
		}
		return rope.HCat(left, right, ropeOpts)
	}
	if a.IsVCat() && b.IsVCat() && aa.Rows() == ba.Rows() {
		top, bot, err := Par2(pool,
			func() (*rope.Rope[V], error) { return Zip(aa, ba, f, pool, opts, ropeOpts) },
			func() (*rope.Rope[V], error) { return Zip(ab, bb, f, pool, opts, ropeOpts) },
		)
		if err != nil {
			return nil, err
		}
		return rope.VCat(top, bot, ropeOpts)
	}
	return rope.Zip(a, b, f, ropeOpts)
}
