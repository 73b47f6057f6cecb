package parallel

import (
	"github.com/katalvlaran/quadrope/rope"
	"github.com/panjf2000/ants/v2"
)

// HRev is rope.HRev's fork-join counterpart.
func HRev[T any](r *rope.Rope[T], pool *ants.Pool, opts Options, ropeOpts rope.Options) *rope.Rope[T] {
	if r.Rows()*r.Cols() <= opts.seqThreshold() {
		return rope.HRev(r)
	}
	a, b, ok := r.Children()
	if !ok {
		return rope.HRev(r)
	}
	ra, rb, _ := Par2(pool,
		func() (*rope.Rope[T], error) { return HRev(a, pool, opts, ropeOpts), nil },
		func() (*rope.Rope[T], error) { return HRev(b, pool, opts, ropeOpts), nil },
	)
	if r.IsHCat() {
		// HCat reverses column order, so b's reversal precedes a's.
		n, _ := rope.HCat(rb, ra, ropeOpts)
		return n
	}
	n, _ := rope.VCat(ra, rb, ropeOpts)
	return n
}

// VRev is rope.VRev's fork-join counterpart.
func VRev[T any](r *rope.Rope[T], pool *ants.Pool, opts Options, ropeOpts rope.Options) *rope.Rope[T] {
	if r.Rows()*r.Cols() <= opts.seqThreshold() {
		return rope.VRev(r)
	}
	a, b, ok := r.Children()
	if !ok {
		return rope.VRev(r)
	}
	ra, rb, _ := Par2(pool,
		func() (*rope.Rope[T], error) { return VRev(a, pool, opts, ropeOpts), nil },
		func() (*rope.Rope[T], error) { return VRev(b, pool, opts, ropeOpts), nil },
	)
	if r.IsVCat() {
		n, _ := rope.VCat(rb, ra, ropeOpts)
		return n
	}
	n, _ := rope.HCat(ra, rb, ropeOpts)
	return n
}

// Transpose is rope.Transpose's fork-join counterpart.
func Transpose[T any](r *rope.Rope[T], pool *ants.Pool, opts Options, ropeOpts rope.Options) *rope.Rope[T] {
	if r.Rows()*r.Cols() <= opts.seqThreshold() {
		return rope.Transpose(r)
	}
	a, b, ok := r.Children()
	if !ok {
		return rope.Transpose(r)
	}
	ra, rb, _ := Par2(pool,
		func() (*rope.Rope[T], error) { return Transpose(a, pool, opts, ropeOpts), nil },
		func() (*rope.Rope[T], error) { return Transpose(b, pool, opts, ropeOpts), nil },
	)
	if r.IsHCat() {
		n, _ := rope.VCat(ra, rb, ropeOpts)
		return n
	}
	n, _ := rope.HCat(ra, rb, ropeOpts)
	return n
}
