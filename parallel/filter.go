package parallel

import (
	"github.com/katalvlaran/quadrope/rope"
	"github.com/panjf2000/ants/v2"
)

// HFilter is rope.HFilter's fork-join counterpart: r must be a single
// row. It splits the column range in half, filters each half
// independently and concatenates whatever survives back together,
// preserving column order.
func HFilter[T any](r *rope.Rope[T], p func(v T) bool, pool *ants.Pool, opts Options, ropeOpts rope.Options) (*rope.Rope[T], error) {
	if r.Rows()*r.Cols() <= opts.seqThreshold() {
		return rope.HFilter(r, p, ropeOpts)
	}
	left, right := rope.HSplit2(r, r.Cols()/2)
	rl, rr, err := Par2(pool,
		func() (*rope.Rope[T], error) { return HFilter(left, p, pool, opts, ropeOpts) },
		func() (*rope.Rope[T], error) { return HFilter(right, p, pool, opts, ropeOpts) },
	)
	if err != nil {
		return nil, err
	}
	return rope.HCat(rl, rr, ropeOpts)
}

// VFilter is rope.VFilter's fork-join counterpart, symmetric to
// HFilter over a single column.
func VFilter[T any](r *rope.Rope[T], p func(v T) bool, pool *ants.Pool, opts Options, ropeOpts rope.Options) (*rope.Rope[T], error) {
	if r.Rows()*r.Cols() <= opts.seqThreshold() {
		return rope.VFilter(r, p, ropeOpts)
	}
	top, bot := rope.VSplit2(r, r.Rows()/2)
	rt, rb, err := Par2(pool,
		func() (*rope.Rope[T], error) { return VFilter(top, p, pool, opts, ropeOpts) },
		func() (*rope.Rope[T], error) { return VFilter(bot, p, pool, opts, ropeOpts) },
	)
	if err != nil {
		return nil, err
	}
	return rope.VCat(rt, rb, ropeOpts)
}
