package parallel

import (
	"github.com/katalvlaran/quadrope/rope"
	"github.com/panjf2000/ants/v2"
)

// Map is rope.Map's fork-join counterpart: it forks across an HCat or
// VCat node's two children and falls back to rope.Map once a subtree
// is small enough or isn't a cat node.
func Map[T, U any](r *rope.Rope[T], f func(T) U, pool *ants.Pool, opts Options, ropeOpts rope.Options) *rope.Rope[U] {
	if r.Rows()*r.Cols() <= opts.seqThreshold() {
		return rope.Map(r, f)
	}
	a, b, ok := r.Children()
	if !ok {
		return rope.Map(r, f)
	}
	ra, rb, _ := Par2(pool,
		func() (*rope.Rope[U], error) { return Map(a, f, pool, opts, ropeOpts), nil },
		func() (*rope.Rope[U], error) { return Map(b, f, pool, opts, ropeOpts), nil },
	)
	if r.IsHCat() {
		n, _ := rope.HCat(ra, rb, ropeOpts)
		return n
	}
	n, _ := rope.VCat(ra, rb, ropeOpts)
	return n
}
