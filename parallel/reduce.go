package parallel

import (
	"github.com/katalvlaran/quadrope/rope"
	"github.com/panjf2000/ants/v2"
)

// Reduce is rope.Reduce's fork-join counterpart. f must be
// associative with seed as its left identity (f(seed, x) == x), the
// same assumption the sequential accumulator-threading Reduce relies
// on, since the two branches' partial folds are combined with f
// itself rather than a caller-supplied combiner.
func Reduce[T any](r *rope.Rope[T], f func(acc, v T) T, seed T, pool *ants.Pool, opts Options) T {
	if r.Rows()*r.Cols() <= opts.seqThreshold() {
		return rope.Reduce(r, f, seed)
	}
	a, b, ok := r.Children()
	if !ok {
		return rope.Reduce(r, f, seed)
	}
	ra, rb, _ := Par2(pool,
		func() (T, error) { return Reduce(a, f, seed, pool, opts), nil },
		func() (T, error) { return Reduce(b, f, seed, pool, opts), nil },
	)
	return f(ra, rb)
}

// MapReduce is rope.MapReduce's fork-join counterpart, subject to the
// same associativity/identity assumption as Reduce.
func MapReduce[T, U any](r *rope.Rope[T], m func(T) U, combine func(acc, v U) U, seed U, pool *ants.Pool, opts Options) U {
	if r.Rows()*r.Cols() <= opts.seqThreshold() {
		return rope.MapReduce(r, m, combine, seed)
	}
	a, b, ok := r.Children()
	if !ok {
		return rope.MapReduce(r, m, combine, seed)
	}
	ra, rb, _ := Par2(pool,
		func() (U, error) { return MapReduce(a, m, combine, seed, pool, opts), nil },
		func() (U, error) { return MapReduce(b, m, combine, seed, pool, opts), nil },
	)
	return combine(ra, rb)
}

// HReduce is rope.HReduce's fork-join counterpart: it splits the row
// range in half, reduces each half's rows independently and stacks
// the two column vectors of partial results back together.
func HReduce[T any](r *rope.Rope[T], f func(acc, v T) T, seed T, pool *ants.Pool, opts Options, ropeOpts rope.Options) (*rope.Rope[T], error) {
	if r.Rows()*r.Cols() <= opts.seqThreshold() {
		return rope.HReduce(r, f, seed, ropeOpts)
	}
	top, bot := rope.VSplit2(r, r.Rows()/2)
	rt, rb, err := Par2(pool,
		func() (*rope.Rope[T], error) { return HReduce(top, f, seed, pool, opts, ropeOpts) },
		func() (*rope.Rope[T], error) { return HReduce(bot, f, seed, pool, opts, ropeOpts) },
	)
	if err != nil {
		return nil, err
	}
	return rope.VCat(rt, rb, ropeOpts)
}

// VReduce is rope.VReduce's fork-join counterpart, symmetric to
// HReduce over columns.
func VReduce[T any](r *rope.Rope[T], f func(acc, v T) T, seed T, pool *ants.Pool, opts Options, ropeOpts rope.Options) (*rope.Rope[T], error) {
	if r.Rows()*r.Cols() <= opts.seqThreshold() {
		return rope.VReduce(r, f, seed, ropeOpts)
	}
	left, right := rope.HSplit2(r, r.Cols()/2)
	rl, rr, err := Par2(pool,
		func() (*rope.Rope[T], error) { return VReduce(left, f, seed, pool, opts, ropeOpts) },
		func() (*rope.Rope[T], error) { return VReduce(right, f, seed, pool, opts, ropeOpts) },
	)
	if err != nil {
		return nil, err
	}
	return rope.HCat(rl, rr, ropeOpts)
}

// HMapReduce fuses HReduce with a per-cell map, fork-join style.
func HMapReduce[T, U any](r *rope.Rope[T], m func(T) U, combine func(acc, v U) U, seed U, pool *ants.Pool, opts Options, ropeOpts rope.Options) (*rope.Rope[U], error) {
	if r.Rows()*r.Cols() <= opts.seqThreshold() {
		return rope.HMapReduce(r, m, combine, seed, ropeOpts)
	}
	top, bot := rope.VSplit2(r, r.Rows()/2)
	rt, rb, err := Par2(pool,
		func() (*rope.Rope[U], error) { return HMapReduce(top, m, combine, seed, pool, opts, ropeOpts) },
		func() (*rope.Rope[U], error) { return HMapReduce(bot, m, combine, seed, pool, opts, ropeOpts) },
	)
	if err != nil {
		return nil, err
	}
	return rope.VCat(rt, rb, ropeOpts)
}

// VMapReduce fuses VReduce with a per-cell map, fork-join style.
func VMapReduce[T, U any](r *rope.Rope[T], m func(T) U, combine func(acc, v U) U, seed U, pool *ants.Pool, opts Options, ropeOpts rope.Options) (*rope.Rope[U], error) {
	if r.Rows()*r.Cols() <= opts.seqThreshold() {
		return rope.VMapReduce(r, m, combine, seed, ropeOpts)
	}
	left, right := rope.HSplit2(r, r.Cols()/2)
	rl, rr, err := Par2(pool,
		func() (*rope.Rope[U], error) { return VMapReduce(left, m, combine, seed, pool, opts, ropeOpts) },
		func() (*rope.Rope[U], error) { return VMapReduce(right, m, combine, seed, pool, opts, ropeOpts) },
	)
	if err != nil {
		return nil, err
	}
	return rope.HCat(rl, rr, ropeOpts)
}
