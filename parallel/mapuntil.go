package parallel

import (
	"context"
	"sync/atomic"

	"github.com/katalvlaran/quadrope/rope"
	"github.com/panjf2000/ants/v2"
	"golang.org/x/sync/errgroup"
)

// MapUntil is rope.MapUntil's fork-join counterpart: it forks across
// HCat/VCat children, falling back to rope.MapUntil below opts'
// sequential threshold. report, if non-nil, is called with the
// cumulative cell count completed across every branch so far and may
// be invoked concurrently. On cancellation the returned error is a
// *rope.CancelledError[T, U]: whichever of the two forked branches
// completed contributes its result to Processed, and the branch that
// didn't contributes its original subtree to Unprocessed, so the
// caller can resubmit Unprocessed instead of redoing finished work.
// A cancellation observed deeper inside a branch is reported at the
// granularity of that whole branch rather than reconstructed cell by
// cell, since a partial split along one branch's own internal axis
// cannot always be recombined with its sibling's shape.
func MapUntil[T, U any](ctx context.Context, r *rope.Rope[T], f func(T) U, report func(rope.Progress), pool *ants.Pool, opts Options) (*rope.Rope[U], error) {
	total := r.Rows() * r.Cols()
	var done int64
	return mapUntilRec(ctx, r, f, report, &done, total, opts)
}

func mapUntilRec[T, U any](ctx context.Context, r *rope.Rope[T], f func(T) U, report func(rope.Progress), done *int64, total int, opts Options) (*rope.Rope[U], error) {
	if err := ctx.Err(); err != nil {
		return nil, &rope.CancelledError[T, U]{Err: err, Unprocessed: r}
	}
	a, b, isCat := r.Children()
	if !isCat || r.Rows()*r.Cols() <= opts.seqThreshold() {
		var prev int
		return rope.MapUntil(ctx, r, f, func(p rope.Progress) {
			atomic.AddInt64(done, int64(p.Done-prev))
			prev = p.Done
			if report != nil {
				report(rope.Progress{Done: int(atomic.LoadInt64(done)), Total: total})
			}
		})
	}

	var ra, rb *rope.Rope[U]
	var errA, errB error
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { ra, errA = mapUntilRec(gctx, a, f, report, done, total, opts); return errA })
	g.Go(func() error { rb, errB = mapUntilRec(gctx, b, f, report, done, total, opts); return errB })
	_ = g.Wait()

	switch {
	case errA != nil && errB != nil:
		return nil, &rope.CancelledError[T, U]{Err: cancelCause[T, U](errA), Unprocessed: r}
	case errA != nil:
		return nil, &rope.CancelledError[T, U]{Err: cancelCause[T, U](errA), Processed: rb, Unprocessed: a}
	case errB != nil:
		return nil, &rope.CancelledError[T, U]{Err: cancelCause[T, U](errB), Processed: ra, Unprocessed: b}
	}

	if r.IsHCat() {
		return rope.HCat(ra, rb, rope.DefaultOptions())
	}
	return rope.VCat(ra, rb, rope.DefaultOptions())
}

// cancelCause pulls the underlying context error out of a nested
// CancelledError so wrapping doesn't stack error messages as it
// bubbles up through several fork levels.
func cancelCause[T, U any](err error) error {
	if ce, ok := err.(*rope.CancelledError[T, U]); ok {
		return ce.Err
	}
	return err
}
