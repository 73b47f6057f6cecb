package rope

import (
	"context"

	"github.com/katalvlaran/quadrope/tile"
)

// Progress reports how much of a MapUntil call has completed, in
// cells processed out of the total.
type Progress struct {
	Done  int
	Total int
}

// CancelledError is returned by MapUntil when ctx is cancelled before
// the whole rope finished. Processed holds whatever subtree of the
// result completed before cancellation was observed (nil if nothing
// did); Unprocessed holds the subtree of the original, input-typed
// rope that didn't, which a caller can feed back into a fresh MapUntil
// call to resume the remaining work.
type CancelledError[T, U any] struct {
	Err         error
	Processed   *Rope[U]
	Unprocessed *Rope[T]
}

func (e *CancelledError[T, U]) Error() string { return e.Err.Error() }
func (e *CancelledError[T, U]) Unwrap() error { return e.Err }

// MapUntil is Map with cooperative cancellation: it checks ctx before
// processing each Leaf, Sparse, or Slice node and aborts as soon as it
// observes cancellation, instead of running f over cells already
// queued. On cancellation the returned error is a *CancelledError[T,
// U] carrying whatever sibling subtree finished and the subtree that
// didn't, rather than discarding completed work. report, if non-nil,
// is invoked after each node completes with the cumulative progress
// so far. This is the surface the parallel package's MapUntil wraps
// with errgroup-driven fan-out; used directly it runs sequentially.
func MapUntil[T, U any](ctx context.Context, r *Rope[T], f func(T) U, report func(Progress)) (*Rope[U], error) {
	total := r.rows * r.cols
	done := 0
	return mapUntilRec(ctx, r, f, report, &done, total)
}

func mapUntilRec[T, U any](ctx context.Context, r *Rope[T], f func(T) U, report func(Progress), done *int, total int) (*Rope[U], error) {
	if err := ctx.Err(); err != nil {
		return nil, &CancelledError[T, U]{Err: err, Unprocessed: r}
	}
	switch r.kind {
	case KEmpty:
		return Empty[U](), nil
	case KSparse:
		u := f(r.val)
		*done += r.rows * r.cols
		reportProgress(report, *done, total)
		return sparseNode[U](r.rows, r.cols, u), nil
	case KSlice:
		// An opaque window onto a cat subtree; materialize it and treat
		// the result as a dense leaf, the same simplification Materialize
		// itself uses for windowed offsets.
		t := Materialize(r)
		return mapUntilLeaf(t, r, f, report, done, total)
	case KHCat:
		na, err := mapUntilRec(ctx, r.a, f, report, done, total)
		if err != nil {
			// a didn't finish; b was never started, so the whole node is
			// still outstanding.
			return nil, &CancelledError[T, U]{Err: unwrapCancel[T, U](err), Unprocessed: r}
		}
		nb, err := mapUntilRec(ctx, r.b, f, report, done, total)
		if err != nil {
			return nil, &CancelledError[T, U]{Err: unwrapCancel[T, U](err), Processed: na, Unprocessed: r.b}
		}
		return hnode(na, nb)
	case KVCat:
		na, err := mapUntilRec(ctx, r.a, f, report, done, total)
		if err != nil {
			return nil, &CancelledError[T, U]{Err: unwrapCancel[T, U](err), Unprocessed: r}
		}
		nb, err := mapUntilRec(ctx, r.b, f, report, done, total)
		if err != nil {
			return nil, &CancelledError[T, U]{Err: unwrapCancel[T, U](err), Processed: na, Unprocessed: r.b}
		}
		return vnode(na, nb)
	default: // KLeaf
		return mapUntilLeaf(r.leaf, r, f, report, done, total)
	}
}

// unwrapCancel pulls the underlying context error out of a nested
// CancelledError so wrapping doesn't stack error messages as it
// bubbles up through several cat levels.
func unwrapCancel[T, U any](err error) error {
	if ce, ok := err.(*CancelledError[T, U]); ok {
		return ce.Err
	}
	return err
}

func mapUntilLeaf[T, U any](t tile.Tile[T], r *Rope[T], f func(T) U, report func(Progress), done *int, total int) (*Rope[U], error) {
	dst := tile.NewOwned[U](r.rows, r.cols)
	t.Iterate(func(i, j int, v T) {
		dst.SetUnsafe(i, j, f(v))
	})
	*done += r.rows * r.cols
	reportProgress(report, *done, total)
	return leaf(dst), nil
}

func reportProgress(report func(Progress), done, total int) {
	if report != nil {
		report(Progress{Done: done, Total: total})
	}
}
