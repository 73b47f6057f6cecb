package parallel

import (
	"sync"

	"github.com/panjf2000/ants/v2"
)

// submit runs task on pool if one was given, falling back to a bare
// goroutine when pool is nil or saturated -- a fork-join caller always
// needs both branches to make progress, so a pool that can't accept
// the task right now must not block the caller waiting for a slot.
func submit(pool *ants.Pool, task func()) {
	if pool == nil {
		go task()
		return
	}
	if err := pool.Submit(task); err != nil {
		go task()
	}
}

// Par2 runs fa and fb concurrently and returns both results once both
// have finished. If either returns a non-nil error, Par2 returns the
// first error observed (by submission order); the other branch's
// result is still returned alongside it.
func Par2[A, B any](pool *ants.Pool, fa func() (A, error), fb func() (B, error)) (A, B, error) {
	var (
		a          A
		b          B
		errA, errB error
		wg         sync.WaitGroup
	)
	wg.Add(2)
	submit(pool, func() { defer wg.Done(); a, errA = fa() })
	submit(pool, func() { defer wg.Done(); b, errB = fb() })
	wg.Wait()
	if errA != nil {
		return a, b, errA
	}
	return a, b, errB
}

// Par4 runs fa, fb, fc and fd concurrently and returns all four
// results once every branch has finished, returning the first error
// observed by submission order, if any.
func Par4[A, B, C, D any](pool *ants.Pool, fa func() (A, error), fb func() (B, error), fc func() (C, error), fd func() (D, error)) (A, B, C, D, error) {
	var (
		a                  A
		b                  B
		c                  C
		d                  D
		errA, errB, errC, errD error
		wg                 sync.WaitGroup
	)
	wg.Add(4)
	submit(pool, func() { defer wg.Done(); a, errA = fa() })
	submit(pool, func() { defer wg.Done(); b, errB = fb() })
	submit(pool, func() { defer wg.Done(); c, errC = fc() })
	submit(pool, func() { defer wg.Done(); d, errD = fd() })
	wg.Wait()
	for _, e := range []error{errA, errB, errC, errD} {
		if e != nil {
			return a, b, c, d, e
		}
	}
	return a, b, c, d, nil
}
