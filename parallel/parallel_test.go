package parallel_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/quadrope/parallel"
	"github.com/katalvlaran/quadrope/rope"
	"github.com/stretchr/testify/require"
)

func grid(h, w int) [][]int {
	out := make([][]int, h)
	for i := 0; i < h; i++ {
		row := make([]int, w)
		for j := 0; j < w; j++ {
			row[j] = i*w + j
		}
		out[i] = row
	}
	return out
}

func TestPar2RunsBothBranches(t *testing.T) {
	a, b, err := parallel.Par2(nil,
		func() (int, error) { return 2, nil },
		func() (string, error) { return "ok", nil },
	)
	require.NoError(t, err)
	require.Equal(t, 2, a)
	require.Equal(t, "ok", b)
}

func TestPar4RunsAllBranches(t *testing.T) {
	a, b, c, d, err := parallel.Par4(nil,
		func() (int, error) { return 1, nil },
		func() (int, error) { return 2, nil },
		func() (int, error) { return 3, nil },
		func() (int, error) { return 4, nil },
	)
	require.NoError(t, err)
	require.Equal(t, 10, a+b+c+d)
}

// agreement: parallel Map, Reduce, and Zip must produce the same
// result as their sequential rope counterparts regardless of the
// SeqThreshold forcing a fork.
func TestMapAgreesWithSequential(t *testing.T) {
	r, err := rope.FromArray2D(grid(40, 40), rope.DebugOptions())
	require.NoError(t, err)

	seq := rope.Map(r, func(v int) int { return v * 3 })
	par := parallel.Map(r, func(v int) int { return v * 3 }, nil, parallel.Options{SeqThreshold: 8}, rope.DebugOptions())

	require.True(t, rope.Equals(seq, par))
}

func TestReduceAgreesWithSequential(t *testing.T) {
	r, err := rope.FromArray2D(grid(30, 30), rope.DebugOptions())
	require.NoError(t, err)

	sum := func(acc, v int) int { return acc + v }
	seq := rope.Reduce(r, sum, 0)
	par := parallel.Reduce(r, sum, 0, nil, parallel.Options{SeqThreshold: 16})

	require.Equal(t, seq, par)
}

func TestZipAgreesWithSequential(t *testing.T) {
	a, err := rope.FromArray2D(grid(20, 20), rope.DebugOptions())
	require.NoError(t, err)
	b, err := rope.FromArray2D(grid(20, 20), rope.DebugOptions())
	require.NoError(t, err)

	add := func(x, y int) int { return x + y }
	seq, err := rope.Zip(a, b, add, rope.DebugOptions())
	require.NoError(t, err)
	par, err := parallel.Zip(a, b, add, nil, parallel.Options{SeqThreshold: 16}, rope.DebugOptions())
	require.NoError(t, err)

	require.True(t, rope.Equals(seq, par))
}

func TestHFilterAgreesWithSequential(t *testing.T) {
	r, err := rope.FromArray2D(grid(1, 40), rope.DebugOptions())
	require.NoError(t, err)
	pred := func(v int) bool { return v%2 == 0 }

	seq, err := rope.HFilter(r, pred, rope.DebugOptions())
	require.NoError(t, err)
	par, err := parallel.HFilter(r, pred, nil, parallel.Options{SeqThreshold: 12}, rope.DebugOptions())
	require.NoError(t, err)

	require.True(t, rope.Equals(seq, par))
}

func TestMapUntilRespectsCancellation(t *testing.T) {
	r, err := rope.FromArray2D(grid(50, 50), rope.DebugOptions())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = parallel.MapUntil(ctx, r, func(v int) int { return v }, nil, nil, parallel.Options{SeqThreshold: 8})
	require.Error(t, err)

	var ce *rope.CancelledError[int, int]
	require.ErrorAs(t, err, &ce)
	require.Nil(t, ce.Processed)
	require.NotNil(t, ce.Unprocessed)
	require.Equal(t, r.Rows(), ce.Unprocessed.Rows())
	require.Equal(t, r.Cols(), ce.Unprocessed.Cols())
}

func TestMapUntilCompletesAndReportsProgress(t *testing.T) {
	r, err := rope.FromArray2D(grid(10, 10), rope.DebugOptions())
	require.NoError(t, err)

	var lastDone int
	out, err := parallel.MapUntil(context.Background(), r, func(v int) int { return v + 1 }, func(p rope.Progress) {
		lastDone = p.Done
	}, nil, parallel.Options{SeqThreshold: 8})
	require.NoError(t, err)
	require.Equal(t, 100, lastDone)

	seq := rope.Map(r, func(v int) int { return v + 1 })
	require.True(t, rope.Equals(seq, out))
}
