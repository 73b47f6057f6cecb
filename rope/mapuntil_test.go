package rope_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/quadrope/rope"
	"github.com/stretchr/testify/require"
)

func TestMapUntilCompletesWithoutCancellation(t *testing.T) {
	r, err := rope.FromArray2D([][]int{{1, 2}, {3, 4}}, rope.DebugOptions())
	require.NoError(t, err)

	out, err := rope.MapUntil(context.Background(), r, func(v int) int { return v * 2 }, nil)
	require.NoError(t, err)
	require.Equal(t, [][]int{{2, 4}, {6, 8}}, rope.ToArray2D(out))
}

func TestMapUntilPreCancelledLeavesWholeRopeUnprocessed(t *testing.T) {
	r, err := rope.FromArray2D([][]int{{1, 2}, {3, 4}}, rope.DebugOptions())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := rope.MapUntil(ctx, r, func(v int) int { return v }, nil)
	require.Nil(t, out)
	require.Error(t, err)

	var ce *rope.CancelledError[int, int]
	require.ErrorAs(t, err, &ce)
	require.Nil(t, ce.Processed)
	require.NotNil(t, ce.Unprocessed)
	require.Equal(t, r.Rows(), ce.Unprocessed.Rows())
	require.Equal(t, r.Cols(), ce.Unprocessed.Cols())
}

// Cancellation observed between two HCat children keeps the finished
// child's result in Processed and hands back the untouched sibling as
// Unprocessed, instead of discarding the completed half.
func TestMapUntilCancellationBetweenHCatChildrenKeepsFinishedHalf(t *testing.T) {
	a, err := rope.FromArray2D([][]int{{1, 2, 3, 4}, {5, 6, 7, 8}}, rope.DebugOptions())
	require.NoError(t, err)
	b, err := rope.FromArray2D([][]int{{9, 10, 11, 12}, {13, 14, 15, 16}}, rope.DebugOptions())
	require.NoError(t, err)
	r, err := rope.HCat(a, b, rope.DebugOptions())
	require.NoError(t, err)
	require.True(t, r.IsHCat())

	ctx, cancel := context.WithCancel(context.Background())
	var count int
	f := func(v int) int {
		count++
		if count == a.Rows()*a.Cols() {
			// a's leaf has just finished; cancel before b starts.
			cancel()
		}
		return v
	}

	out, err := rope.MapUntil(ctx, r, f, nil)
	require.Nil(t, out)
	require.Error(t, err)

	var ce *rope.CancelledError[int, int]
	require.ErrorAs(t, err, &ce)
	require.NotNil(t, ce.Processed)
	require.Equal(t, [][]int{{1, 2, 3, 4}, {5, 6, 7, 8}}, rope.ToArray2D(ce.Processed))
	require.NotNil(t, ce.Unprocessed)
	require.Equal(t, [][]int{{9, 10, 11, 12}, {13, 14, 15, 16}}, rope.ToArray2D(ce.Unprocessed))
}
