package rope_test

import (
	"testing"

	"github.com/katalvlaran/quadrope/fib"
	"github.com/katalvlaran/quadrope/rope"
	"github.com/stretchr/testify/require"
)

func TestFibBalancedHoldsAfterManyHCats(t *testing.T) {
	r := rope.Create(1, 1, 0)
	opts := rope.DebugOptions()
	for i := 0; i < 64; i++ {
		next := rope.Create(1, 1, i)
		var err error
		r, err = rope.HCat(r, next, opts)
		require.NoError(t, err)
	}
	require.Equal(t, 1, r.Rows())
	require.Equal(t, 65, r.Cols())
	require.True(t, fib.Balanced(r.Depth(), r.Cols()))
}

func TestFibTableGrows(t *testing.T) {
	require.Equal(t, uint64(0), fib.F(0))
	require.Equal(t, uint64(1), fib.F(1))
	require.Equal(t, uint64(1), fib.F(2))
	require.Equal(t, uint64(2), fib.F(3))
	require.Equal(t, uint64(3), fib.F(4))
	require.Equal(t, uint64(5), fib.F(5))
	require.Equal(t, uint64(55), fib.F(10))
}

func TestBalancedRejectsPastMaxDepth(t *testing.T) {
	require.False(t, fib.Balanced(fib.MaxDepth, 1<<30))
}
