package rope_test

import (
	"testing"

	"github.com/katalvlaran/quadrope/rope"
	"github.com/stretchr/testify/require"
)

func TestMapPreservesSparse(t *testing.T) {
	r := rope.Create(5, 5, 3)
	doubled := rope.Map(r, func(v int) int { return v * 2 })
	require.True(t, doubled.IsSparse())
	v, err := rope.Get(doubled, 2, 2)
	require.NoError(t, err)
	require.Equal(t, 6, v)
}

func TestZipFastPathMatchingSparse(t *testing.T) {
	a := rope.Create(3, 3, 2)
	b := rope.Create(3, 3, 5)
	z, err := rope.Zip(a, b, func(x, y int) int { return x + y }, rope.DefaultOptions())
	require.NoError(t, err)
	require.True(t, z.IsSparse())
	v, err := rope.Get(z, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 7, v)
}

func TestZipGeneralPathAgreesWithMaterialized(t *testing.T) {
	a, err := rope.FromArray2D(grid(7, 9), rope.DebugOptions())
	require.NoError(t, err)
	b, err := rope.FromArray2D(grid(7, 9), rope.DebugOptions())
	require.NoError(t, err)
	// b has a different internal split layout (built with a shifted
	// window) to force the general path rather than the HCat/VCat fast
	// path. A window covering b exactly would return b itself, so b is
	// first padded with one extra column on the left and the window is
	// taken one column in.
	padded, err := rope.HCat(rope.Create(7, 1, 0), b, rope.DebugOptions())
	require.NoError(t, err)
	b = rope.Slice(padded, 0, 1, 7, 9)

	z, err := rope.Zip(a, b, func(x, y int) int { return x - y }, rope.DefaultOptions())
	require.NoError(t, err)

	got := rope.ToArray2D(z)
	for i := range got {
		for j := range got[i] {
			require.Equal(t, 0, got[i][j])
		}
	}
}

func TestZipShapeMismatch(t *testing.T) {
	a := rope.Create(2, 2, 0)
	b := rope.Create(3, 2, 0)
	_, err := rope.Zip(a, b, func(x, y int) int { return x + y }, rope.DefaultOptions())
	require.ErrorIs(t, err, rope.ErrShapeMismatch)
}

func TestReduceSumsAll(t *testing.T) {
	r, err := rope.FromArray2D(grid(4, 4), rope.DebugOptions())
	require.NoError(t, err)
	sum := rope.Reduce(r, func(acc, v int) int { return acc + v }, 0)

	want := 0
	for _, row := range grid(4, 4) {
		for _, v := range row {
			want += v
		}
	}
	require.Equal(t, want, sum)
}

func TestReduceOverSparse(t *testing.T) {
	r := rope.Create(4, 5, 1)
	sum := rope.Reduce(r, func(acc, v int) int { return acc + v }, 0)
	require.Equal(t, 20, sum)
}

func TestMapReduceFusesMapAndFold(t *testing.T) {
	r, err := rope.FromArray2D(grid(3, 3), rope.DebugOptions())
	require.NoError(t, err)
	sumOfSquares := rope.MapReduce(r, func(v int) int { return v * v }, func(acc, v int) int { return acc + v }, 0)

	want := 0
	for _, row := range grid(3, 3) {
		for _, v := range row {
			want += v * v
		}
	}
	require.Equal(t, want, sumOfSquares)
}

func TestHReduceAndVReduce(t *testing.T) {
	r, err := rope.FromArray2D([][]int{{1, 2, 3}, {4, 5, 6}}, rope.DebugOptions())
	require.NoError(t, err)

	hr, err := rope.HReduce(r, func(acc, v int) int { return acc + v }, 0, rope.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, [][]int{{6}, {15}}, rope.ToArray2D(hr))

	vr, err := rope.VReduce(r, func(acc, v int) int { return acc + v }, 0, rope.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, [][]int{{5, 7, 9}}, rope.ToArray2D(vr))
}

func TestHScanIsRowPrefixSum(t *testing.T) {
	r, err := rope.FromArray2D([][]int{{1, 2, 3}, {4, 5, 6}}, rope.DebugOptions())
	require.NoError(t, err)
	zero := func(int) int { return 0 }
	s, err := rope.HScan(r, func(acc, v int) int { return acc + v }, zero, rope.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 3, 6}, {4, 9, 15}}, rope.ToArray2D(s))
}

func TestVScanIsColumnPrefixSum(t *testing.T) {
	r, err := rope.FromArray2D([][]int{{1, 2}, {3, 4}, {5, 6}}, rope.DebugOptions())
	require.NoError(t, err)
	zero := func(int) int { return 0 }
	s, err := rope.VScan(r, func(acc, v int) int { return acc + v }, zero, rope.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2}, {4, 6}, {9, 12}}, rope.ToArray2D(s))
}

func TestScanMatchesSummedAreaTable(t *testing.T) {
	src := [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	r, err := rope.FromArray2D(src, rope.DebugOptions())
	require.NoError(t, err)

	plus := func(acc, v int) int { return acc + v }
	minus := func(acc, v int) int { return acc - v }
	zero := func(int) int { return 0 }
	s, err := rope.Scan(r, plus, minus, zero, rope.DefaultOptions())
	require.NoError(t, err)

	want := make([][]int, 3)
	for i := range want {
		want[i] = make([]int, 3)
		for j := range want[i] {
			v := src[i][j]
			if i > 0 {
				v += want[i-1][j]
			}
			if j > 0 {
				v += want[i][j-1]
			}
			if i > 0 && j > 0 {
				v -= want[i-1][j-1]
			}
			want[i][j] = v
		}
	}
	require.Equal(t, want, rope.ToArray2D(s))
}

func TestHFilterKeepsMatchingCells(t *testing.T) {
	r, err := rope.FromArray2D([][]int{{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}}, rope.DebugOptions())
	require.NoError(t, err)
	f, err := rope.HFilter(r, func(v int) bool { return v%2 == 0 }, rope.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 2, 4, 6, 8}}, rope.ToArray2D(f))
}

func TestHFilterRejectsMultiRow(t *testing.T) {
	r, err := rope.FromArray2D([][]int{{1, 2}, {3, 4}}, rope.DebugOptions())
	require.NoError(t, err)
	_, err = rope.HFilter(r, func(v int) bool { return true }, rope.DefaultOptions())
	require.ErrorIs(t, err, rope.ErrShapeMismatch)
}

func TestVFilterKeepsMatchingCells(t *testing.T) {
	r, err := rope.FromArray2D([][]int{{0}, {1}, {2}, {3}, {4}, {5}}, rope.DebugOptions())
	require.NoError(t, err)
	f, err := rope.VFilter(r, func(v int) bool { return v%2 == 0 }, rope.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, [][]int{{0}, {2}, {4}}, rope.ToArray2D(f))
}

func TestVFilterRejectsMultiCol(t *testing.T) {
	r, err := rope.FromArray2D([][]int{{1, 2}, {3, 4}}, rope.DebugOptions())
	require.NoError(t, err)
	_, err = rope.VFilter(r, func(v int) bool { return true }, rope.DefaultOptions())
	require.ErrorIs(t, err, rope.ErrShapeMismatch)
}

func TestCompressDetectsUniformRegion(t *testing.T) {
	rows := make([][]int, 8)
	for i := range rows {
		row := make([]int, 8)
		for j := range row {
			row[j] = 7
		}
		rows[i] = row
	}
	r, err := rope.FromArray2D(rows, rope.DebugOptions())
	require.NoError(t, err)
	require.False(t, r.IsSparse())

	c, err := rope.Compress(r, rope.DefaultOptions())
	require.NoError(t, err)
	require.True(t, c.IsSparse())
	require.True(t, rope.Equals(r, c))
}

func TestReallocateChangesChunkingNotContent(t *testing.T) {
	r, err := rope.FromArray2D(grid(10, 10), rope.DebugOptions())
	require.NoError(t, err)
	re, err := rope.Reallocate(r, rope.DefaultOptions())
	require.NoError(t, err)
	require.True(t, rope.Equals(r, re))
}
