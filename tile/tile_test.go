package tile_test

import (
	"testing"

	"github.com/katalvlaran/quadrope/tile"
	"github.com/stretchr/testify/require"
)

func TestNewAndAt(t *testing.T) {
	tl := tile.New[int](2, 3)
	v, err := tl.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, v)

	_, err = tl.At(2, 0)
	require.ErrorIs(t, err, tile.ErrOutOfBounds)

	_, err = tl.At(0, -1)
	require.ErrorIs(t, err, tile.ErrOutOfBounds)
}

func TestFromRowsRectangularityCheck(t *testing.T) {
	_, err := tile.FromRows([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, tile.ErrNonRectangular)

	tl, err := tile.FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, 2, tl.Rows())
	require.Equal(t, 2, tl.Cols())
	v, _ := tl.At(1, 0)
	require.Equal(t, 3, v)
}

func TestWithCellCopyOnWrite(t *testing.T) {
	tl, err := tile.FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	tl2, err := tl.WithCell(0, 1, 99)
	require.NoError(t, err)

	v, _ := tl.At(0, 1)
	require.Equal(t, 2, v, "original tile must not be mutated")

	v2, _ := tl2.At(0, 1)
	require.Equal(t, 99, v2)
}

func TestView(t *testing.T) {
	tl, err := tile.FromRows([][]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
	})
	require.NoError(t, err)

	sub, err := tl.View(1, 1, 2, 2)
	require.NoError(t, err)
	require.Equal(t, 2, sub.Rows())
	require.Equal(t, 2, sub.Cols())
	v, _ := sub.At(0, 0)
	require.Equal(t, 4, v)
	v, _ = sub.At(1, 1)
	require.Equal(t, 8, v)

	_, err = tl.View(0, 0, 4, 1)
	require.ErrorIs(t, err, tile.ErrOutOfBounds)
}

func TestHCatVCat(t *testing.T) {
	a, _ := tile.FromRows([][]int{{1, 2}, {3, 4}})
	b, _ := tile.FromRows([][]int{{5, 6}, {7, 8}})

	h, err := tile.HCat(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2, 5, 6}, {3, 4, 7, 8}}, h.ToRows())

	v, err := tile.VCat(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2}, {3, 4}, {5, 6}, {7, 8}}, v.ToRows())

	_, err = tile.HCat(a, tile.New[int](3, 2))
	require.ErrorIs(t, err, tile.ErrShapeMismatch)
}

func TestRevAndTranspose(t *testing.T) {
	tl, _ := tile.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})

	require.Equal(t, [][]int{{3, 2, 1}, {6, 5, 4}}, tl.HRev().ToRows())
	require.Equal(t, [][]int{{4, 5, 6}, {1, 2, 3}}, tl.VRev().ToRows())
	require.Equal(t, [][]int{{1, 4}, {2, 5}, {3, 6}}, tl.Transpose().ToRows())
}

func TestIterate(t *testing.T) {
	tl, _ := tile.FromRows([][]int{{1, 2}, {3, 4}})
	sum := 0
	tl.Iterate(func(i, j int, v int) {
		sum += v
	})
	require.Equal(t, 10, sum)
}
