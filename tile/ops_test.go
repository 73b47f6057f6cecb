package tile_test

import (
	"testing"

	"github.com/katalvlaran/quadrope/tile"
	"github.com/stretchr/testify/require"
)

func TestMapAndMap2(t *testing.T) {
	src, _ := tile.FromRows([][]int{{1, 2}, {3, 4}})
	dst := tile.New[int](2, 2)
	tile.Map(func(v int) int { return v * 10 }, src, dst)
	require.Equal(t, [][]int{{10, 20}, {30, 40}}, dst.ToRows())

	b, _ := tile.FromRows([][]int{{1, 1}, {1, 1}})
	dst2 := tile.New[int](2, 2)
	tile.Map2(func(a, b int) int { return a + b }, src, b, dst2)
	require.Equal(t, [][]int{{2, 3}, {4, 5}}, dst2.ToRows())
}

func TestReduce(t *testing.T) {
	src, _ := tile.FromRows([][]int{{1, 2}, {3, 4}})
	sum := tile.Reduce(func(acc, v int) int { return acc + v }, 0, src)
	require.Equal(t, 10, sum)
}

func TestHScanVScan(t *testing.T) {
	src, _ := tile.FromRows([][]int{{1, 1, 1}, {1, 1, 1}})
	dst := tile.New[int](2, 3)
	tile.HScan(func(acc, v int) int { return acc + v }, func(row int) int { return 0 }, src, dst)
	require.Equal(t, [][]int{{1, 2, 3}, {1, 2, 3}}, dst.ToRows())

	dst2 := tile.New[int](2, 3)
	tile.VScan(func(acc, v int) int { return acc + v }, func(col int) int { return 0 }, src, dst2)
	require.Equal(t, [][]int{{1, 1, 1}, {2, 2, 2}}, dst2.ToRows())
}

func TestFilters(t *testing.T) {
	row, _ := tile.FromRows([][]int{{0, 1, 2, 3, 4}})
	even := tile.HFilterRow(func(v int) bool { return v%2 == 0 }, row)
	require.Equal(t, [][]int{{0, 2, 4}}, even.ToRows())

	col, _ := tile.FromRows([][]int{{0}, {1}, {2}, {3}, {4}})
	evenCol := tile.VFilterCol(func(v int) bool { return v%2 == 0 }, col)
	require.Equal(t, [][]int{{0}, {2}, {4}}, evenCol.ToRows())
}
