package rope

import "github.com/katalvlaran/quadrope/tile"

// HScan computes a row-wise prefix scan: result[i][j] = plus(...plus(
// init(i), src[i][0])..., src[i][j]), independently per row. init
// supplies the boundary prefix carried in from the left of row i.
// The result is rebuilt into a fresh tree via opts' leaf-size policy.
func HScan[T any](r *Rope[T], plus func(acc, v T) T, init func(row int) T, opts Options) (*Rope[T], error) {
	t := Materialize(r)
	dst := tile.NewOwned[T](t.Rows(), t.Cols())
	tile.HScan(plus, init, t, dst)
	return FromArray2D(dst.ToRows(), opts)
}

// VScan computes a column-wise prefix scan: result[i][j] = plus(...
// plus(init(j), src[0][j])..., src[i][j]), independently per column.
// init supplies the boundary prefix carried in from above column j.
func VScan[T any](r *Rope[T], plus func(acc, v T) T, init func(col int) T, opts Options) (*Rope[T], error) {
	t := Materialize(r)
	dst := tile.NewOwned[T](t.Rows(), t.Cols())
	tile.VScan(plus, init, t, dst)
	return FromArray2D(dst.ToRows(), opts)
}

// Scan computes the two-dimensional summed-area recurrence
//
//	out[i][j] = minus(plus(plus(src[i][j], out[i-1][j]), out[i][j-1]), out[i-1][j-1])
//
// where out values outside the rectangle come from init: init(j) is
// the boundary prefix above the top edge for column j, init(i) is the
// boundary prefix left of the left edge for row i, and init(-1) is the
// shared corner above and to the left of (0, 0). plus and minus must
// form an invertible pair (minus(plus(x, y), y) == x) the way addition
// and subtraction do for numeric accumulation.
func Scan[T any](r *Rope[T], plus, minus func(acc, v T) T, init func(idx int) T, opts Options) (*Rope[T], error) {
	src := Materialize(r)
	h, w := src.Rows(), src.Cols()
	dst := tile.NewOwned[T](h, w)
	corner := func(i, j int) T {
		switch {
		case i < 0 && j < 0:
			return init(-1)
		case i < 0:
			return init(j)
		case j < 0:
			return init(i)
		}
		v, _ := dst.At(i, j)
		return v
	}
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			sv, _ := src.At(i, j)
			top := corner(i-1, j)
			left := corner(i, j-1)
			diag := corner(i-1, j-1)
			dst.SetUnsafe(i, j, minus(plus(plus(sv, top), left), diag))
		}
	}
	return FromArray2D(dst.ToRows(), opts)
}
