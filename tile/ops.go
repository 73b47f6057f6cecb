package tile

// Map applies f to every cell of src, writing results into dst (which
// must already have src's dimensions -- typically a window handed down
// from a target). Kept as a free function, not a method, because Go
// forbids a method from introducing a type parameter beyond its
// receiver's.
func Map[T, U any](f func(T) U, src Tile[T], dst Tile[U]) {
	for i := 0; i < src.h; i++ {
		for j := 0; j < src.w; j++ {
			v, _ := src.At(i, j)
			dst.SetUnsafe(i, j, f(v))
		}
	}
}

// Map2 applies f pairwise to a and b (which must share a's dimensions),
// writing into dst.
func Map2[T, U any](f func(a, b T) U, a, b Tile[T], dst Tile[U]) {
	for i := 0; i < a.h; i++ {
		for j := 0; j < a.w; j++ {
			av, _ := a.At(i, j)
			bv, _ := b.At(i, j)
			dst.SetUnsafe(i, j, f(av, bv))
		}
	}
}

// Reduce folds f (associative, identity seed) over every cell of t in
// row-major order.
func Reduce[T any](f func(acc, v T) T, seed T, t Tile[T]) T {
	acc := seed
	for i := 0; i < t.h; i++ {
		for j := 0; j < t.w; j++ {
			v, _ := t.At(i, j)
			acc = f(acc, v)
		}
	}
	return acc
}

// HScan computes a row-wise prefix scan of src into dst: dst[i,j] =
// plus(dst[i,j-1], src[i,j]), seeded per row by left(i) (the prefix
// carried in from whatever lies to the left of this tile).
func HScan[T any](plus func(acc, v T) T, left func(row int) T, src, dst Tile[T]) {
	for i := 0; i < src.h; i++ {
		acc := left(i)
		for j := 0; j < src.w; j++ {
			v, _ := src.At(i, j)
			acc = plus(acc, v)
			dst.SetUnsafe(i, j, acc)
		}
	}
}

// VScan computes a column-wise prefix scan of src into dst, seeded per
// column by top(j) (the prefix carried in from above this tile).
func VScan[T any](plus func(acc, v T) T, top func(col int) T, src, dst Tile[T]) {
	for j := 0; j < src.w; j++ {
		acc := top(j)
		for i := 0; i < src.h; i++ {
			v, _ := src.At(i, j)
			acc = plus(acc, v)
			dst.SetUnsafe(i, j, acc)
		}
	}
}

// HFilterRow keeps the columns of a single-row (h==1) tile for which p
// holds, returning a freshly allocated, possibly narrower, tile.
func HFilterRow[T any](p func(T) bool, t Tile[T]) Tile[T] {
	kept := make([]T, 0, t.w)
	for j := 0; j < t.w; j++ {
		v, _ := t.At(0, j)
		if p(v) {
			kept = append(kept, v)
		}
	}
	out := New[T](1, len(kept))
	for j, v := range kept {
		out.SetUnsafe(0, j, v)
	}
	return out
}

// VFilterCol keeps the rows of a single-column (w==1) tile for which p
// holds, returning a freshly allocated, possibly shorter, tile.
func VFilterCol[T any](p func(T) bool, t Tile[T]) Tile[T] {
	kept := make([]T, 0, t.h)
	for i := 0; i < t.h; i++ {
		v, _ := t.At(i, 0)
		if p(v) {
			kept = append(kept, v)
		}
	}
	out := New[T](len(kept), 1)
	for i, v := range kept {
		out.SetUnsafe(i, 0, v)
	}
	return out
}
