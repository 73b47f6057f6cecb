package rope

import "github.com/katalvlaran/quadrope/tile"

// Reduce folds f over every cell of r, starting from seed. f is
// expected to be associative; cells are combined in tree order (a's
// subtree fully folded before b's), which need not coincide with
// geometric row-major order for an HCat split -- callers that require
// strict row-major order should materialize first.
func Reduce[T any](r *Rope[T], f func(acc, v T) T, seed T) T {
	return reduceInto(r, f, seed)
}

func reduceInto[T any](r *Rope[T], f func(acc, v T) T, acc T) T {
	switch r.kind {
	case KEmpty:
		return acc
	case KLeaf:
		return tile.Reduce(f, acc, r.leaf)
	case KSparse:
		for n := r.rows * r.cols; n > 0; n-- {
			acc = f(acc, r.val)
		}
		return acc
	case KSlice:
		return reduceIntoOffset(r.inner, r.si, r.sj, r.rows, r.cols, f, acc)
	default: // KHCat, KVCat
		acc = reduceInto(r.a, f, acc)
		return reduceInto(r.b, f, acc)
	}
}

func reduceIntoOffset[T any](r *Rope[T], oi, oj, h, w int, f func(acc, v T) T, acc T) T {
	if h <= 0 || w <= 0 {
		return acc
	}
	switch r.kind {
	case KEmpty:
		return acc
	case KLeaf:
		v, err := r.leaf.View(oi, oj, h, w)
		if err != nil {
			panic(err)
		}
		return tile.Reduce(f, acc, v)
	case KSparse:
		for n := h * w; n > 0; n-- {
			acc = f(acc, r.val)
		}
		return acc
	case KSlice:
		return reduceIntoOffset(r.inner, r.si+oi, r.sj+oj, h, w, f, acc)
	case KHCat:
		if oj+w <= r.a.cols {
			return reduceIntoOffset(r.a, oi, oj, h, w, f, acc)
		}
		if oj >= r.a.cols {
			return reduceIntoOffset(r.b, oi, oj-r.a.cols, h, w, f, acc)
		}
		leftW := r.a.cols - oj
		acc = reduceIntoOffset(r.a, oi, oj, h, leftW, f, acc)
		return reduceIntoOffset(r.b, oi, 0, h, w-leftW, f, acc)
	default: // KVCat
		if oi+h <= r.a.rows {
			return reduceIntoOffset(r.a, oi, oj, h, w, f, acc)
		}
		if oi >= r.a.rows {
			return reduceIntoOffset(r.b, oi-r.a.rows, oj, h, w, f, acc)
		}
		topH := r.a.rows - oi
		acc = reduceIntoOffset(r.a, oi, oj, topH, w, f, acc)
		return reduceIntoOffset(r.b, 0, oj, h-topH, w, f, acc)
	}
}

// MapReduce fuses Map and Reduce: m transforms each cell to U before
// combine folds it in, without building the intermediate mapped tree.
func MapReduce[T, U any](r *Rope[T], m func(T) U, combine func(acc, v U) U, seed U) U {
	return mapReduceInto(r, m, combine, seed)
}

func mapReduceInto[T, U any](r *Rope[T], m func(T) U, combine func(acc, v U) U, acc U) U {
	switch r.kind {
	case KEmpty:
		return acc
	case KLeaf:
		r.leaf.Iterate(func(_, _ int, v T) { acc = combine(acc, m(v)) })
		return acc
	case KSparse:
		u := m(r.val)
		for n := r.rows * r.cols; n > 0; n-- {
			acc = combine(acc, u)
		}
		return acc
	case KSlice:
		return mapReduceIntoOffset(r.inner, r.si, r.sj, r.rows, r.cols, m, combine, acc)
	default: // KHCat, KVCat
		acc = mapReduceInto(r.a, m, combine, acc)
		return mapReduceInto(r.b, m, combine, acc)
	}
}

func mapReduceIntoOffset[T, U any](r *Rope[T], oi, oj, h, w int, m func(T) U, combine func(acc, v U) U, acc U) U {
	if h <= 0 || w <= 0 {
		return acc
	}
	switch r.kind {
	case KEmpty:
		return acc
	case KLeaf:
		v, err := r.leaf.View(oi, oj, h, w)
		if err != nil {
			panic(err)
		}
		v.Iterate(func(_, _ int, val T) { acc = combine(acc, m(val)) })
		return acc
	case KSparse:
		u := m(r.val)
		for n := h * w; n > 0; n-- {
			acc = combine(acc, u)
		}
		return acc
	case KSlice:
		return mapReduceIntoOffset(r.inner, r.si+oi, r.sj+oj, h, w, m, combine, acc)
	case KHCat:
		if oj+w <= r.a.cols {
			return mapReduceIntoOffset(r.a, oi, oj, h, w, m, combine, acc)
		}
		if oj >= r.a.cols {
			return mapReduceIntoOffset(r.b, oi, oj-r.a.cols, h, w, m, combine, acc)
		}
		leftW := r.a.cols - oj
		acc = mapReduceIntoOffset(r.a, oi, oj, h, leftW, m, combine, acc)
		return mapReduceIntoOffset(r.b, oi, 0, h, w-leftW, m, combine, acc)
	default: // KVCat
		if oi+h <= r.a.rows {
			return mapReduceIntoOffset(r.a, oi, oj, h, w, m, combine, acc)
		}
		if oi >= r.a.rows {
			return mapReduceIntoOffset(r.b, oi-r.a.rows, oj, h, w, m, combine, acc)
		}
		topH := r.a.rows - oi
		acc = mapReduceIntoOffset(r.a, oi, oj, topH, w, m, combine, acc)
		return mapReduceIntoOffset(r.b, 0, oj, h-topH, w, m, combine, acc)
	}
}

// HReduce folds f across each row independently, returning a Rows() x
// 1 rope of per-row results.
func HReduce[T any](r *Rope[T], f func(acc, v T) T, seed T, opts Options) (*Rope[T], error) {
	rows := Materialize(r).ToRows()
	out := make([][]T, len(rows))
	for i, row := range rows {
		acc := seed
		for _, v := range row {
			acc = f(acc, v)
		}
		out[i] = []T{acc}
	}
	return FromArray2D(out, opts)
}

// VReduce folds f down each column independently, returning a 1 x
// Cols() rope of per-column results.
func VReduce[T any](r *Rope[T], f func(acc, v T) T, seed T, opts Options) (*Rope[T], error) {
	t := Materialize(r)
	out := make([]T, t.Cols())
	for j := 0; j < t.Cols(); j++ {
		acc := seed
		for i := 0; i < t.Rows(); i++ {
			v, _ := t.At(i, j)
			acc = f(acc, v)
		}
		out[j] = acc
	}
	return FromArray2D([][]T{out}, opts)
}

// HMapReduce fuses HReduce with a per-cell map.
func HMapReduce[T, U any](r *Rope[T], m func(T) U, combine func(acc, v U) U, seed U, opts Options) (*Rope[U], error) {
	rows := Materialize(r).ToRows()
	out := make([][]U, len(rows))
	for i, row := range rows {
		acc := seed
		for _, v := range row {
			acc = combine(acc, m(v))
		}
		out[i] = []U{acc}
	}
	return FromArray2D(out, opts)
}

// VMapReduce fuses VReduce with a per-cell map.
func VMapReduce[T, U any](r *Rope[T], m func(T) U, combine func(acc, v U) U, seed U, opts Options) (*Rope[U], error) {
	t := Materialize(r)
	out := make([]U, t.Cols())
	for j := 0; j < t.Cols(); j++ {
		acc := seed
		for i := 0; i < t.Rows(); i++ {
			v, _ := t.At(i, j)
			acc = combine(acc, m(v))
		}
		out[j] = acc
	}
	return FromArray2D([][]U{out}, opts)
}
