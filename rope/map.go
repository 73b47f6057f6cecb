package rope

import (
	"github.com/katalvlaran/quadrope/target"
	"github.com/katalvlaran/quadrope/tile"
)

// Map applies f to every cell of r, preserving r's shape and tree
// structure: Sparse stays Sparse (evaluating f once), Slice stays a
// Slice over a transformed inner rope, and cats are transformed
// child-by-child without rebalancing (a structure-preserving map never
// changes depth).
func Map[T, U any](r *Rope[T], f func(T) U) *Rope[U] {
	switch r.kind {
	case KEmpty:
		return Empty[U]()
	case KLeaf:
		dst := tile.NewOwned[U](r.rows, r.cols)
		tile.Map(f, r.leaf, dst)
		return leaf(dst)
	case KSparse:
		return sparseNode[U](r.rows, r.cols, f(r.val))
	case KSlice:
		return sliceCtor(r.si, r.sj, r.rows, r.cols, Map(r.inner, f))
	case KHCat:
		n, _ := hnode(Map(r.a, f), Map(r.b, f))
		return n
	default: // KVCat
		n, _ := vnode(Map(r.a, f), Map(r.b, f))
		return n
	}
}

// MapWithTarget applies f to every cell of r and writes the results
// directly into tgt, which must span exactly r's logical extent. This
// is the target-threaded form callers use when composing r's mapped
// result into a larger in-progress buffer rather than allocating a
// fresh tree for it, mirroring the tile layer's freeze-on-demand
// discipline.
func MapWithTarget[T, U any](r *Rope[T], f func(T) U, tgt *target.Target[U]) {
	switch r.kind {
	case KEmpty:
		return
	case KLeaf:
		r.leaf.Iterate(func(i, j int, v T) { tgt.Set(i, j, f(v)) })
	case KSparse:
		u := f(r.val)
		for i := 0; i < r.rows; i++ {
			for j := 0; j < r.cols; j++ {
				tgt.Set(i, j, u)
			}
		}
	case KSlice:
		mapOffsetWithTarget(r.inner, r.si, r.sj, r.rows, r.cols, f, tgt)
	case KHCat:
		MapWithTarget(r.a, f, tgt.Window(0, 0, r.a.rows, r.a.cols))
		MapWithTarget(r.b, f, tgt.Window(0, r.a.cols, r.b.rows, r.b.cols))
	case KVCat:
		MapWithTarget(r.a, f, tgt.Window(0, 0, r.a.rows, r.a.cols))
		MapWithTarget(r.b, f, tgt.Window(r.a.rows, 0, r.b.rows, r.b.cols))
	}
}

// mapOffsetWithTarget is MapWithTarget's windowed-offset form, the
// same relationship materializeOffset has to materializeWindow.
func mapOffsetWithTarget[T, U any](r *Rope[T], oi, oj, h, w int, f func(T) U, tgt *target.Target[U]) {
	if h <= 0 || w <= 0 {
		return
	}
	switch r.kind {
	case KEmpty:
		return
	case KLeaf:
		v, err := r.leaf.View(oi, oj, h, w)
		if err != nil {
			panic(err)
		}
		v.Iterate(func(i, j int, val T) { tgt.Set(i, j, f(val)) })
	case KSparse:
		u := f(r.val)
		for i := 0; i < h; i++ {
			for j := 0; j < w; j++ {
				tgt.Set(i, j, u)
			}
		}
	case KSlice:
		mapOffsetWithTarget(r.inner, r.si+oi, r.sj+oj, h, w, f, tgt)
	case KHCat:
		if oj+w <= r.a.cols {
			mapOffsetWithTarget(r.a, oi, oj, h, w, f, tgt)
		} else if oj >= r.a.cols {
			mapOffsetWithTarget(r.b, oi, oj-r.a.cols, h, w, f, tgt)
		} else {
			leftW := r.a.cols - oj
			mapOffsetWithTarget(r.a, oi, oj, h, leftW, f, tgt.Window(0, 0, h, leftW))
			mapOffsetWithTarget(r.b, oi, 0, h, w-leftW, f, tgt.Window(0, leftW, h, w-leftW))
		}
	case KVCat:
		if oi+h <= r.a.rows {
			mapOffsetWithTarget(r.a, oi, oj, h, w, f, tgt)
		} else if oi >= r.a.rows {
			mapOffsetWithTarget(r.b, oi-r.a.rows, oj, h, w, f, tgt)
		} else {
			topH := r.a.rows - oi
			mapOffsetWithTarget(r.a, oi, oj, topH, w, f, tgt.Window(0, 0, topH, w))
			mapOffsetWithTarget(r.b, 0, oj, h-topH, w, f, tgt.Window(topH, 0, h-topH, w))
		}
	}
}

// HMap applies f to every row of r (as a dense slice), producing a
// new rope from the transformed rows. Unlike Map, f may change row
// width, so the result is rebuilt fresh rather than structure-shared.
func HMap[T, U any](r *Rope[T], f func(row []T) []U, opts Options) (*Rope[U], error) {
	rows := Materialize(r).ToRows()
	out := make([][]U, len(rows))
	for i, row := range rows {
		out[i] = f(row)
	}
	return FromArray2D(out, opts)
}

// VMap applies f to every column of r (as a dense slice), producing a
// new rope from the transformed columns.
func VMap[T, U any](r *Rope[T], f func(col []T) []U, opts Options) (*Rope[U], error) {
	t := Materialize(r)
	cols := t.Cols()
	rows := t.Rows()
	in := make([][]T, cols)
	for j := 0; j < cols; j++ {
		col := make([]T, rows)
		for i := 0; i < rows; i++ {
			v, _ := t.At(i, j)
			col[i] = v
		}
		in[j] = col
	}
	var outCols [][]U
	var width int
	for j, col := range in {
		oc := f(col)
		if j == 0 {
			width = len(oc)
			outCols = make([][]U, 0, width)
			for k := 0; k < width; k++ {
				outCols = append(outCols, make([]U, cols))
			}
		}
		for i, v := range oc {
			outCols[i][j] = v
		}
	}
	return FromArray2D(outCols, opts)
}
