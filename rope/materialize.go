package rope

import (
	"github.com/katalvlaran/quadrope/target"
	"github.com/katalvlaran/quadrope/tile"
)

// Materialize flattens r into a single dense tile, the only place in
// the package that forces an opaque Slice-over-cat subtree down to
// concrete values. Sparse regions are expanded; callers that want to
// avoid that expansion should use Reallocate instead, which keeps
// Sparse nodes as Sparse.
func Materialize[T any](r *Rope[T]) tile.Tile[T] {
	if r.rows == 0 || r.cols == 0 {
		return tile.New[T](0, 0)
	}
	tgt := target.New[T](r.rows, r.cols)
	materializeWindow(r, tgt)
	return tgt.Freeze()
}

// materializeWindow writes r's values into tgt, which spans exactly
// r's logical (0,0)-(rows,cols) extent.
func materializeWindow[T any](r *Rope[T], tgt *target.Target[T]) {
	switch r.kind {
	case KEmpty:
		return
	case KLeaf:
		r.leaf.Iterate(func(i, j int, v T) { tgt.Set(i, j, v) })
	case KSparse:
		for i := 0; i < r.rows; i++ {
			for j := 0; j < r.cols; j++ {
				tgt.Set(i, j, r.val)
			}
		}
	case KSlice:
		materializeOffset(r.inner, r.si, r.sj, r.rows, r.cols, tgt)
	case KHCat:
		materializeWindow(r.a, tgt.Window(0, 0, r.a.rows, r.a.cols))
		materializeWindow(r.b, tgt.Window(0, r.a.cols, r.b.rows, r.b.cols))
	case KVCat:
		materializeWindow(r.a, tgt.Window(0, 0, r.a.rows, r.a.cols))
		materializeWindow(r.b, tgt.Window(r.a.rows, 0, r.b.rows, r.b.cols))
	}
}

// materializeOffset writes the (oi, oj, h, w) window of r into tgt,
// which spans exactly that h x w extent starting at its own (0,0).
// This is the general form materializeWindow delegates to whenever a
// Slice node's offset must be threaded through an opaque cat subtree.
func materializeOffset[T any](r *Rope[T], oi, oj, h, w int, tgt *target.Target[T]) {
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
		v.Iterate(func(i, j int, val T) { tgt.Set(i, j, val) })
	case KSparse:
		for i := 0; i < h; i++ {
			for j := 0; j < w; j++ {
				tgt.Set(i, j, r.val)
			}
		}
	case KSlice:
		materializeOffset(r.inner, r.si+oi, r.sj+oj, h, w, tgt)
	case KHCat:
		if oj+w <= r.a.cols {
			materializeOffset(r.a, oi, oj, h, w, tgt)
		} else if oj >= r.a.cols {
			materializeOffset(r.b, oi, oj-r.a.cols, h, w, tgt)
		} else {
			leftW := r.a.cols - oj
			materializeOffset(r.a, oi, oj, h, leftW, tgt.Window(0, 0, h, leftW))
			materializeOffset(r.b, oi, 0, h, w-leftW, tgt.Window(0, leftW, h, w-leftW))
		}
	case KVCat:
		if oi+h <= r.a.rows {
			materializeOffset(r.a, oi, oj, h, w, tgt)
		} else if oi >= r.a.rows {
			materializeOffset(r.b, oi-r.a.rows, oj, h, w, tgt)
		} else {
			topH := r.a.rows - oi
			materializeOffset(r.a, oi, oj, topH, w, tgt.Window(0, 0, topH, w))
			materializeOffset(r.b, 0, oj, h-topH, w, tgt.Window(topH, 0, h-topH, w))
		}
	}
}
