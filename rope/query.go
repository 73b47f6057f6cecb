package rope

// Forall reports whether p holds for every cell of r, short-circuiting
// on the first failure.
func Forall[T any](r *Rope[T], p func(T) bool) bool {
	switch r.kind {
	case KEmpty:
		return true
	case KLeaf:
		ok := true
		r.leaf.Iterate(func(_, _ int, v T) {
			if ok {
				ok = p(v)
			}
		})
		return ok
	case KSparse:
		return p(r.val)
	case KSlice:
		return forallOffset(r.inner, r.si, r.sj, r.rows, r.cols, p)
	default: // KHCat, KVCat
		return Forall(r.a, p) && Forall(r.b, p)
	}
}

func forallOffset[T any](r *Rope[T], oi, oj, h, w int, p func(T) bool) bool {
	if h <= 0 || w <= 0 {
		return true
	}
	switch r.kind {
	case KEmpty:
		return true
	case KLeaf:
		v, err := r.leaf.View(oi, oj, h, w)
		if err != nil {
			panic(err)
		}
		ok := true
		v.Iterate(func(_, _ int, val T) {
			if ok {
				ok = p(val)
			}
		})
		return ok
	case KSparse:
		return p(r.val)
	case KSlice:
		return forallOffset(r.inner, r.si+oi, r.sj+oj, h, w, p)
	case KHCat:
		if oj+w <= r.a.cols {
			return forallOffset(r.a, oi, oj, h, w, p)
		}
		if oj >= r.a.cols {
			return forallOffset(r.b, oi, oj-r.a.cols, h, w, p)
		}
		leftW := r.a.cols - oj
		return forallOffset(r.a, oi, oj, h, leftW, p) && forallOffset(r.b, oi, 0, h, w-leftW, p)
	default: // KVCat
		if oi+h <= r.a.rows {
			return forallOffset(r.a, oi, oj, h, w, p)
		}
		if oi >= r.a.rows {
			return forallOffset(r.b, oi-r.a.rows, oj, h, w, p)
		}
		topH := r.a.rows - oi
		return forallOffset(r.a, oi, oj, topH, w, p) && forallOffset(r.b, 0, oj, h-topH, w, p)
	}
}

// Exists reports whether p holds for some cell of r, short-circuiting
// on the first success.
func Exists[T any](r *Rope[T], p func(T) bool) bool {
	return !Forall(r, func(v T) bool { return !p(v) })
}

// Equals reports whether a and b have the same shape and the same
// value at every (i, j). It bisects both operands together, taking
// the fast path whenever their tree shapes agree and short-circuiting
// on the first mismatch.
func Equals[T comparable](a, b *Rope[T]) bool {
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	return equalsRec(a, b)
}

func equalsRec[T comparable](a, b *Rope[T]) bool {
	if a.rows == 0 || a.cols == 0 {
		return true
	}
	switch {
	case a.kind == KSparse && b.kind == KSparse:
		return a.val == b.val
	case a.rows == 1 && a.cols == 1:
		av, _ := Get(a, 0, 0)
		bv, _ := Get(b, 0, 0)
		return av == bv
	case a.kind == KHCat && b.kind == KHCat && a.a.cols == b.a.cols:
		return equalsRec(a.a, b.a) && equalsRec(a.b, b.b)
	case a.kind == KVCat && b.kind == KVCat && a.a.rows == b.a.rows:
		return equalsRec(a.a, b.a) && equalsRec(a.b, b.b)
	default:
		if a.rows >= a.cols {
			mid := a.rows / 2
			at, ab := VSplit2(a, mid)
			bt, bb := VSplit2(b, mid)
			return equalsRec(at, bt) && equalsRec(ab, bb)
		}
		mid := a.cols / 2
		al, ar := HSplit2(a, mid)
		bl, br := HSplit2(b, mid)
		return equalsRec(al, bl) && equalsRec(ar, br)
	}
}
