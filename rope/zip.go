package rope

import "github.com/katalvlaran/quadrope/tile"

// Zip combines a and b pointwise with f. a and b must share the same
// shape. Zip takes the fast path whenever a and b's tree shapes agree
// structurally (matching Sparse, matching Leaf, or matching cats with
// identical split points) and otherwise falls back to a general path
// that bisects both operands at the same coordinate until a fast-path
// case is reached.
func Zip[T, U, V any](a *Rope[T], b *Rope[U], f func(T, U) V, opts Options) (*Rope[V], error) {
	if a.rows != b.rows || a.cols != b.cols {
		return nil, wrapShape("rope.Zip", a.rows, b.rows)
	}
	return zipRec(a, b, f, opts)
}

func zipRec[T, U, V any](a *Rope[T], b *Rope[U], f func(T, U) V, opts Options) (*Rope[V], error) {
	if a.rows == 0 || a.cols == 0 {
		return Empty[V](), nil
	}
	switch {
	case a.kind == KSparse && b.kind == KSparse:
		return sparseNode[V](a.rows, a.cols, f(a.val, b.val)), nil
	case a.kind == KSparse:
		av := a.val
		return Map(b, func(u U) V { return f(av, u) }), nil
	case b.kind == KSparse:
		bv := b.val
		return Map(a, func(t T) V { return f(t, bv) }), nil
	case a.kind == KLeaf && b.kind == KLeaf:
		dst := tile.NewOwned[V](a.rows, a.cols)
		for i := 0; i < a.rows; i++ {
			for j := 0; j < a.cols; j++ {
				av, _ := a.leaf.At(i, j)
				bv, _ := b.leaf.At(i, j)
				dst.SetUnsafe(i, j, f(av, bv))
			}
		}
		return leaf(dst), nil
	case a.kind == KHCat && b.kind == KHCat && a.a.cols == b.a.cols:
		left, err := zipRec(a.a, b.a, f, opts)
		if err != nil {
			return nil, err
		}
		right, err := zipRec(a.b, b.b, f, opts)
		if err != nil {
			return nil, err
		}
		return HCat(left, right, opts)
	case a.kind == KVCat && b.kind == KVCat && a.a.rows == b.a.rows:
		top, err := zipRec(a.a, b.a, f, opts)
		if err != nil {
			return nil, err
		}
		bot, err := zipRec(a.b, b.b, f, opts)
		if err != nil {
			return nil, err
		}
		return VCat(top, bot, opts)
	default:
		return zipGeneral(a, b, f, opts)
	}
}

// zipGeneral is the general-path fallback: it bisects a and b at a
// shared coordinate (favoring whichever axis is longer) and recurses,
// eventually reaching a 1x1 base case or rediscovering a fast-path
// match along the way.
func zipGeneral[T, U, V any](a *Rope[T], b *Rope[U], f func(T, U) V, opts Options) (*Rope[V], error) {
	if a.rows == 1 && a.cols == 1 {
		av, err := Get(a, 0, 0)
		if err != nil {
			return nil, err
		}
		bv, err := Get(b, 0, 0)
		if err != nil {
			return nil, err
		}
		return Singleton(f(av, bv)), nil
	}
	if a.rows >= a.cols {
		mid := a.rows / 2
		at, ab := VSplit2(a, mid)
		bt, bb := VSplit2(b, mid)
		top, err := zipRec(at, bt, f, opts)
		if err != nil {
			return nil, err
		}
		bot, err := zipRec(ab, bb, f, opts)
		if err != nil {
			return nil, err
		}
		return VCat(top, bot, opts)
	}
	mid := a.cols / 2
	al, ar := HSplit2(a, mid)
	bl, br := HSplit2(b, mid)
	left, err := zipRec(al, bl, f, opts)
	if err != nil {
		return nil, err
	}
	right, err := zipRec(ar, br, f, opts)
	if err != nil {
		return nil, err
	}
	return HCat(left, right, opts)
}
