package rope

// HRev returns r with its columns reversed, preserving row order.
func HRev[T any](r *Rope[T]) *Rope[T] {
	switch r.kind {
	case KEmpty, KSparse:
		return r
	case KLeaf:
		return leaf(r.leaf.HRev())
	case KHCat:
		// Row counts are unchanged by HRev, so hnode's shape check can
		// never fail here.
		n, _ := hnode(HRev(r.b), HRev(r.a))
		return n
	case KVCat:
		n, _ := vnode(HRev(r.a), HRev(r.b))
		return n
	default: // KSlice: materialize, the simple correct fallback for an
		// opaque window onto a cat subtree.
		return leaf(Materialize(r).HRev())
	}
}

// VRev returns r with its rows reversed, preserving column order.
func VRev[T any](r *Rope[T]) *Rope[T] {
	switch r.kind {
	case KEmpty, KSparse:
		return r
	case KLeaf:
		return leaf(r.leaf.VRev())
	case KVCat:
		n, _ := vnode(VRev(r.b), VRev(r.a))
		return n
	case KHCat:
		n, _ := hnode(VRev(r.a), VRev(r.b))
		return n
	default:
		return leaf(Materialize(r).VRev())
	}
}

// Transpose returns r with rows and columns swapped: the result's
// (j, i) holds r's (i, j).
func Transpose[T any](r *Rope[T]) *Rope[T] {
	switch r.kind {
	case KEmpty:
		return Empty[T]()
	case KSparse:
		return sparseNode[T](r.cols, r.rows, r.val)
	case KLeaf:
		return leaf(r.leaf.Transpose())
	case KHCat:
		n, _ := vnode(Transpose(r.a), Transpose(r.b))
		return n
	case KVCat:
		n, _ := hnode(Transpose(r.a), Transpose(r.b))
		return n
	default:
		return leaf(Materialize(r).Transpose())
	}
}
