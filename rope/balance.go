package rope

import "github.com/katalvlaran/quadrope/fib"

// isBalanced reports whether r satisfies the Fibonacci balance
// invariant: a tree of depth d must span at least fib(d+2) along its
// cat axis. Leaves, Empty and Sparse nodes are trivially balanced;
// Slice defers to its inner rope.
func isBalanced[T any](r *Rope[T]) bool {
	switch r.kind {
	case KEmpty, KLeaf, KSparse:
		return true
	case KSlice:
		return isBalanced(r.inner)
	default:
		n := r.rows
		if r.kind == KHCat {
			n = r.cols
		}
		return fib.Balanced(r.depth, n)
	}
}

// spine flattens r's cat nodes along one axis into an ordered list of
// leaves (in the generalized sense: any node that is not itself a cat
// along that axis), the standard rebalancing approach of collecting
// the fringe and rebuilding a balanced tree bottom-up.
func spine[T any](r *Rope[T], horizontal bool, out *[]*Rope[T]) {
	isCat := (horizontal && r.kind == KHCat) || (!horizontal && r.kind == KVCat)
	if !isCat {
		*out = append(*out, r)
		return
	}
	spine(r.a, horizontal, out)
	spine(r.b, horizontal, out)
}

// rebuildBalanced rebuilds a balanced tree from an ordered fringe by
// repeated pairwise folding, producing a tree of depth O(log n) rather
// than the left- or right-leaning chain a naive fold would give.
func rebuildBalanced[T any](parts []*Rope[T], horizontal bool) (*Rope[T], error) {
	if len(parts) == 0 {
		return Empty[T](), nil
	}
	for len(parts) > 1 {
		next := make([]*Rope[T], 0, (len(parts)+1)/2)
		for i := 0; i < len(parts); i += 2 {
			if i+1 == len(parts) {
				next = append(next, parts[i])
				continue
			}
			var (
				n   *Rope[T]
				err error
			)
			if horizontal {
				n, err = hnode(parts[i], parts[i+1])
			} else {
				n, err = vnode(parts[i], parts[i+1])
			}
			if err != nil {
				return nil, err
			}
			next = append(next, n)
		}
		parts = next
	}
	return parts[0], nil
}

// rebalance collects r's fringe along the given axis and rebuilds it
// into a depth-balanced tree. It is invoked only when a cat node's
// depth has drifted past the Fibonacci bound.
func rebalance[T any](r *Rope[T], horizontal bool) (*Rope[T], error) {
	var parts []*Rope[T]
	spine(r, horizontal, &parts)
	return rebuildBalanced(parts, horizontal)
}
