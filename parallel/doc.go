// Package parallel mirrors package rope's bulk operations with
// fork-join parallel implementations. Using only rope's public API,
// each operation splits its input in two -- Map, Zip, Reduce,
// MapReduce, HRev, VRev, Transpose and MapUntil at an HCat/VCat node's
// children, the filter and row/column reduce operations at the row or
// column midpoint -- forks the two branches onto a
// github.com/panjf2000/ants/v2 goroutine pool, and falls back to the
// sequential rope implementation once a subtree's cell count drops at
// or below Options' SeqThreshold (or, for the child-splitting
// operations, the subtree isn't a cat node at all). MapUntil instead
// forks its branches through golang.org/x/sync/errgroup, threading a
// context.Context so a caller can cancel an in-flight parallel map and
// get every in-flight branch to unwind promptly.
package parallel
