// Package rope implements the quad rope: a persistent, immutable
// two-dimensional sequence addressed by (row, column). A rope is a
// tree whose internal nodes describe horizontal or vertical adjacency
// of two rectangular children, whose leaves hold small dense tiles
// (package tile), and whose sparse nodes represent large rectangular
// regions of one repeated value without materializing them.
//
// Every public constructor and transformation returns a new rope that
// shares structure with its inputs; nothing already published is ever
// mutated. The only mutable state involved in building a result is a
// target buffer (package target), owned exclusively by the in-flight
// operation and frozen into tiles before it is returned.
//
// Six variants make up the tree (see Kind): Empty, Leaf, HCat, VCat,
// Slice and Sparse. Interior nodes are built exclusively through the
// package's unexported pseudo-constructors (leaf, hnode, vnode,
// sliceCtor), which enforce the shape invariants and perform
// opportunistic simplification -- leaf fusion, sparse-region merging,
// slice fusion, and elimination of empty children.
package rope
