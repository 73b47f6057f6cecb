// Package quadrope is a persistent, immutable two-dimensional
// sequence library built around the quad rope: a tree of small dense
// tiles, sparse uniform regions, and concatenation nodes that together
// let bulk operations -- map, zip, reduce, scan, filter -- run without
// ever mutating a published value.
//
// Under the hood, everything is organized under six subpackages:
//
//	tile/     — small dense rectangular buffers with copy-on-write views
//	target/   — mutable scratch buffers that get frozen into tiles
//	fib/      — the Fibonacci balance table backing the rope's depth bound
//	rope/     — the quad rope itself: construction, indexing, bulk ops
//	numeric/  — float64 specializations that exploit Sparse regions directly
//	parallel/ — fork-join counterparts of rope's bulk operations
//
//	go get github.com/katalvlaran/quadrope
package quadrope
