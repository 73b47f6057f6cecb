// Package tile implements the leaf storage unit of a quad rope: a small
// dense rectangular buffer plus an origin-and-size view onto it (an
// "array slice" in the terminology of the quad-rope papers).
//
// A Tile is logically immutable once it is wrapped into a published
// rope: its backing buffer is written only while it is freshly
// allocated and exclusively owned -- by the target package during one
// bulk operation, or by the rope package filling a new tile -- and is
// frozen before the tile is published. The only public mutator is
// SetUnsafe, meant for exactly that phase; persistent updates such as
// the rope package's Set go through the copy-on-write WithCell.
package tile
