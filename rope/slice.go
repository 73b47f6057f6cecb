package rope

// Slice returns the h x w window of r starting at (i, j), clamped to
// r's extent. A window with no overlap with r yields Empty.
func Slice[T any](r *Rope[T], i, j, h, w int) *Rope[T] {
	return sliceCtor(i, j, h, w, r)
}

// HSlice returns columns [j, j+w) of r, all rows included.
func HSlice[T any](r *Rope[T], j, w int) *Rope[T] {
	return sliceCtor(0, j, r.rows, w, r)
}

// VSlice returns rows [i, i+h) of r, all columns included.
func VSlice[T any](r *Rope[T], i, h int) *Rope[T] {
	return sliceCtor(i, 0, h, r.cols, r)
}

// HSplit2 splits r into two ropes at column j: columns [0, j) and
// [j, Cols).
func HSplit2[T any](r *Rope[T], j int) (left, right *Rope[T]) {
	return sliceCtor(0, 0, r.rows, j, r), sliceCtor(0, j, r.rows, r.cols-j, r)
}

// VSplit2 splits r into two ropes at row i: rows [0, i) and [i, Rows).
func VSplit2[T any](r *Rope[T], i int) (top, bottom *Rope[T]) {
	return sliceCtor(0, 0, i, r.cols, r), sliceCtor(i, 0, r.rows-i, r.cols, r)
}

// Split4 splits r into four quadrants at (i, j): top-left, top-right,
// bottom-left, bottom-right.
func Split4[T any](r *Rope[T], i, j int) (tl, tr, bl, br *Rope[T]) {
	tl = sliceCtor(0, 0, i, j, r)
	tr = sliceCtor(0, j, i, r.cols-j, r)
	bl = sliceCtor(i, 0, r.rows-i, j, r)
	br = sliceCtor(i, j, r.rows-i, r.cols-j, r)
	return
}

// Midpoints returns the row and column indices that bisect r as
// evenly as possible (Rows/2, Cols/2), a ready-made pivot for Split4.
func Midpoints[T any](r *Rope[T]) (i, j int) {
	return r.rows / 2, r.cols / 2
}
