// Package numeric collects float64-specialized operations over ropes
// that exploit Sparse regions directly rather than falling back to
// Leaf-level iteration: closed-form sums and products over a uniform
// region, quadrant-recursive construction of diagonal matrices, and a
// pointwise product with multiplicative-identity/zero short-circuits.
package numeric
