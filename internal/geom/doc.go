// Package geom holds the small vector and matrix types used to place unit
// cells and shapes. Matrices are 4x4 homogeneous and column-major so that
// nested cell transforms compose by plain multiplication.
package geom
