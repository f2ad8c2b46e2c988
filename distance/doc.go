// Package distance provides the Euclidean distance used by the clustering engine.
//
// Vectors are plain []float64 slices (model.Point converts implicitly). Both
// inputs must have the same length; a mismatch is reported as
// *ErrDimensionMismatch instead of silently truncating.
//
// # Usage
//
//	d, err := distance.Euclidean(a, b)
//	sq, err := distance.SquaredEuclidean(a, b)
package distance
