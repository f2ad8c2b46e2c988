package distance

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ErrDimensionMismatch is a named error type for dimension mismatch.
type ErrDimensionMismatch struct {
	Expected int // Expected dimensions
	Actual   int // Actual dimensions
}

// Error returns the error message for dimension mismatch.
func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// Func is a function type for distance calculation.
type Func func(a, b []float64) (float64, error)

// Euclidean calculates the Euclidean (L2) distance between two vectors.
// Returns *ErrDimensionMismatch if the vectors differ in length.
func Euclidean(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, &ErrDimensionMismatch{Expected: len(a), Actual: len(b)}
	}
	if len(a) == 0 {
		return 0, nil
	}
	return floats.Distance(a, b, 2), nil
}

// SquaredEuclidean calculates the squared Euclidean distance between two vectors.
// Returns *ErrDimensionMismatch if the vectors differ in length.
func SquaredEuclidean(a, b []float64) (float64, error) {
	d, err := Euclidean(a, b)
	if err != nil {
		return 0, err
	}
	return d * d, nil
}
