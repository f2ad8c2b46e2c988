package lloyd

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidK is returned when k is not in [1, n] or no clusters exist.
	ErrInvalidK = errors.New("lloyd: invalid k")

	// ErrEmptyInput is returned when the input point set is empty.
	ErrEmptyInput = errors.New("lloyd: empty input")

	// ErrInvalidMaxIterations is returned when the iteration cap is negative.
	ErrInvalidMaxIterations = errors.New("lloyd: negative max iterations")

	// ErrNilRand is returned when no random source is configured.
	ErrNilRand = errors.New("lloyd: nil random source")

	// ErrPartition is returned when cluster membership is not an exact
	// partition of the input set.
	ErrPartition = errors.New("lloyd: membership is not a partition of the input")
)

// ErrDimensionMismatch reports two points of differing dimension.
//
// Index is the position of the offending input point, or -1 if the mismatch
// was detected between a point and a centroid.
type ErrDimensionMismatch struct {
	Index    int
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
	}
	return fmt.Sprintf("dimension mismatch at point %d: expected %d, got %d", e.Index, e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ErrInvalidDimension reports points without coordinates.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}
