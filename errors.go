package kmeans

import (
	"errors"
	"fmt"

	"github.com/hupe1980/kmeans/internal/lloyd"
)

var (
	// ErrInvalidK is returned when k is not between 1 and the number of points.
	ErrInvalidK = errors.New("k must be between 1 and the number of points")

	// ErrEmptyInput is returned when no points are given.
	ErrEmptyInput = errors.New("input point set is empty")

	// ErrInvalidMaxIterations is returned when maxIterations is negative.
	ErrInvalidMaxIterations = errors.New("max iterations must not be negative")
)

// ErrDimensionMismatch indicates points of differing dimension.
//
// Index is the position of the offending input point, or -1 if unknown.
// The original underlying error (if any) can be accessed via errors.Unwrap.
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

// ErrInvalidDimension indicates points without coordinates.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidDimension struct {
	Dimension int
	cause     error
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

func (e *ErrInvalidDimension) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var dm *lloyd.ErrDimensionMismatch
	if errors.As(err, &dm) {
		return &ErrDimensionMismatch{Index: dm.Index, Expected: dm.Expected, Actual: dm.Actual, cause: err}
	}
	var id *lloyd.ErrInvalidDimension
	if errors.As(err, &id) {
		return &ErrInvalidDimension{Dimension: id.Dimension, cause: err}
	}

	switch {
	case errors.Is(err, lloyd.ErrInvalidK):
		return fmt.Errorf("%w: %w", ErrInvalidK, err)
	case errors.Is(err, lloyd.ErrEmptyInput):
		return fmt.Errorf("%w: %w", ErrEmptyInput, err)
	case errors.Is(err, lloyd.ErrInvalidMaxIterations):
		return fmt.Errorf("%w: %w", ErrInvalidMaxIterations, err)
	}

	return err
}
