package kmeans

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordRun is called after each call to Run.
	// points and k are the run's input sizes, iterations the number of
	// update/check cycles performed, err is nil if successful.
	RecordRun(points, k, iterations int, converged bool, duration time.Duration, err error)

	// RecordIteration is called after each update/check cycle with the
	// largest centroid movement of the cycle.
	RecordIteration(iteration int, shift float64)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRun(int, int, int, bool, time.Duration, error) {}
func (NoopMetricsCollector) RecordIteration(int, float64)                        {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	RunCount        atomic.Int64
	RunErrors       atomic.Int64
	RunTotalNanos   atomic.Int64
	ConvergedRuns   atomic.Int64
	PointsClustered atomic.Int64
	IterationCount  atomic.Int64
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(points, k, iterations int, converged bool, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
		return
	}
	b.PointsClustered.Add(int64(points))
	if converged {
		b.ConvergedRuns.Add(1)
	}
}

// RecordIteration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIteration(int, float64) {
	b.IterationCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		RunCount:        b.RunCount.Load(),
		RunErrors:       b.RunErrors.Load(),
		RunAvgNanos:     b.getAvgRunNanos(),
		ConvergedRuns:   b.ConvergedRuns.Load(),
		PointsClustered: b.PointsClustered.Load(),
		IterationCount:  b.IterationCount.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgRunNanos() int64 {
	count := b.RunCount.Load()
	if count == 0 {
		return 0
	}
	return b.RunTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	RunCount        int64
	RunErrors       int64
	RunAvgNanos     int64
	ConvergedRuns   int64
	PointsClustered int64
	IterationCount  int64
}
