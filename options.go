package kmeans

import (
	"log/slog"
	"math/rand"
)

type options struct {
	rand             RandSource
	seed             int64
	seeded           bool
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Run.
type Option func(*options)

// WithRand configures the random source used to pick the initial centroids.
// Runs with the same source state and input produce identical results.
//
// If nil is passed, a clock-seeded source is created per run.
func WithRand(src RandSource) Option {
	return func(o *options) {
		o.rand = src
		o.seeded = false
	}
}

// WithSeed configures a fresh math/rand source seeded with seed.
//
// Example:
//
//	res, _ := kmeans.Run(points, 3, 100, kmeans.WithSeed(42))
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rand = rand.New(rand.NewSource(seed))
		o.seed = seed
		o.seeded = true
	}
}

// WithMetricsCollector configures a metrics collector for monitoring runs.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &kmeans.BasicMetricsCollector{}
//	res, _ := kmeans.Run(points, 3, 100, kmeans.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
//	fmt.Printf("Runs: %d, Iterations: %d\n", stats.RunCount, stats.IterationCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for runs.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := kmeans.NewJSONLogger(slog.LevelDebug)
//	res, _ := kmeans.Run(points, 3, 100, kmeans.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
