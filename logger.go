package kmeans

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with kmeans-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogRun logs the start of a clustering run.
func (l *Logger) LogRun(maxIterations int, seed int64, seeded bool) {
	if seeded {
		l.Debug("run started",
			"max_iterations", maxIterations,
			"seed", seed,
		)
	} else {
		l.Debug("run started",
			"max_iterations", maxIterations,
		)
	}
}

// LogIteration logs one update/check cycle.
func (l *Logger) LogIteration(iteration int, shift float64, empty int) {
	l.Debug("iteration completed",
		"iteration", iteration,
		"shift", shift,
		"empty_clusters", empty,
	)
}

// LogDone logs the end of a clustering run.
func (l *Logger) LogDone(iterations int, converged bool, err error) {
	if err != nil {
		l.Error("run failed",
			"error", err,
		)
	} else {
		l.Info("run completed",
			"iterations", iterations,
			"converged", converged,
		)
	}
}
