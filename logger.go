package moldiv

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with moldiv-specific context.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithSetSize adds a set size field to the logger.
func (l *Logger) WithSetSize(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("set_size", n),
	}
}

// WithCoeff adds a threshold-rescaling coefficient field to the logger.
func (l *Logger) WithCoeff(coeff float64) *Logger {
	return &Logger{
		Logger: l.Logger.With("coeff", coeff),
	}
}

// LogDescribe logs a batch descriptor computation.
func (l *Logger) LogDescribe(ctx context.Context, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "describe failed",
			"count", count,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "describe completed",
			"count", count,
		)
	}
}

// LogScore logs a sum-of-spreads computation.
func (l *Logger) LogScore(ctx context.Context, coeff, score float64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "score failed",
			"coeff", coeff,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "score completed",
			"coeff", coeff,
			"score", score,
		)
	}
}
