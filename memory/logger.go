package memory

import (
	"io"
	"log/slog"
	"os"
	"time"

	"golang.org/x/time/rate"
)

// growthLogInterval bounds how often growth events reach the log.
const growthLogInterval = time.Second

// Logger wraps slog.Logger with arena-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
	growth *rate.Sometimes
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return newLogger(slog.New(handler))
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return newLogger(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return newLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return newLogger(slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})))
}

func newLogger(l *slog.Logger) *Logger {
	return &Logger{
		Logger: l,
		growth: &rate.Sometimes{First: 1, Interval: growthLogInterval},
	}
}

// WithComponent adds a component field to the logger.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("component", name),
		growth: l.growth,
	}
}

// LogAllocate logs an arena allocation.
func (l *Logger) LogAllocate(bytes int64, offHeap bool, err error) {
	if err != nil {
		l.Error("allocate failed",
			"bytes", bytes,
			"error", err,
		)
		return
	}
	l.Debug("allocate completed",
		"bytes", bytes,
		"off_heap", offHeap,
	)
}

// LogHeapFallback logs that an anonymous mapping failed and the heap was used instead.
func (l *Logger) LogHeapFallback(bytes int64, err error) {
	l.Warn("anonymous mapping failed, falling back to heap",
		"bytes", bytes,
		"error", err,
	)
}

// LogFree logs an arena release. reclaimed is true when the runtime cleanup,
// not an explicit Free, released the arena.
func (l *Logger) LogFree(bytes int64, reclaimed bool, err error) {
	if err != nil {
		l.Error("free failed",
			"bytes", bytes,
			"reclaimed", reclaimed,
			"error", err,
		)
		return
	}
	l.Debug("free completed",
		"bytes", bytes,
		"reclaimed", reclaimed,
	)
}

// LogGrow logs a sequence reallocation. Output is throttled to one event per
// second across all sequences sharing this logger.
func (l *Logger) LogGrow(fromCapacity, toCapacity int64) {
	l.growth.Do(func() {
		l.Debug("sequence grown",
			"from_capacity", fromCapacity,
			"to_capacity", toCapacity,
		)
	})
}
