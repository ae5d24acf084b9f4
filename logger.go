package slab

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with slab-specific context.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithKey adds a key field to the logger.
func (l *Logger) WithKey(key int) *Logger {
	return &Logger{
		Logger: l.Logger.With("key", key),
	}
}

// WithComponent adds a component field to the logger.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("component", name),
	}
}

// LogClear logs a bulk clear.
func (l *Logger) LogClear(dropped, capacity int) {
	l.Debug("slab cleared",
		"dropped", dropped,
		"capacity", capacity,
	)
}

// LogCommit logs a transaction commit.
func (l *Logger) LogCommit(replaced, pushed int, err error) {
	if err != nil {
		l.Warn("transaction commit failed",
			"replaced", replaced,
			"pushed", pushed,
			"error", err,
		)
	} else {
		l.Debug("transaction committed",
			"replaced", replaced,
			"pushed", pushed,
		)
	}
}

// LogDiscard logs a discarded transaction.
func (l *Logger) LogDiscard(replaced, pushed int) {
	l.Debug("transaction discarded",
		"replaced", replaced,
		"pushed", pushed,
	)
}

// LogValidate logs an invariant violation found by Validate.
func (l *Logger) LogValidate(err error) {
	if err != nil {
		l.Error("slab validation failed", "error", err)
	}
}

// LogBuild logs the result of a Builder.
func (l *Logger) LogBuild(occupied, capacity int) {
	l.Debug("slab built",
		"occupied", occupied,
		"capacity", capacity,
	)
}

// LogDecode logs a decode operation.
func (l *Logger) LogDecode(count int, err error) {
	if err != nil {
		l.Warn("slab decode failed",
			"count", count,
			"error", err,
		)
	} else {
		l.Debug("slab decoded",
			"count", count,
		)
	}
}
