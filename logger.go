package raygo

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/raygo/tuple"
)

// Logger wraps slog.Logger with raygo-specific helpers.
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
	return NewLogger(slog.DiscardHandler)
}

// WithOperation adds an op field to the logger.
func (l *Logger) WithOperation(op string) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", op),
	}
}

// LogOperation logs a binary tuple operation such as add or sub.
// Failures are logged at error level, successes at debug level.
func (l *Logger) LogOperation(ctx context.Context, op string, lhs, rhs, result tuple.Tuple, err error) {
	if err != nil {
		l.ErrorContext(ctx, "tuple operation rejected",
			"op", op,
			"lhs", lhs.String(),
			"rhs", rhs.String(),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "tuple operation completed",
			"op", op,
			"lhs", lhs.String(),
			"rhs", rhs.String(),
			"result", result.String(),
		)
	}
}

// LogEncode logs an encode or decode of count tuples into size bytes.
func (l *Logger) LogEncode(ctx context.Context, codecName string, count, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "encode failed",
			"codec", codecName,
			"count", count,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "encode completed",
			"codec", codecName,
			"count", count,
			"bytes", size,
		)
	}
}
