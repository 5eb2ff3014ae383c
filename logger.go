package hdcgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with hdcgo-specific context.
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

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithSeed adds a seed field to the logger.
func (l *Logger) WithSeed(seed uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("seed", seed),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogEncode logs a text encode operation.
func (l *Logger) LogEncode(textLen, dimension int) {
	l.Debug("encode completed",
		"text_len", textLen,
		"dimension", dimension,
	)
}

// LogEncodeEmbedding logs an embedding encode operation.
func (l *Logger) LogEncodeEmbedding(inputDim, outputDim int, err error) {
	if err != nil {
		l.Error("embedding encode failed",
			"input_dimension", inputDim,
			"output_dimension", outputDim,
			"error", err,
		)
	} else {
		l.Debug("embedding encode completed",
			"input_dimension", inputDim,
			"output_dimension", outputDim,
		)
	}
}

// LogBatchEncode logs a batch encode operation.
func (l *Logger) LogBatchEncode(ctx context.Context, count, failed int) {
	if failed > 0 {
		l.WarnContext(ctx, "batch encode completed with failures",
			"total", count,
			"failed", failed,
			"success", count-failed,
		)
	} else {
		l.InfoContext(ctx, "batch encode completed",
			"count", count,
		)
	}
}

// LogUnpack logs a packed-vector decode operation.
func (l *Logger) LogUnpack(dimension int, err error) {
	if err != nil {
		l.Error("unpack failed",
			"dimension", dimension,
			"error", err,
		)
	} else {
		l.Debug("unpack completed",
			"dimension", dimension,
		)
	}
}
