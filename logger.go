package joux

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with joux-specific context.
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

// WithTask adds the task coordinates to the logger.
func (l *Logger) WithTask(idx TaskIndex) *Logger {
	return &Logger{
		Logger: l.Logger.With("task", idx.String()),
	}
}

// LogTaskStart logs the shape of a task before the first slice.
func (l *Logger) LogTaskStart(ctx context.Context, n0, n1, slices int) {
	l.DebugContext(ctx, "task started",
		"n0", n0,
		"n1", n1,
		"slices", slices,
	)
}

// LogTask logs the outcome of a task.
func (l *Logger) LogTask(ctx context.Context, stats TaskStats, err error) {
	if err != nil {
		l.ErrorContext(ctx, "task failed",
			"slices", stats.Slices,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "task completed",
		"slices", stats.Slices,
		"bad_slices", stats.BadSlices,
		"solutions", stats.Solutions,
		"probes", stats.Probes,
		"volume", stats.Volume,
		"duration", stats.Duration,
	)
}

// LogSlice logs the per-phase breakdown of one slice.
func (l *Logger) LogSlice(ctx context.Context, s SliceStats) {
	l.DebugContext(ctx, "slice processed",
		"slice", s.Index,
		"l", s.L,
		"cm", s.CandidateSet,
		"probes", s.Probes,
		"solutions", s.Solutions,
		"gemm", s.GEMM,
		"partition", s.Partition,
		"subjoin", s.Subjoin,
		"checkup", s.Checkup,
	)
}

// LogWeakSlice warns that a slice leaves too few bits to discriminate after bucketing.
func (l *Logger) LogWeakSlice(ctx context.Context, slice, bitWidth int, partitionBits uint) {
	l.WarnContext(ctx, "slice filter too weak, increase l",
		"slice", slice,
		"l", bitWidth,
		"p", partitionBits,
		"residual_bits", bitWidth-int(partitionBits),
	)
}

// LogCuckooFallback logs that a candidate set was rebuilt with linear probing.
func (l *Logger) LogCuckooFallback(ctx context.Context, slice, size int) {
	l.InfoContext(ctx, "cuckoo construction failed, using linear probing",
		"slice", slice,
		"cm", size,
	)
}
