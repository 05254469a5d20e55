// Package logging provides structured logging with consistent field names
// for the search and evaluation commands.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with search-specific helpers.
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

// NewTextLogger creates a Logger that writes human-readable text logs to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewCommandLogger returns the stderr logger used by the commands;
// verbose enables debug output.
func NewCommandLogger(verbose bool) *Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return NewTextLogger(os.Stderr, level)
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewTextLogger(io.Discard, slog.LevelError+1)
}

// WithTrial adds a trial number field to the logger.
func (l *Logger) WithTrial(trial int) *Logger {
	return &Logger{
		Logger: l.Logger.With("trial", trial),
	}
}

// LogSearch logs the parameters and outcome of one LSH search.
func (l *Logger) LogSearch(vectors, length, rounds, groupBits, filterBits int, comparisons int64) {
	l.Debug("lsh search completed",
		"vectors", vectors,
		"length", length,
		"rounds", rounds,
		"group_bits", groupBits,
		"filter_bits", filterBits,
		"comparisons", comparisons,
	)
}

// LogRound logs the bucket shape and outcome of one LSH round.
func (l *Logger) LogRound(round, buckets, maxBucketSize, comparisons int, distance int, found bool) {
	if !found {
		l.Debug("round found no pair",
			"round", round,
			"buckets", buckets,
			"max_bucket_size", maxBucketSize,
			"comparisons", comparisons,
		)
		return
	}
	l.Debug("round completed",
		"round", round,
		"buckets", buckets,
		"max_bucket_size", maxBucketSize,
		"comparisons", comparisons,
		"distance", distance,
	)
}

// LogTrial logs the exact and approximate result of one evaluation trial.
func (l *Logger) LogTrial(trial, exact, approx int, found bool) {
	if !found {
		l.Warn("lsh found no pair",
			"trial", trial,
			"exact", exact,
		)
		return
	}
	l.Debug("trial completed",
		"trial", trial,
		"exact", exact,
		"approx", approx,
		"hit", exact == approx,
	)
}

// LogExperiment logs the summary of an evaluation run.
func (l *Logger) LogExperiment(trials int, hitRate, avgRelErr float64, err error) {
	if err != nil {
		l.Error("experiment failed",
			"trials", trials,
			"error", err,
		)
		return
	}
	l.Info("experiment completed",
		"trials", trials,
		"hit_rate", hitRate,
		"avg_relative_error", avgRelErr,
	)
}
