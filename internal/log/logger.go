// Package log is the CLI's verbosity-levelled logger. Everything goes to
// stderr by default so stdout carries only formatted phrases.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// Verbosity levels
const (
	LevelQuiet = iota // Default: only errors and warnings
	LevelInfo         // -v: inputs read, config files loaded, batch progress
	LevelDebug        // -vv: per-input parse failures, clock and policy details
	LevelTrace        // -vvv: every formatted result
)

const slogLevelTrace = slog.Level(-8)

var (
	mu         sync.Mutex
	verbosity  int
	logger     *slog.Logger
	output     io.Writer
	inProgress bool // tracks if we have an in-progress line
)

// Initialize sets up the global logger with the specified verbosity level
func Initialize(level int, w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	verbosity = level
	output = w

	var slogLevel slog.Level
	switch {
	case level >= LevelTrace:
		slogLevel = slogLevelTrace
	case level >= LevelDebug:
		slogLevel = slog.LevelDebug
	case level >= LevelInfo:
		slogLevel = slog.LevelInfo
	default:
		slogLevel = slog.LevelWarn
	}

	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slogLevel,
	}))
}

func logAt(minLevel int, level slog.Level, msg string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if verbosity < minLevel {
		return
	}
	clearProgress()
	logger.Log(context.Background(), level, msg, args...)
}

// Info logs at info level (-v)
func Info(msg string, args ...any) { logAt(LevelInfo, slog.LevelInfo, msg, args...) }

// Debug logs at debug level (-vv)
func Debug(msg string, args ...any) { logAt(LevelDebug, slog.LevelDebug, msg, args...) }

// Trace logs at trace level (-vvv)
func Trace(msg string, args ...any) { logAt(LevelTrace, slogLevelTrace, msg, args...) }

// Warn logs at warn level (always visible)
func Warn(msg string, args ...any) { logAt(LevelQuiet, slog.LevelWarn, msg, args...) }

// Error logs at error level (always visible)
func Error(msg string, args ...any) { logAt(LevelQuiet, slog.LevelError, msg, args...) }

// Progress prints a progress message with carriage return (no newline).
// Only shown at info level or higher.
func Progress(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if verbosity >= LevelInfo {
		inProgress = true
		_, _ = fmt.Fprintf(output, "\r"+format, args...)
	}
}

// ProgressDone completes a progress line with "done" and newline
func ProgressDone() {
	mu.Lock()
	defer mu.Unlock()
	if verbosity >= LevelInfo && inProgress {
		_, _ = fmt.Fprintln(output, " done")
		inProgress = false
	}
}

// clearProgress ensures we don't write over a progress line. Caller holds mu.
func clearProgress() {
	if inProgress {
		_, _ = fmt.Fprintln(output)
		inProgress = false
	}
}

// IsDebug returns true if debug-level logging is enabled
func IsDebug() bool {
	mu.Lock()
	defer mu.Unlock()
	return verbosity >= LevelDebug
}

// Verbosity returns the current verbosity level
func Verbosity() int {
	mu.Lock()
	defer mu.Unlock()
	return verbosity
}

func init() {
	output = os.Stderr
	verbosity = LevelQuiet
	logger = slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}
