// Package vgclog is the engine's structured logging facade: a lazily
// initialized global slog.Logger with package-level Info/Warn/Error/Debug
// helpers, shaped after the teacher's logging package but switching
// between a JSON handler (when stdout is not a terminal, e.g. piped
// output) and a human-readable text handler (when stdout is an
// interactive terminal), since this engine's primary consumer is a CLI rather than a
// server.
package vgclog

import (
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
)

var logger *slog.Logger

// Initialize sets up the global structured logger, selecting JSON or text
// output based on whether stdout is a terminal and LOG_LEVEL from the
// environment.
func Initialize() {
	level := levelFromEnv()
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if term.IsTerminal(int(os.Stdout.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	logger = slog.New(handler)
	slog.SetDefault(logger)
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func ensureInitialized() {
	if logger == nil {
		Initialize()
	}
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	ensureInitialized()
	logger.Info(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	ensureInitialized()
	logger.Warn(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	ensureInitialized()
	logger.Error(msg, args...)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	ensureInitialized()
	logger.Debug(msg, args...)
}

// WithContext returns a logger with additional context fields attached,
// for call sites that want to log several related lines without repeating
// the same key/value pairs.
func WithContext(args ...any) *slog.Logger {
	ensureInitialized()
	return logger.With(args...)
}
