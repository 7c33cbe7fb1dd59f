// Package log builds the application logger.
//
// Loggers are injected, never global: each component receives one via its
// constructor and may add context with With(). The chat TUI owns the
// terminal, so by default output is discarded; set EDUQUEST_LOG to a file
// path to capture structured logs.
package log

import (
	"io"
	"log/slog"
	"os"
)

// Config defines logger configuration options.
type Config struct {
	// Level sets the minimum log level. Default: slog.LevelInfo.
	Level slog.Level

	// JSON enables JSON format output. Default: false (text format).
	JSON bool
}

// NewWithWriter creates a logger that writes to the given writer.
func NewWithWriter(w io.Writer, cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level}

	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// FromEnv creates the process logger. When EDUQUEST_LOG names a file, logs
// are appended there; otherwise output is discarded so the TUI stays clean.
func FromEnv() *slog.Logger {
	path := os.Getenv("EDUQUEST_LOG")
	if path == "" {
		return Nop()
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		// A broken log path should not take the assistant down.
		return Nop()
	}
	return NewWithWriter(f, Config{})
}

// Nop returns a logger that discards all output. Intended for tests and
// for running without EDUQUEST_LOG.
func Nop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
