// Package logging constructs the slog loggers used across the service.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds logging configuration. Level and Format are the string
// forms accepted from flags and environment variables.
type Config struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string

	// Format is the output format: "text" or "json".
	Format string

	// Output is the writer to send logs to. Defaults to os.Stderr.
	Output io.Writer
}

// New creates a slog.Logger from the configuration. Unrecognized level or
// format strings fall back to info-level text logging.
func New(cfg Config) *slog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	switch cfg.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(cfg.Output, opts)
	default:
		handler = slog.NewTextHandler(cfg.Output, opts)
	}

	return slog.New(handler)
}

// Nop returns a no-op logger that discards all output.
// Use this when a logger is required but logging is disabled.
func Nop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug", "DEBUG":
		return slog.LevelDebug
	case "warn", "WARN", "warning", "WARNING":
		return slog.LevelWarn
	case "error", "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
