// Package logger configures the process-wide structured logger used by the
// command-line tool. The core packages stay log-free; they are pure
// functions of their input.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// Config holds the logger configuration.
type Config struct {
	Level  slog.Level
	Format string // "json" or "text"
	Writer io.Writer
}

// DefaultConfig returns the default logger configuration.
func DefaultConfig() Config {
	return Config{
		Level:  slog.LevelWarn,
		Format: "text",
		Writer: os.Stderr,
	}
}

// LoadConfig reads the logger configuration from LOG_LEVEL and LOG_FORMAT.
func LoadConfig() Config {
	config := DefaultConfig()

	switch os.Getenv("LOG_LEVEL") {
	case "DEBUG":
		config.Level = slog.LevelDebug
	case "INFO":
		config.Level = slog.LevelInfo
	case "WARN":
		config.Level = slog.LevelWarn
	case "ERROR":
		config.Level = slog.LevelError
	}

	if format := os.Getenv("LOG_FORMAT"); format == "text" || format == "json" {
		config.Format = format
	}

	return config
}

// New creates a logger with the given configuration.
func New(config Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: config.Level}

	var handler slog.Handler
	switch config.Format {
	case "json":
		handler = slog.NewJSONHandler(config.Writer, opts)
	default:
		handler = slog.NewTextHandler(config.Writer, opts)
	}

	return slog.New(handler)
}
