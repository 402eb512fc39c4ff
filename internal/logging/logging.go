// Package logging provides structured logging for pipedrive-mcp.
//
// Built on the standard library's log/slog. Since pipedrive-mcp is a
// stdio-based MCP server, all logs go to stderr to avoid interfering with
// the JSON-RPC protocol on stdout.
//
// Configuration via environment variables:
//   - PIPEDRIVE_MCP_LOG_LEVEL: DEBUG, INFO, WARN, ERROR (default: WARN)
//   - PIPEDRIVE_MCP_LOG_FORMAT: text, json (default: text)
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Environment variable names for logging configuration.
const (
	LogLevelEnvVar  = "PIPEDRIVE_MCP_LOG_LEVEL"
	LogFormatEnvVar = "PIPEDRIVE_MCP_LOG_FORMAT"
)

// Default logging configuration.
const (
	DefaultLevel  = slog.LevelWarn
	DefaultFormat = "text"
)

// Logger is the interface for structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// With returns a new Logger with the given key-value pairs added to every log.
	With(args ...any) Logger
}

type logger struct {
	slog *slog.Logger
}

func (l *logger) Debug(msg string, args ...any) { l.slog.Debug(msg, args...) }
func (l *logger) Info(msg string, args ...any)  { l.slog.Info(msg, args...) }
func (l *logger) Warn(msg string, args ...any)  { l.slog.Warn(msg, args...) }
func (l *logger) Error(msg string, args ...any) { l.slog.Error(msg, args...) }

func (l *logger) With(args ...any) Logger {
	return &logger{slog: l.slog.With(args...)}
}

var (
	defaultLogger Logger
	once          sync.Once
)

// Default returns the default logger, initialized from environment variables.
// The logger is created once and reused for subsequent calls.
func Default() Logger {
	once.Do(func() {
		defaultLogger = NewFromEnv()
	})
	return defaultLogger
}

// NewFromEnv creates a new Logger configured from environment variables.
func NewFromEnv() Logger {
	level := ParseLevel(os.Getenv(LogLevelEnvVar))
	format := os.Getenv(LogFormatEnvVar)
	if format == "" {
		format = DefaultFormat
	}
	return New(os.Stderr, level, format)
}

// New creates a new Logger writing to w (typically os.Stderr for MCP servers).
// Format can be "text" or "json".
func New(w io.Writer, level slog.Level, format string) Logger {
	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return &logger{slog: slog.New(handler)}
}

// ParseLevel parses a log level string into a slog.Level.
// Valid values: DEBUG, INFO, WARN, ERROR (case-insensitive).
// Returns DefaultLevel (WARN) for empty or invalid values.
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return DefaultLevel
	}
}

// nopLogger is a logger that discards all output.
type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
func (n nopLogger) With(...any) Logger { return n }

// Nop returns a logger that discards all output. Useful for testing.
func Nop() Logger {
	return nopLogger{}
}
