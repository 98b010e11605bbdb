// Package logging provides the debug logging used around client requests.
// Logging is silent unless enabled through the KEYGATE_LOG environment
// variable (error, info or debug).
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// EnvVar is the environment variable controlling the log level.
const EnvVar = "KEYGATE_LOG"

// Level is the logging verbosity.
type Level int

const (
	// LevelNone disables all output.
	LevelNone Level = iota
	// LevelError logs errors only.
	LevelError
	// LevelInfo logs outgoing requests and errors.
	LevelInfo
	// LevelDebug additionally logs request payloads and response bodies.
	LevelDebug
)

// ParseLevel parses a level string. Unknown values disable logging and emit
// a warning so a typo in the env var is noticed.
func ParseLevel(s string) Level {
	switch s {
	case "":
		return LevelNone
	case "error", "ERROR":
		return LevelError
	case "info", "INFO":
		return LevelInfo
	case "debug", "DEBUG":
		return LevelDebug
	default:
		fmt.Fprintf(os.Stderr, "invalid %s level: %s\n", EnvVar, s)
		return LevelNone
	}
}

// Logger wraps slog with a simple level gate.
type Logger struct {
	logger *slog.Logger
	level  Level
}

// New creates a new logger at the given level. LevelNone discards output
// entirely.
func New(level Level) *Logger {
	w := io.Writer(os.Stderr)
	if level == LevelNone {
		w = io.Discard
	}

	slogLevel := slog.LevelError
	switch level {
	case LevelInfo:
		slogLevel = slog.LevelInfo
	case LevelDebug:
		slogLevel = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slogLevel,
	})

	return &Logger{
		logger: slog.New(handler),
		level:  level,
	}
}

// FromEnv creates a logger at the level named by the KEYGATE_LOG environment
// variable.
func FromEnv() *Logger {
	return New(ParseLevel(os.Getenv(EnvVar)))
}

// Level returns the configured level.
func (l *Logger) Level() Level {
	return l.level
}

// Infof logs a formatted informational message.
func (l *Logger) Infof(format string, args ...any) {
	if l.level >= LevelInfo {
		l.logger.Info(fmt.Sprintf(format, args...))
	}
}

// Debugf logs a formatted debug message.
func (l *Logger) Debugf(format string, args ...any) {
	if l.level >= LevelDebug {
		l.logger.Debug(fmt.Sprintf(format, args...))
	}
}

// Errorf logs a formatted error message.
func (l *Logger) Errorf(format string, args ...any) {
	if l.level >= LevelError {
		l.logger.Error(fmt.Sprintf(format, args...))
	}
}
