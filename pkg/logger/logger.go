// Package logger builds the process-wide structured logger backed by
// zerolog. Call New once at startup and pass the logger down; libraries and
// tests that need silence use zerolog.Nop().
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger writing JSON to stdout at the given level. In
// development the output is switched to the human-friendly console writer.
func New(level, env string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var out = zerolog.New(os.Stdout)
	if env == "development" {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	lvl := parseLevel(level)
	zerolog.SetGlobalLevel(lvl)

	return out.Level(lvl).With().Timestamp().Caller().Logger()
}

// parseLevel converts a config string to a zerolog.Level, defaulting to
// info for empty or unrecognised input.
func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
