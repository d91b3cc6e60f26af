package main

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// parseLevel maps a LOG_LEVEL value to a zerolog level.  Unset or unknown
// values disable logging completely.
func parseLevel(value string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.Disabled
	}
}

// newLogger builds the console logger used by the command.  Output goes to
// w, which is stderr in practice so it never mixes with artifact output.
func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("component", "huffmantree").
		Logger()
}
