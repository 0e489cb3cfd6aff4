// Package logging provides structured logging for paramdoc using zerolog.
//
// Console output is used when stderr is a terminal, JSON otherwise.
//
//	log := logging.New(os.Stderr, "info")
//	log.Info().Str("pattern", "./...").Msg("Loading packages")
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Nop logger for discarding output.
var Nop = zerolog.Nop()

// New creates a logger writing to w at the given level. Console output is
// used when w is a terminal and LOG_FORMAT is not "json".
func New(w io.Writer, level string) zerolog.Logger {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) && os.Getenv("LOG_FORMAT") != "json" {
		w = zerolog.ConsoleWriter{
			Out:        f,
			TimeFormat: time.Kitchen,
			NoColor:    os.Getenv("NO_COLOR") != "",
		}
	}

	return NewJSON(w, level)
}

// NewJSON creates a JSON logger regardless of the writer.
func NewJSON(w io.Writer, level string) zerolog.Logger {
	lvl := ParseLevel(level)

	logger := zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	// Add caller information in debug mode
	if lvl <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}

	return logger
}

// ParseLevel maps a level name to a zerolog level. Unknown names map to warn.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "disabled", "off", "none":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}
