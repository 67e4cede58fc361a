package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
	With(fields map[string]interface{}) Logger
}

// ParseLevel maps a config level name to a zerolog level, defaulting to info
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
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

// New builds the application logger: JSON lines when json is set, a
// human-readable console writer otherwise.
func New(level string, json bool) *ZerologAdapter {
	return NewWithWriter(os.Stderr, level, json)
}

func NewWithWriter(out io.Writer, level string, json bool) *ZerologAdapter {
	if json {
		return NewZerolog(out, ParseLevel(level))
	}
	return NewZerolog(zerolog.ConsoleWriter{Out: out}, ParseLevel(level))
}
