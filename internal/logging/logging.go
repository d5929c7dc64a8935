// Package logging builds the application logger shared by the GUI and the
// headless commands.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultLevel is used when the configured level is empty or unknown
const DefaultLevel = log.InfoLevel

// New creates a [log.Logger] writing to w with timestamps enabled.
//
// The writer defaults to [os.Stderr]. An unparsable level falls back to
// [DefaultLevel].
func New(w io.Writer, level string) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "ytplaylist",
	})
	logger.SetLevel(ParseLevel(level))
	return logger
}

// ParseLevel converts a level name into a [log.Level]
func ParseLevel(level string) log.Level {
	if strings.TrimSpace(level) == "" {
		return DefaultLevel
	}
	l, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return DefaultLevel
	}
	return l
}

// Component returns a child logger tagged with the component name
func Component(l *log.Logger, name string) *log.Logger {
	return l.With("component", name)
}

// Discard returns a logger that drops everything; used by tests
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
