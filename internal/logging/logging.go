// Package logging builds the zerolog loggers used by the command.
package logging

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// New returns a JSON logger writing to w.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// NewConsole returns a human-readable logger writing to f. Colors are used
// only when f is a terminal.
func NewConsole(f *os.File, level zerolog.Level) zerolog.Logger {
	cw := zerolog.ConsoleWriter{
		Out:        f,
		NoColor:    !isTerminal(f),
		TimeFormat: "15:04:05",
	}
	return New(cw, level).With().Str("component", "standalone").Logger()
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Level maps the debug flag to a level.
func Level(debug bool) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}
