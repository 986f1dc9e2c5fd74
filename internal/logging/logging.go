// Package logging configures the process-wide slog logger from the
// command line verbosity flags.
package logging

import (
	"io"
	"log/slog"
)

// Level maps the number of -v flags and -q to a record level. Warnings
// are shown by default, -v adds progress, -vv adds per-object debug
// records. Any -v outranks -q.
func Level(verbose int, quiet bool) slog.Level {
	switch {
	case verbose >= 2:
		return slog.LevelDebug
	case verbose == 1:
		return slog.LevelInfo
	case quiet:
		return slog.LevelError
	}
	return slog.LevelWarn
}

// New returns a text logger writing records at or above level to w
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Setup installs a logger for level as the slog default and returns it
func Setup(w io.Writer, level slog.Level) *slog.Logger {
	logger := New(w, level)
	slog.SetDefault(logger)
	return logger
}

// Discard returns a logger that drops every record
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
