package config

import (
	"io"
	"log/slog"
)

// NewLogger builds the text logger used for diagnostics on w. Verbose runs
// log at debug level, others at info.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
