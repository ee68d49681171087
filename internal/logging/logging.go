// Package logging configures the global slog logger for clipb. Sampler
// diagnostics log through slog; when stderr is a terminal a tint handler is
// used, otherwise JSON. Note the browser occupies the alternate screen, so
// interactive runs see log output only after exit.
package logging

import (
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pwntr/tinter"
)

// ParseLevel converts a string to a slog.Level, defaulting to Info for
// unknown values.
func ParseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// Setup configures the global slog logger. format is "text", "json", or
// "auto" (text when stderr is a TTY). Call once after argument parsing.
func Setup(format string, level slog.Level) {
	w := os.Stderr

	useTint := false
	switch strings.ToLower(format) {
	case "text":
		useTint = true
	case "json":
	default:
		useTint = isatty.IsTerminal(w.Fd()) || isatty.IsCygwinTerminal(w.Fd())
	}

	var h slog.Handler
	if useTint {
		h = tinter.NewHandler(w, &tinter.Options{
			Level:      level,
			TimeFormat: "15:04:05.000",
		})
	} else {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(h))
}
