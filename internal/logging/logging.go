// Package logging configures the structured logger. The TUI owns the
// terminal, so log output goes to a rotating file rather than stderr.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configure the logger destination and verbosity.
type Options struct {
	// Path is the log file. Empty disables file logging.
	Path string

	// Level is one of debug, info, warn, error. Default is warn.
	Level string

	// Console writes to stderr instead of a file. Only safe when no TUI
	// is running.
	Console bool
}

// Setup builds a logger for the given options. With no destination at all
// the logger discards everything.
func Setup(opts Options) (*slog.Logger, error) {
	var w io.Writer
	switch {
	case opts.Console:
		w = os.Stderr
	case opts.Path != "":
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0755); err != nil {
			return nil, err
		}
		w = &lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     30, // days
			Compress:   true,
		}
	default:
		w = io.Discard
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(opts.Level),
	})
	return slog.New(handler), nil
}

// ParseLevel maps a level name to a slog.Level, defaulting to warn.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
