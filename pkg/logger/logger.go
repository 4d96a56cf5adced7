package logger

import (
	"log/slog"
	"os"
	"strings"
)

var defaultLogger *slog.Logger

// Options selects the handler Init installs. Zero values fall back to the env defaults.
type Options struct {
	Level  string
	Format string
}

func Init(env string, opts ...Options) {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}

	level := slog.LevelDebug
	format := "text"
	if env == "production" {
		level = slog.LevelInfo
		format = "json"
	}
	if o.Level != "" {
		level = parseLevel(o.Level)
	}
	if o.Format != "" {
		format = o.Format
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, handlerOpts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, handlerOpts)
	}

	defaultLogger = slog.New(handler).With("service", "budget-tracker")
	slog.SetDefault(defaultLogger)
}

func LoggerWrapper() *slog.Logger {
	if defaultLogger == nil {
		// lazy initialize a development logger to avoid nil pointer panics
		Init("development")
	}
	return defaultLogger
}

// L is shorthand for LoggerWrapper.
func L() *slog.Logger {
	return LoggerWrapper()
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
