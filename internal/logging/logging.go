// Package logging configures structured logging via slog.
package logging

import (
	"log/slog"
	"os"
)

// Setup configures the default slog logger. Levels: "debug", "info", "warn",
// "error"; anything else falls back to info. Logs go to stderr so task and
// tool output on stdout stays clean.
func Setup(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}

// WithComponent returns a logger with the component field set.
func WithComponent(component string) *slog.Logger {
	return slog.Default().With("component", component)
}
