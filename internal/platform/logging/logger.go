// Package logging configures the process-wide structured logger. Everything
// else logs through the slog default set up here, so records automatically
// carry the poll cycle ID when the context has one.
package logging

import (
	"log/slog"
	"os"

	"github.com/Kolpa/ulanzi-election/internal/platform/cycle"
)

// InitLogger installs the global logger with the specified level and format.
// level: "debug", "info", "warn", "error" (defaults to "info")
// format: "json" or "text" (defaults to "text")
func InitLogger(level, format string) {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(cycle.NewHandler(handler)))
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
