package config

import (
	"io"
	"log/slog"
)

// SetupLogger installs the default slog logger for env: human-readable
// text at debug level in development, JSON at info level elsewhere.
func SetupLogger(env string, w io.Writer) *slog.Logger {
	var logger *slog.Logger

	switch env {
	case "development":
		logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	default:
		logger = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}

	slog.SetDefault(logger)
	return logger
}
