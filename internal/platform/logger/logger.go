package logger

import (
	"log/slog"
	"os"
	"strings"
)

// New builds the process logger: JSON on stdout with a service attribute on
// every record. Level is one of debug, info, warn, error; anything else
// falls back to info.
func New(level, serviceName string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	return slog.New(handler).With("service", serviceName)
}
