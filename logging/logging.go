// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/nathoo/jaklogic/config"
)

// Setup configures the global slog logger from the host settings and
// returns it. Logs go to stderr so they never mix with explorer output.
func Setup(s config.Settings) *slog.Logger {
	return SetupWriter(os.Stderr, s)
}

// SetupWriter is Setup with an explicit destination.
func SetupWriter(w io.Writer, s config.Settings) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: ParseLevel(s.LogLevel),
	}

	if strings.EqualFold(s.LogFormat, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// ParseLevel maps a level name to a slog level. Unknown names mean info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// WithPlayer adds the player slot to a logger's context.
func WithPlayer(logger *slog.Logger, player int) *slog.Logger {
	return logger.With("player", player)
}

// WithError adds an error to a logger's context.
func WithError(logger *slog.Logger, err error) *slog.Logger {
	return logger.With("error", err.Error())
}
