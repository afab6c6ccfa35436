package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Setup returns a JSON slog.Logger writing to w at Info level.
func Setup(w io.Writer) *slog.Logger {
	return SetupLevel(w, slog.LevelInfo)
}

func SetupLevel(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler)
}

// SetupDefault installs the JSON logger globally. A nil writer means os.Stdout.
func SetupDefault(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	logger := SetupLevel(w, level)
	slog.SetDefault(logger)
	return logger
}

// ParseLevel accepts debug, info, warn and error. Anything else is Info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
