package logging

import (
	"io"
	"log/slog"
)

// Configure installs a text handler writing to w as the default slog logger.
func Configure(w io.Writer, level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}
