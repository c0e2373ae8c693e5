package logging

import (
	"log/slog"
	"strings"
)

// LevelOff is above every slog level and silences logging.
const LevelOff = slog.Level(100)

// ParseLevel maps a log level name to a slog level.
func ParseLevel(raw string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug", "trace":
		return slog.LevelDebug, true
	case "", "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	case "off", "none", "disabled":
		return LevelOff, true
	default:
		return slog.LevelInfo, false
	}
}
