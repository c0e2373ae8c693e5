package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw   string
		level slog.Level
		ok    bool
	}{
		{"debug", slog.LevelDebug, true},
		{"", slog.LevelInfo, true},
		{"INFO", slog.LevelInfo, true},
		{" warning ", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"off", LevelOff, true},
		{"loud", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			level, ok := ParseLevel(tt.raw)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.level, level)
		})
	}
}

func TestConfigure(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Configure(&buf, slog.LevelWarn)

	slog.Info("hidden")
	slog.Warn("shown", "lineSize", 4)

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "msg=shown")
	require.Contains(t, buf.String(), "lineSize=4")
}

func TestConfigure_Off(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Configure(&buf, LevelOff)
	slog.Error("nothing")

	require.Empty(t, buf.String())
}
