package logging

import (
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/runoshun/taskpulse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLevel(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLogger_Info(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info("alice", "task", "test message")

	content, err := os.ReadFile(domain.GlobalLogPath(dataDir))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[INFO]")
	assert.Contains(t, string(content), "[user-alice]")
	assert.Contains(t, string(content), "[task]")
	assert.Contains(t, string(content), "test message")

	userContent, err := os.ReadFile(domain.UserLogPath(dataDir, "alice"))
	require.NoError(t, err)
	assert.Equal(t, string(content), string(userContent))
}

func TestLogger_GlobalLogOnly(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info("", "system", "global message")

	content, err := os.ReadFile(domain.GlobalLogPath(dataDir))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[global]")
	assert.Contains(t, string(content), "global message")

	entries, err := os.ReadDir(domain.LogsDir(dataDir))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLogger_LevelFiltering(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelWarn)
	defer func() { _ = logger.Close() }()

	logger.Debug("bob", "task", "debug message")
	logger.Info("bob", "task", "info message")
	logger.Warn("bob", "task", "warn message")
	logger.Error("bob", "task", "error message")

	content, err := os.ReadFile(domain.GlobalLogPath(dataDir))
	require.NoError(t, err)
	assert.NotContains(t, string(content), "debug message")
	assert.NotContains(t, string(content), "info message")
	assert.Contains(t, string(content), "warn message")
	assert.Contains(t, string(content), "error message")
}

func TestLogger_DisabledWhenEmptyDataDir(t *testing.T) {
	logger := New("", slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	// Should not panic or touch the filesystem.
	logger.Info("alice", "task", "test message")
	logger.Error("", "system", "error message")
}

func TestFormatLog(t *testing.T) {
	at := time.Date(2026, 3, 10, 9, 32, 51, 0, time.UTC)

	got := formatLog(at, slog.LevelWarn, "u1", "rtp", "low score")

	assert.Equal(t, "[2026-03-10 09:32:51] [WARN] [user-u1] [rtp] low score\n", got)
}

func TestLogger_ReopensAfterClose(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)

	logger.Info("", "system", "first")
	require.NoError(t, logger.Close())
	logger.Info("", "system", "second")
	require.NoError(t, logger.Close())

	content, err := os.ReadFile(domain.GlobalLogPath(dataDir))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(content), "\n"))
}
