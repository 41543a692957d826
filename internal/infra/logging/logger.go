// Package logging provides file-based activity logging for taskpulse.
// It outputs logs to both a global log file (<data>/logs/taskpulse.log)
// and user-specific log files (<data>/logs/user-<id>.log).
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/runoshun/taskpulse/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Logger wraps slog levels with file-based output support.
// Fields are ordered to minimize memory padding.
type Logger struct {
	globalFile *os.File
	userFiles  map[string]*os.File
	now        func() time.Time
	dataDir    string
	mu         sync.Mutex
	level      slog.Level
}

// New creates a new Logger that writes under the data directory.
// If dataDir is empty, logging is disabled (returns a no-op logger).
func New(dataDir string, level slog.Level) *Logger {
	return &Logger{
		dataDir:   dataDir,
		level:     level,
		now:       time.Now,
		userFiles: make(map[string]*os.File),
	}
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// open opens a log file for appending, creating the logs directory first.
func (l *Logger) open(path string) (*os.File, error) {
	if err := os.MkdirAll(domain.LogsDir(l.dataDir), 0o750); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// globalWriter opens or returns the global log file.
func (l *Logger) globalWriter() (*os.File, error) {
	if l.globalFile != nil {
		return l.globalFile, nil
	}
	f, err := l.open(domain.GlobalLogPath(l.dataDir))
	if err != nil {
		return nil, err
	}
	l.globalFile = f
	return f, nil
}

// userWriter opens or returns the user log file.
func (l *Logger) userWriter(userID string) (*os.File, error) {
	if f, ok := l.userFiles[userID]; ok {
		return f, nil
	}
	f, err := l.open(domain.UserLogPath(l.dataDir, userID))
	if err != nil {
		return nil, err
	}
	l.userFiles[userID] = f
	return f, nil
}

// Close closes all open log files.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var lastErr error
	if l.globalFile != nil {
		if err := l.globalFile.Close(); err != nil {
			lastErr = err
		}
		l.globalFile = nil
	}
	for id, f := range l.userFiles {
		if err := f.Close(); err != nil {
			lastErr = err
		}
		delete(l.userFiles, id)
	}
	return lastErr
}

// formatLog formats a log entry.
// Format: [2026-03-10 09:32:51] [INFO] [user-alice] [task] message
func formatLog(t time.Time, level slog.Level, userID, category, msg string) string {
	scope := "global"
	if userID != "" {
		scope = "user-" + userID
	}
	return fmt.Sprintf("[%s] [%s] [%s] [%s] %s\n",
		t.Format("2006-01-02 15:04:05"),
		levelToString(level),
		scope,
		category,
		msg,
	)
}

func levelToString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// log writes an entry to the global log, and to the user's log when
// userID is set.
func (l *Logger) log(level slog.Level, userID, category, msg string) {
	if l.dataDir == "" {
		return // Logging disabled
	}

	if level < l.level {
		return
	}

	entry := formatLog(l.now(), level, userID, category, msg)

	l.mu.Lock()
	defer l.mu.Unlock()

	if gf, err := l.globalWriter(); err == nil {
		_, _ = io.WriteString(gf, entry)
	}
	if userID != "" {
		if uf, err := l.userWriter(userID); err == nil {
			_, _ = io.WriteString(uf, entry)
		}
	}
}

// Info logs an info message.
func (l *Logger) Info(userID, category, msg string) {
	l.log(slog.LevelInfo, userID, category, msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(userID, category, msg string) {
	l.log(slog.LevelDebug, userID, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(userID, category, msg string) {
	l.log(slog.LevelWarn, userID, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(userID, category, msg string) {
	l.log(slog.LevelError, userID, category, msg)
}
