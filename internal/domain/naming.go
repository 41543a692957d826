package domain

import (
	"path/filepath"
	"strings"
)

// AppName is used for directory names.
const AppName = "taskpulse"

// GlobalConfigDir returns the global config directory under configHome.
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppName)
}

// DataDir returns the data directory under dataHome.
func DataDir(dataHome string) string {
	return filepath.Join(dataHome, AppName)
}

// UsersStorePath returns the path of the JSON user store.
func UsersStorePath(dataDir string) string {
	return filepath.Join(dataDir, "users.json")
}

// SQLiteStorePath returns the path of the SQLite database.
func SQLiteStorePath(dataDir string) string {
	return filepath.Join(dataDir, "taskpulse.db")
}

// LogsDir returns the activity log directory.
func LogsDir(dataDir string) string {
	return filepath.Join(dataDir, "logs")
}

// GlobalLogPath returns the path of the global activity log.
func GlobalLogPath(dataDir string) string {
	return filepath.Join(LogsDir(dataDir), "taskpulse.log")
}

// UserLogPath returns the path of a user's activity log.
func UserLogPath(dataDir, userID string) string {
	return filepath.Join(LogsDir(dataDir), "user-"+sanitizeID(userID)+".log")
}

// sanitizeID keeps IDs safe for use in file names.
func sanitizeID(id string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, id)
}
