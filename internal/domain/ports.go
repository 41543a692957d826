package domain

import (
	"time"
)

// StoreInitializer initializes the data store.
type StoreInitializer interface {
	// Initialize creates the store if it doesn't exist.
	Initialize() error
}

// UserRepository manages user persistence.
// Tasks are stored inline with their owning user.
type UserRepository interface {
	// Get retrieves a user by ID. Returns nil if not found.
	Get(id string) (*User, error)

	// List retrieves all users ordered by name.
	List() ([]*User, error)

	// Save creates or updates a user.
	Save(user *User) error

	// Delete removes a user by ID.
	Delete(id string) error
}

// ConfigLoader loads configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults <- global <- local <- env).
	Load() (*Config, error)
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetLocalConfigInfo returns information about the data-dir config file.
	GetLocalConfigInfo() ConfigInfo

	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// InitLocalConfig writes the default template to the data-dir config file.
	InitLocalConfig(cfg *Config, force bool) error
}

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// Logger records user activity.
// A userID of "" logs to the global log only.
type Logger interface {
	Info(userID, category, msg string)
	Debug(userID, category, msg string)
	Warn(userID, category, msg string)
	Error(userID, category, msg string)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock implements Clock with a fixed instant.
// Used for --as-of evaluation.
type FixedClock struct {
	At time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return c.At
}
