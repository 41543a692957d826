// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"sort"
	"time"

	"github.com/runoshun/taskpulse/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// Ensure mocks implement their ports.
var (
	_ domain.Clock            = (*MockClock)(nil)
	_ domain.UserRepository   = (*MockUserRepository)(nil)
	_ domain.StoreInitializer = (*MockStoreInitializer)(nil)
	_ domain.ConfigManager    = (*MockConfigManager)(nil)
	_ domain.Logger           = (*MockLogger)(nil)
)

// MockUserRepository is a test double for domain.UserRepository.
// Fields are ordered to minimize memory padding.
type MockUserRepository struct {
	Users     map[string]*domain.User
	SaveErr   error
	GetErr    error
	ListErr   error
	SaveCalls int
}

// NewMockUserRepository creates a new MockUserRepository with initialized maps.
func NewMockUserRepository(users ...*domain.User) *MockUserRepository {
	m := &MockUserRepository{Users: make(map[string]*domain.User)}
	for _, u := range users {
		m.Users[u.ID] = u
	}
	return m
}

// Get retrieves a user by ID.
func (m *MockUserRepository) Get(id string) (*domain.User, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	user, ok := m.Users[id]
	if !ok {
		return nil, nil
	}
	return user, nil
}

// List returns all users ordered by name.
func (m *MockUserRepository) List() ([]*domain.User, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	users := make([]*domain.User, 0, len(m.Users))
	for _, u := range m.Users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].Name != users[j].Name {
			return users[i].Name < users[j].Name
		}
		return users[i].ID < users[j].ID
	})
	return users, nil
}

// Save saves a user.
func (m *MockUserRepository) Save(user *domain.User) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Users[user.ID] = user
	return nil
}

// Delete removes a user.
func (m *MockUserRepository) Delete(id string) error {
	delete(m.Users, id)
	return nil
}

// MockStoreInitializer is a test double for domain.StoreInitializer.
type MockStoreInitializer struct {
	InitErr error
	Called  bool
}

// Initialize records the call.
func (m *MockStoreInitializer) Initialize() error {
	m.Called = true
	return m.InitErr
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitErr      error
	Written      *domain.Config
	LocalConfig  domain.ConfigInfo
	GlobalConfig domain.ConfigInfo
	Forced       bool
}

// GetLocalConfigInfo returns the configured local info.
func (m *MockConfigManager) GetLocalConfigInfo() domain.ConfigInfo {
	return m.LocalConfig
}

// GetGlobalConfigInfo returns the configured global info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfig
}

// InitLocalConfig records the written config.
func (m *MockConfigManager) InitLocalConfig(cfg *domain.Config, force bool) error {
	if m.InitErr != nil {
		return m.InitErr
	}
	if m.LocalConfig.Exists && !force {
		return domain.ErrConfigExists
	}
	m.Written = cfg
	m.Forced = force
	m.LocalConfig.Exists = true
	return nil
}

// MockLogger is a test double for domain.Logger that records entries.
type MockLogger struct {
	Entries []string
}

func (m *MockLogger) record(level, userID, category, msg string) {
	m.Entries = append(m.Entries, fmt.Sprintf("%s %s %s %s", level, userID, category, msg))
}

// Info records an info entry.
func (m *MockLogger) Info(userID, category, msg string) { m.record("INFO", userID, category, msg) }

// Debug records a debug entry.
func (m *MockLogger) Debug(userID, category, msg string) { m.record("DEBUG", userID, category, msg) }

// Warn records a warning entry.
func (m *MockLogger) Warn(userID, category, msg string) { m.record("WARN", userID, category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(userID, category, msg string) { m.record("ERROR", userID, category, msg) }
