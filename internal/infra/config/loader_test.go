package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/taskpulse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o600))
}

func noEnv(string) string { return "" }

func TestLoader_Load_Defaults(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir(), noEnv)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestLoader_Load_LocalOverridesGlobal(t *testing.T) {
	dataDir := t.TempDir()
	globalDir := t.TempDir()
	writeConfig(t, globalDir, `
[store]
backend = "sqlite"

[scoring]
default_capacity = 8

[log]
level = "debug"
`)
	writeConfig(t, dataDir, `
[scoring]
default_capacity = 3
deadline_weight = 1
priority_weight = 0.5
`)

	cfg, err := NewLoaderWithGlobalDir(dataDir, globalDir, noEnv).Load()

	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Store.Backend)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 3, cfg.Scoring.DefaultCapacity)
	assert.Equal(t, domain.WeightPreferences{Deadline: 1, Priority: 0.5, Complexity: 0}, cfg.Scoring.Weights())
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_Env(t *testing.T) {
	dataDir := t.TempDir()
	writeConfig(t, dataDir, "[store]\nbackend = \"sqlite\"\n")
	env := map[string]string{EnvStore: "json", EnvLogLevel: "warn"}

	cfg, err := NewLoaderWithGlobalDir(dataDir, "", func(k string) string { return env[k] }).Load()

	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Store.Backend)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoader_Load_Warnings(t *testing.T) {
	dataDir := t.TempDir()
	writeConfig(t, dataDir, `
colour = "blue"

[store]
backend = "json"
path = "x"

[agents]
name = "y"
`)

	cfg, err := NewLoaderWithGlobalDir(dataDir, "", noEnv).Load()

	require.NoError(t, err)
	assert.Equal(t, []string{
		"unknown key in [store]: path",
		"unknown key: colour",
		"unknown section: agents",
	}, cfg.Warnings)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	dataDir := t.TempDir()
	writeConfig(t, dataDir, "[store\nbackend=")

	_, err := NewLoaderWithGlobalDir(dataDir, "", noEnv).Load()

	assert.Error(t, err)
}

func TestManager_InitLocalConfig(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "data")
	m := NewManagerWithGlobalDir(dataDir, "")

	require.NoError(t, m.InitLocalConfig(domain.NewDefaultConfig(), false))

	info := m.GetLocalConfigInfo()
	assert.True(t, info.Exists)
	assert.Contains(t, info.Content, `backend = "json"`)
	assert.Contains(t, info.Content, "default_capacity = 5")

	err := m.InitLocalConfig(domain.NewDefaultConfig(), false)
	assert.ErrorIs(t, err, domain.ErrConfigExists)

	require.NoError(t, m.InitLocalConfig(domain.NewDefaultConfig(), true))
	assert.False(t, m.GetGlobalConfigInfo().Exists)
}

func TestManager_TemplateRoundTrips(t *testing.T) {
	dataDir := t.TempDir()
	want := domain.NewDefaultConfig()
	want.Store.Backend = domain.StoreSQLite
	want.Scoring.DefaultCapacity = 7
	require.NoError(t, NewManagerWithGlobalDir(dataDir, "").InitLocalConfig(want, false))

	got, err := NewLoaderWithGlobalDir(dataDir, "", noEnv).Load()

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
