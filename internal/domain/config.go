package domain

import (
	"bytes"
	"text/template"
)

// ConfigFileName is the name of the configuration file.
const ConfigFileName = "config.toml"

// Store backends.
const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string      `toml:"-"`
	Store    StoreConfig   `toml:"store"`
	Log      LogConfig     `toml:"log"`
	Scoring  ScoringConfig `toml:"scoring"`
}

// StoreConfig holds settings from the [store] section.
type StoreConfig struct {
	Backend string `toml:"backend,omitempty"` // "json" (default) or "sqlite"
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error
}

// ScoringConfig holds defaults from the [scoring] section.
// They fill in for users who declare no preferences.
type ScoringConfig struct {
	DefaultCapacity  int     `toml:"default_capacity,omitempty"`
	DeadlineWeight   float64 `toml:"deadline_weight,omitempty"`
	PriorityWeight   float64 `toml:"priority_weight,omitempty"`
	ComplexityWeight float64 `toml:"complexity_weight,omitempty"`
}

// Weights returns the scoring defaults as weight preferences.
func (c ScoringConfig) Weights() WeightPreferences {
	return WeightPreferences{
		Deadline:   c.DeadlineWeight,
		Priority:   c.PriorityWeight,
		Complexity: c.ComplexityWeight,
	}
}

// NewDefaultConfig returns the built-in configuration.
func NewDefaultConfig() *Config {
	w := DefaultWeightPreferences()
	return &Config{
		Store: StoreConfig{Backend: StoreJSON},
		Log:   LogConfig{Level: "info"},
		Scoring: ScoringConfig{
			DefaultCapacity:  DefaultDailyCapacity,
			DeadlineWeight:   w.Deadline,
			PriorityWeight:   w.Priority,
			ComplexityWeight: w.Complexity,
		},
	}
}

const configTemplate = `# taskpulse configuration

[store]
# Storage backend: "json" or "sqlite"
backend = "{{.Store.Backend}}"

[scoring]
# Daily task capacity for users who declare none
default_capacity = {{.Scoring.DefaultCapacity}}

# Relative importance of the dynamic weight factors.
# They are normalized by their sum, so they need not add up to 1.
deadline_weight = {{.Scoring.DeadlineWeight}}
priority_weight = {{.Scoring.PriorityWeight}}
complexity_weight = {{.Scoring.ComplexityWeight}}

[log]
# debug, info, warn, error
level = "{{.Log.Level}}"
`

var configTmpl = template.Must(template.New("config").Parse(configTemplate))

// RenderConfigTemplate renders the commented config template for cfg.
func RenderConfigTemplate(cfg *Config) string {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	var buf bytes.Buffer
	if err := configTmpl.Execute(&buf, cfg); err != nil {
		return ""
	}
	return buf.String()
}
