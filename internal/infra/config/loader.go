// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/taskpulse/internal/domain"
)

// Environment variables that override file configuration.
const (
	EnvStore    = "TASKPULSE_STORE"
	EnvLogLevel = "TASKPULSE_LOG_LEVEL"
	EnvDataDir  = "TASKPULSE_DATA_DIR"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	getenv        func(string) string
	dataDir       string // Path to the taskpulse data directory
	globalConfDir string // Path to global config directory (e.g., ~/.config/taskpulse)
}

// NewLoader creates a new Loader.
func NewLoader(dataDir string) *Loader {
	return &Loader{
		getenv:        os.Getenv,
		dataDir:       dataDir,
		globalConfDir: DefaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config
// directory and environment lookup. This is useful for testing.
func NewLoaderWithGlobalDir(dataDir, globalConfDir string, getenv func(string) string) *Loader {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	return &Loader{
		getenv:        getenv,
		dataDir:       dataDir,
		globalConfDir: globalConfDir,
	}
}

// DefaultGlobalConfigDir returns the default global config directory.
func DefaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// DefaultDataDir returns the data directory, honoring TASKPULSE_DATA_DIR.
func DefaultDataDir() string {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return dir
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".", "."+domain.AppName)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return domain.DataDir(dataHome)
}

// Load returns the merged configuration.
// Precedence: default <- global <- local (data dir) <- environment.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	for _, path := range l.paths() {
		cfg, err := l.loadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
		base = mergeConfigs(base, cfg)
	}

	l.applyEnv(base)
	return base, nil
}

// paths returns the config files in ascending precedence.
func (l *Loader) paths() []string {
	var paths []string
	if l.globalConfDir != "" {
		paths = append(paths, filepath.Join(l.globalConfDir, domain.ConfigFileName))
	}
	if l.dataDir != "" {
		paths = append(paths, filepath.Join(l.dataDir, domain.ConfigFileName))
	}
	return paths
}

func (l *Loader) applyEnv(cfg *domain.Config) {
	if v := strings.TrimSpace(l.getenv(EnvStore)); v != "" {
		cfg.Store.Backend = v
	}
	if v := strings.TrimSpace(l.getenv(EnvLogLevel)); v != "" {
		cfg.Log.Level = v
	}
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
// Unset keys stay at their zero value and are skipped by mergeConfigs.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "store":
			for k, v := range m {
				switch k {
				case "backend":
					if s, ok := v.(string); ok {
						res.Store.Backend = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [store]: %s", k))
				}
			}
		case "scoring":
			for k, v := range m {
				switch k {
				case "default_capacity":
					if n, ok := toNumber(v); ok {
						res.Scoring.DefaultCapacity = int(n)
					}
				case "deadline_weight":
					if n, ok := toNumber(v); ok {
						res.Scoring.DeadlineWeight = n
					}
				case "priority_weight":
					if n, ok := toNumber(v); ok {
						res.Scoring.PriorityWeight = n
					}
				case "complexity_weight":
					if n, ok := toNumber(v); ok {
						res.Scoring.ComplexityWeight = n
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [scoring]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.Log.Level = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// toNumber accepts TOML integers and floats.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// mergeConfigs overlays the non-zero values of override onto base.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	res := *base
	if override.Store.Backend != "" {
		res.Store.Backend = override.Store.Backend
	}
	if override.Log.Level != "" {
		res.Log.Level = override.Log.Level
	}
	if override.Scoring.DefaultCapacity != 0 {
		res.Scoring.DefaultCapacity = override.Scoring.DefaultCapacity
	}
	// The three weights are a set; overriding any of them replaces all three.
	if w := override.Scoring.Weights(); w.Sum() != 0 {
		res.Scoring.DeadlineWeight = w.Deadline
		res.Scoring.PriorityWeight = w.Priority
		res.Scoring.ComplexityWeight = w.Complexity
	}
	res.Warnings = append(append([]string(nil), base.Warnings...), override.Warnings...)
	return &res
}
