// Package engine computes productivity scores from a user's tasks.
//
// Every calculation is a pure function of its inputs and an explicit
// evaluation instant; nothing here reads the wall clock or mutates tasks.
package engine

import (
	"github.com/runoshun/taskpulse/internal/domain"
)

// Defaults are the fallbacks applied to users who declare no preferences.
type Defaults struct {
	Weights       domain.WeightPreferences
	DailyCapacity int
}

// StandardDefaults returns the built-in fallbacks.
func StandardDefaults() Defaults {
	return Defaults{
		Weights:       domain.DefaultWeightPreferences(),
		DailyCapacity: domain.DefaultDailyCapacity,
	}
}

// DefaultsFromConfig builds defaults from the [scoring] config section.
func DefaultsFromConfig(cfg domain.ScoringConfig) Defaults {
	return Defaults{
		Weights:       cfg.Weights(),
		DailyCapacity: cfg.DefaultCapacity,
	}
}

// Engine scores tasks against a fixed set of defaults.
// It holds no other state and is safe for concurrent use.
type Engine struct {
	defaults Defaults
}

// New creates an Engine. Unusable defaults are replaced with the
// built-in ones so that no calculation divides by zero.
func New(d Defaults) *Engine {
	std := StandardDefaults()
	if !validWeights(d.Weights) {
		d.Weights = std.Weights
	}
	if d.DailyCapacity <= 0 {
		d.DailyCapacity = std.DailyCapacity
	}
	return &Engine{defaults: d}
}

// Default returns an Engine using the built-in defaults.
func Default() *Engine {
	return New(StandardDefaults())
}

// Defaults returns the effective defaults.
func (e *Engine) Defaults() Defaults {
	return e.defaults
}

// weightsFor returns the user's weight preferences, or the defaults.
func (e *Engine) weightsFor(user *domain.User) domain.WeightPreferences {
	if user != nil && user.Preferences != nil && user.Preferences.Weights != nil {
		if w := *user.Preferences.Weights; validWeights(w) {
			return w
		}
	}
	return e.defaults.Weights
}

// capacityFor returns the user's daily capacity and whether it was declared.
func (e *Engine) capacityFor(user *domain.User) (int, bool) {
	if user != nil && user.Preferences != nil && user.Preferences.WorkloadCapacity > 0 {
		return user.Preferences.WorkloadCapacity, true
	}
	return e.defaults.DailyCapacity, false
}

func validWeights(w domain.WeightPreferences) bool {
	return w.Deadline >= 0 && w.Priority >= 0 && w.Complexity >= 0 && w.Sum() > 0
}
