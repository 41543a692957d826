package domain

import "time"

// User owns an ordered collection of tasks and optional preferences.
type User struct {
	Preferences *UserPreferences     `json:"preferences,omitempty" yaml:"preferences,omitempty"`
	ID          string               `json:"id" yaml:"id"`
	Name        string               `json:"name" yaml:"name"`
	Tasks       []Task               `json:"tasks" yaml:"tasks"`
	History     []ProductivityRecord `json:"history,omitempty" yaml:"history,omitempty"`
}

// Task returns the task with the given ID, or nil.
func (u *User) Task(id string) *Task {
	for i := range u.Tasks {
		if u.Tasks[i].ID == id {
			return &u.Tasks[i]
		}
	}
	return nil
}

// UserPreferences holds optional per-user scoring preferences.
type UserPreferences struct {
	Weights          *WeightPreferences `json:"weights,omitempty" yaml:"weights,omitempty"`
	ProductiveHours  []HourWindow       `json:"productiveHours,omitempty" yaml:"productiveHours,omitempty"`
	PreferredTiers   []Tier             `json:"preferredTiers,omitempty" yaml:"preferredTiers,omitempty"`     // Informational only
	WorkloadCapacity int                `json:"workloadCapacity,omitempty" yaml:"workloadCapacity,omitempty"` // Tasks per day (0 = undeclared)
}

// WeightPreferences expresses the relative importance of the three
// dynamic-weight factors. Values need not sum to 1.
type WeightPreferences struct {
	Deadline   float64 `json:"deadline" yaml:"deadline" toml:"deadline_weight"`
	Priority   float64 `json:"priority" yaml:"priority" toml:"priority_weight"`
	Complexity float64 `json:"complexity" yaml:"complexity" toml:"complexity_weight"`
}

// Sum returns the total of the three ratios.
func (w WeightPreferences) Sum() float64 {
	return w.Deadline + w.Priority + w.Complexity
}

// DefaultWeightPreferences returns the weights applied when a user declares none.
func DefaultWeightPreferences() WeightPreferences {
	return WeightPreferences{Deadline: 0.4, Priority: 0.4, Complexity: 0.2}
}

// DefaultDailyCapacity is the daily task capacity assumed when none is declared.
const DefaultDailyCapacity = 5

// HourWindow is an hour-of-day range [Start, End).
// A window whose End is not after Start wraps past midnight.
type HourWindow struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Contains reports whether the hour of t falls inside the window.
func (w HourWindow) Contains(t time.Time) bool {
	h := t.Hour()
	if w.Start < w.End {
		return h >= w.Start && h < w.End
	}
	if w.Start == w.End {
		return false
	}
	return h >= w.Start || h < w.End
}

// ProductivityRecord is one day of recorded productivity.
type ProductivityRecord struct {
	Date       time.Time `json:"date" yaml:"date"`
	Score      int       `json:"score" yaml:"score"`
	Percentage float64   `json:"percentage" yaml:"percentage"`
	Completed  int       `json:"completed" yaml:"completed"`
	Total      int       `json:"total" yaml:"total"`
}
