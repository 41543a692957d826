// Package domain contains core business entities and interfaces.
package domain

import (
	"time"
)

// Task represents one unit of work owned by a user.
// Fields are ordered to minimize memory padding.
type Task struct {
	Start            time.Time `json:"start" yaml:"start"` // When work on the task begins
	End              time.Time `json:"end" yaml:"end"`     // Deadline
	Priority         *int      `json:"priority,omitempty" yaml:"priority,omitempty"`                 // 1-10, nil = use tier base weight
	EstimatedMinutes *int      `json:"estimatedMinutes,omitempty" yaml:"estimatedMinutes,omitempty"` // nil = not recorded
	ActualMinutes    *int      `json:"actualMinutes,omitempty" yaml:"actualMinutes,omitempty"`       // nil = not recorded
	QualityRating    *int      `json:"qualityRating,omitempty" yaml:"qualityRating,omitempty"`       // 1-5, nil = not rated
	ID               string    `json:"id" yaml:"id"`
	Name             string    `json:"name" yaml:"name"`
	Description      string    `json:"description,omitempty" yaml:"description,omitempty"`
	Type             Tier      `json:"type" yaml:"type"`
	Recurrence       string    `json:"recurrence,omitempty" yaml:"recurrence,omitempty"`
	SubTasks         []SubTask `json:"subtasks,omitempty" yaml:"subtasks,omitempty"`
	BlockedBy        []string  `json:"blockedBy,omitempty" yaml:"blockedBy,omitempty"` // IDs of prerequisite tasks
	Collaborators    []string  `json:"collaborators,omitempty" yaml:"collaborators,omitempty"`
	Tags             []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
	Completed        bool      `json:"completed" yaml:"completed"`
}

// SubTask is a task owned by exactly one parent Task.
// It has the same shape as Task minus nested subtasks.
type SubTask struct {
	Start            time.Time `json:"start" yaml:"start"`
	End              time.Time `json:"end" yaml:"end"`
	Priority         *int      `json:"priority,omitempty" yaml:"priority,omitempty"`
	EstimatedMinutes *int      `json:"estimatedMinutes,omitempty" yaml:"estimatedMinutes,omitempty"`
	ActualMinutes    *int      `json:"actualMinutes,omitempty" yaml:"actualMinutes,omitempty"`
	QualityRating    *int      `json:"qualityRating,omitempty" yaml:"qualityRating,omitempty"`
	ID               string    `json:"id" yaml:"id"`
	Name             string    `json:"name" yaml:"name"`
	Description      string    `json:"description,omitempty" yaml:"description,omitempty"`
	Type             Tier      `json:"type" yaml:"type"`
	BlockedBy        []string  `json:"blockedBy,omitempty" yaml:"blockedBy,omitempty"`
	Collaborators    []string  `json:"collaborators,omitempty" yaml:"collaborators,omitempty"`
	Tags             []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
	Completed        bool      `json:"completed" yaml:"completed"`
}

// HasSubTasks returns true if the task has at least one subtask.
func (t *Task) HasSubTasks() bool {
	return len(t.SubTasks) > 0
}

// IsBlocked returns true if the task declares at least one prerequisite.
func (t *Task) IsBlocked() bool {
	return len(t.BlockedBy) > 0
}

// AllSubTasksCompleted returns true if every subtask is completed.
// A task without subtasks reports false.
func (t *Task) AllSubTasksCompleted() bool {
	if len(t.SubTasks) == 0 {
		return false
	}
	for i := range t.SubTasks {
		if !t.SubTasks[i].Completed {
			return false
		}
	}
	return true
}

// Duration returns End - Start. The result may be zero or negative
// when callers supply degenerate ranges.
func (t *Task) Duration() time.Duration {
	return t.End.Sub(t.Start)
}

// SubTask returns the subtask with the given ID, or nil.
func (t *Task) SubTask(id string) *SubTask {
	for i := range t.SubTasks {
		if t.SubTasks[i].ID == id {
			return &t.SubTasks[i]
		}
	}
	return nil
}

// IntPtr returns a pointer to v. Handy for optional fields.
func IntPtr(v int) *int {
	return &v
}
