package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/runoshun/taskpulse/internal/domain"
	"github.com/runoshun/taskpulse/internal/engine"
)

// defaultTaskSpan is the deadline distance used when a task has no end.
const defaultTaskSpan = 24 * time.Hour

// defaultSpan fills in missing start and end times.
// Start defaults to now and end to one day after start.
func defaultSpan(now time.Time, start, end *time.Time) (time.Time, time.Time) {
	s := now
	if start != nil {
		s = *start
	}
	e := s.Add(defaultTaskSpan)
	if end != nil {
		e = *end
	}
	return s, e
}

// fillSpan applies defaultSpan to a task whose times are unset and lets
// its subtasks inherit the result.
func fillSpan(task *domain.Task, now time.Time) {
	var start, end *time.Time
	if !task.Start.IsZero() {
		start = &task.Start
	}
	if !task.End.IsZero() {
		end = &task.End
	}
	task.Start, task.End = defaultSpan(now, start, end)
	for i := range task.SubTasks {
		st := &task.SubTasks[i]
		if st.Start.IsZero() {
			st.Start = task.Start
		}
		if st.End.IsZero() {
			st.End = task.End
		}
	}
}

// validatePriority checks the optional 1..10 priority.
func validatePriority(p *int) error {
	if p != nil && (*p < 1 || *p > 10) {
		return domain.ErrInvalidPriority
	}
	return nil
}

// validateMinutes checks an optional minute count.
func validateMinutes(m *int) error {
	if m != nil && *m < 0 {
		return domain.ErrInvalidMinutes
	}
	return nil
}

// validateRating checks the optional 1..5 quality rating.
func validateRating(r *int) error {
	if r != nil && (*r < 1 || *r > 5) {
		return domain.ErrInvalidRating
	}
	return nil
}

// prepareTask assigns missing IDs, validates the task and classifies it
// when its tier is empty or AUTO. It reports whether classification ran.
func prepareTask(task *domain.Task, newID func() string) (bool, error) {
	task.Name = strings.TrimSpace(task.Name)
	if task.Name == "" {
		return false, domain.ErrEmptyName
	}
	if task.ID == "" {
		task.ID = newID()
	}
	if err := validatePriority(task.Priority); err != nil {
		return false, err
	}
	if err := validateMinutes(task.EstimatedMinutes); err != nil {
		return false, err
	}
	if err := validateMinutes(task.ActualMinutes); err != nil {
		return false, err
	}
	if err := validateRating(task.QualityRating); err != nil {
		return false, err
	}

	for i := range task.SubTasks {
		if err := prepareSubTask(&task.SubTasks[i], task, newID); err != nil {
			return false, fmt.Errorf("subtask %d: %w", i+1, err)
		}
	}

	tier, err := domain.ParseTier(string(task.Type))
	if err != nil {
		return false, err
	}
	if tier != domain.TierAuto {
		task.Type = tier
		return false, nil
	}

	c := engine.ClassifyTask(task)
	task.Type = c.Type
	if task.Priority == nil {
		task.Priority = domain.IntPtr(c.Priority)
	}
	return true, nil
}

// prepareSubTask fills a subtask from its parent and classifies it by its
// own name and description when untyped.
func prepareSubTask(st *domain.SubTask, parent *domain.Task, newID func() string) error {
	st.Name = strings.TrimSpace(st.Name)
	if st.Name == "" {
		return domain.ErrEmptyName
	}
	if st.ID == "" {
		st.ID = newID()
	}
	if st.Start.IsZero() {
		st.Start = parent.Start
	}
	if st.End.IsZero() {
		st.End = parent.End
	}
	if err := validatePriority(st.Priority); err != nil {
		return err
	}
	if err := validateRating(st.QualityRating); err != nil {
		return err
	}

	tier, err := domain.ParseTier(string(st.Type))
	if err != nil {
		return err
	}
	if tier == domain.TierAuto {
		tier = engine.ClassifyTask(&domain.Task{
			Name:        st.Name,
			Description: st.Description,
			Start:       st.Start,
			End:         st.End,
		}).Type
	}
	st.Type = tier
	return nil
}
