package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/taskpulse/internal/domain"
	"github.com/runoshun/taskpulse/internal/engine"
	"github.com/runoshun/taskpulse/internal/usecase/shared"
)

// UpdateTaskInput contains the parameters for updating a task.
// Nil fields are left unchanged. When SubTaskID is set, the changes apply
// to that subtask instead of the task.
// Fields are ordered to minimize memory padding.
type UpdateTaskInput struct {
	Completed     *bool  // Mark complete or incomplete
	ActualMinutes *int   // Time actually spent
	QualityRating *int   // 1-5
	User          string // User ID or name (required)
	TaskID        string // Task ID or unique prefix (required)
	SubTaskID     string // Subtask ID or unique prefix (optional)
}

// UpdateTaskOutput contains the updated task.
type UpdateTaskOutput struct {
	SubTask       *domain.SubTask // Updated subtask, nil for task updates
	Task          domain.Task
	TaskCompleted bool // Whether the task now counts as completed
}

// UpdateTask is the use case for recording progress on a task.
type UpdateTask struct {
	users  domain.UserRepository
	logger domain.Logger
}

// NewUpdateTask creates a new UpdateTask use case.
func NewUpdateTask(users domain.UserRepository, logger domain.Logger) *UpdateTask {
	return &UpdateTask{
		users:  users,
		logger: logger,
	}
}

// Execute applies the requested changes and saves the user.
func (uc *UpdateTask) Execute(_ context.Context, in UpdateTaskInput) (*UpdateTaskOutput, error) {
	if in.Completed == nil && in.ActualMinutes == nil && in.QualityRating == nil {
		return nil, domain.ErrNoFieldsToUpdate
	}
	if err := validateMinutes(in.ActualMinutes); err != nil {
		return nil, err
	}
	if err := validateRating(in.QualityRating); err != nil {
		return nil, err
	}

	user, err := shared.GetUser(uc.users, in.User)
	if err != nil {
		return nil, err
	}
	task, err := shared.FindTask(user, in.TaskID)
	if err != nil {
		return nil, err
	}

	var (
		sub     *domain.SubTask
		changes []string
	)
	if in.SubTaskID != "" {
		sub, err = shared.FindSubTask(task, in.SubTaskID)
		if err != nil {
			return nil, err
		}
		changes = applyChanges(in, &sub.Completed, &sub.ActualMinutes, &sub.QualityRating)
	} else {
		changes = applyChanges(in, &task.Completed, &task.ActualMinutes, &task.QualityRating)
	}

	if err := uc.users.Save(user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	if uc.logger != nil {
		target := task.ID
		if sub != nil {
			target = task.ID + "/" + sub.ID
		}
		uc.logger.Info(user.ID, "task", fmt.Sprintf("updated %s: %s", target, strings.Join(changes, ", ")))
	}

	out := &UpdateTaskOutput{
		Task:          *task,
		TaskCompleted: engine.IsTaskCompleted(task),
	}
	if sub != nil {
		s := *sub
		out.SubTask = &s
	}
	return out, nil
}

// applyChanges writes the requested values into the target fields and
// describes what changed.
func applyChanges(in UpdateTaskInput, completed *bool, actual, rating **int) []string {
	var changes []string
	if in.Completed != nil {
		*completed = *in.Completed
		if *in.Completed {
			changes = append(changes, "completed")
		} else {
			changes = append(changes, "reopened")
		}
	}
	if in.ActualMinutes != nil {
		*actual = domain.IntPtr(*in.ActualMinutes)
		changes = append(changes, fmt.Sprintf("actual=%dm", *in.ActualMinutes))
	}
	if in.QualityRating != nil {
		*rating = domain.IntPtr(*in.QualityRating)
		changes = append(changes, fmt.Sprintf("rating=%d", *in.QualityRating))
	}
	return changes
}
