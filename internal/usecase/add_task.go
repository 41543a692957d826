package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/runoshun/taskpulse/internal/domain"
	"github.com/runoshun/taskpulse/internal/usecase/shared"
)

// AddTaskInput contains the parameters for adding a task.
// Fields are ordered to minimize memory padding.
type AddTaskInput struct {
	Start            *time.Time // Defaults to now
	End              *time.Time // Defaults to one day after start
	Priority         *int       // 1-10 (optional)
	EstimatedMinutes *int       // Optional
	User             string     // User ID or name (required)
	Name             string     // Task name (required)
	Description      string
	Type             string   // LOW, MID, HIGH or AUTO ("" = AUTO)
	Recurrence       string   // Free-form, informational
	SubTasks         []string // Subtask names
	Collaborators    []string
	BlockedBy        []string // Task IDs or ID prefixes of prerequisite tasks
	Tags             []string
}

// AddTaskOutput contains the result of adding a task.
type AddTaskOutput struct {
	Task       domain.Task // The stored task
	Classified bool        // True if the tier was assigned automatically
}

// AddTask is the use case for adding a task to a user.
type AddTask struct {
	users  domain.UserRepository
	clock  domain.Clock
	logger domain.Logger
	newID  func() string
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(users domain.UserRepository, clock domain.Clock, logger domain.Logger) *AddTask {
	return &AddTask{
		users:  users,
		clock:  clock,
		logger: logger,
		newID:  uuid.NewString,
	}
}

// Execute validates, classifies and stores the task.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	user, err := shared.GetUser(uc.users, in.User)
	if err != nil {
		return nil, err
	}

	// Classification only sees the times the caller gave.
	task := domain.Task{
		Name:             in.Name,
		Description:      in.Description,
		Type:             domain.Tier(in.Type),
		Priority:         in.Priority,
		EstimatedMinutes: in.EstimatedMinutes,
		Recurrence:       in.Recurrence,
		Collaborators:    in.Collaborators,
		Tags:             in.Tags,
	}
	if in.Start != nil {
		task.Start = *in.Start
	}
	if in.End != nil {
		task.End = *in.End
	}
	for _, name := range in.SubTasks {
		task.SubTasks = append(task.SubTasks, domain.SubTask{Name: name})
	}

	for _, ref := range in.BlockedBy {
		blocker, err := shared.FindTask(user, ref)
		if err != nil {
			return nil, fmt.Errorf("blocked by %q: %w", ref, err)
		}
		task.BlockedBy = append(task.BlockedBy, blocker.ID)
	}

	classified, err := prepareTask(&task, uc.newID)
	if err != nil {
		return nil, err
	}
	fillSpan(&task, uc.clock.Now())

	user.Tasks = append(user.Tasks, task)
	if err := uc.users.Save(user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(user.ID, "task", fmt.Sprintf("added %s: %q (%s)", task.ID, task.Name, task.Type))
	}

	return &AddTaskOutput{
		Task:       task,
		Classified: classified,
	}, nil
}
