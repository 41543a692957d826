package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/runoshun/taskpulse/internal/domain"
)

// ImportUsersInput contains the users to import.
type ImportUsersInput struct {
	Users  []domain.User // Parsed users (IDs optional)
	DryRun bool          // If true, validate and classify without saving
}

// ImportedUser describes one imported user.
// Fields are ordered to minimize memory padding.
type ImportedUser struct {
	ID         string
	Name       string
	Tasks      int
	Classified int  // Tasks whose tier was assigned on import
	Replaced   bool // True if a user with the same ID existed
}

// ImportUsersOutput contains the result of an import.
type ImportUsersOutput struct {
	Users []ImportedUser
}

// ImportUsers is the use case for loading users from a fixture file.
// Users with an existing ID replace the stored user.
type ImportUsers struct {
	users  domain.UserRepository
	logger domain.Logger
	newID  func() string
}

// NewImportUsers creates a new ImportUsers use case.
func NewImportUsers(users domain.UserRepository, logger domain.Logger) *ImportUsers {
	return &ImportUsers{
		users:  users,
		logger: logger,
		newID:  uuid.NewString,
	}
}

// Execute validates every user before saving any of them.
func (uc *ImportUsers) Execute(_ context.Context, in ImportUsersInput) (*ImportUsersOutput, error) {
	prepared := make([]domain.User, len(in.Users))
	out := &ImportUsersOutput{Users: make([]ImportedUser, 0, len(in.Users))}
	seen := make(map[string]bool, len(in.Users))

	for i := range in.Users {
		user := in.Users[i]
		summary, err := uc.prepareUser(&user)
		if err != nil {
			return nil, fmt.Errorf("user %d (%s): %w", i+1, in.Users[i].Name, err)
		}
		if seen[user.ID] {
			return nil, fmt.Errorf("user %d (%s): %w", i+1, user.Name, domain.ErrDuplicateUser)
		}
		seen[user.ID] = true

		existing, err := uc.users.Get(user.ID)
		if err != nil {
			return nil, fmt.Errorf("get user: %w", err)
		}
		summary.Replaced = existing != nil

		prepared[i] = user
		out.Users = append(out.Users, summary)
	}

	if in.DryRun {
		return out, nil
	}

	for i := range prepared {
		if err := uc.users.Save(&prepared[i]); err != nil {
			return nil, fmt.Errorf("save user %s: %w", prepared[i].Name, err)
		}
		if uc.logger != nil {
			uc.logger.Info(prepared[i].ID, "import", fmt.Sprintf("imported %q with %d tasks", prepared[i].Name, len(prepared[i].Tasks)))
		}
	}
	return out, nil
}

// prepareUser assigns IDs, validates preferences and classifies untyped tasks.
func (uc *ImportUsers) prepareUser(user *domain.User) (ImportedUser, error) {
	user.Name = strings.TrimSpace(user.Name)
	if user.Name == "" {
		return ImportedUser{}, domain.ErrEmptyName
	}
	if user.ID == "" {
		user.ID = uc.newID()
	}
	if p := user.Preferences; p != nil {
		if _, err := buildPreferences(AddUserInput{
			Weights:         p.Weights,
			ProductiveHours: p.ProductiveHours,
			PreferredTiers:  p.PreferredTiers,
			Capacity:        p.WorkloadCapacity,
		}); err != nil {
			return ImportedUser{}, err
		}
	}

	// Copy the task slice so the caller's users are left untouched.
	tasks := make([]domain.Task, len(user.Tasks))
	copy(tasks, user.Tasks)
	classified := 0
	for i := range tasks {
		tasks[i].SubTasks = append([]domain.SubTask(nil), tasks[i].SubTasks...)
		ok, err := prepareTask(&tasks[i], uc.newID)
		if err != nil {
			return ImportedUser{}, fmt.Errorf("task %d (%s): %w", i+1, tasks[i].Name, err)
		}
		if ok {
			classified++
		}
	}
	user.Tasks = tasks

	return ImportedUser{
		ID:         user.ID,
		Name:       user.Name,
		Tasks:      len(tasks),
		Classified: classified,
	}, nil
}
