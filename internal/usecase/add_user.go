package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/runoshun/taskpulse/internal/domain"
)

// AddUserInput contains the parameters for adding a user.
// Fields are ordered to minimize memory padding.
type AddUserInput struct {
	Weights         *domain.WeightPreferences // Optional scoring weights
	Name            string                    // Display name (required, unique)
	ProductiveHours []domain.HourWindow
	PreferredTiers  []domain.Tier
	Capacity        int // Tasks per day (0 = use the configured default)
}

// AddUserOutput contains the created user.
type AddUserOutput struct {
	User *domain.User
}

// AddUser is the use case for registering a user.
type AddUser struct {
	users  domain.UserRepository
	logger domain.Logger
	newID  func() string
}

// NewAddUser creates a new AddUser use case.
func NewAddUser(users domain.UserRepository, logger domain.Logger) *AddUser {
	return &AddUser{
		users:  users,
		logger: logger,
		newID:  uuid.NewString,
	}
}

// Execute validates and stores a new user.
func (uc *AddUser) Execute(_ context.Context, in AddUserInput) (*AddUserOutput, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrEmptyName
	}

	prefs, err := buildPreferences(in)
	if err != nil {
		return nil, err
	}

	existing, err := uc.users.List()
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	for _, u := range existing {
		if strings.EqualFold(u.Name, name) {
			return nil, fmt.Errorf("%q: %w", name, domain.ErrDuplicateUser)
		}
	}

	user := &domain.User{
		ID:          uc.newID(),
		Name:        name,
		Preferences: prefs,
		Tasks:       []domain.Task{},
	}
	if err := uc.users.Save(user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(user.ID, "user", fmt.Sprintf("created: %q", user.Name))
	}

	return &AddUserOutput{User: user}, nil
}

// buildPreferences validates the optional preferences.
// It returns nil when nothing was declared.
func buildPreferences(in AddUserInput) (*domain.UserPreferences, error) {
	if in.Capacity < 0 {
		return nil, domain.ErrInvalidCapacity
	}
	for _, w := range in.ProductiveHours {
		if err := validateHourWindow(w); err != nil {
			return nil, err
		}
	}
	if in.Weights != nil {
		if err := validateWeights(*in.Weights); err != nil {
			return nil, err
		}
	}
	for _, t := range in.PreferredTiers {
		if !t.IsValid() {
			return nil, domain.ErrInvalidTier
		}
	}

	if in.Weights == nil && in.Capacity == 0 && len(in.ProductiveHours) == 0 && len(in.PreferredTiers) == 0 {
		return nil, nil
	}
	return &domain.UserPreferences{
		Weights:          in.Weights,
		ProductiveHours:  in.ProductiveHours,
		PreferredTiers:   in.PreferredTiers,
		WorkloadCapacity: in.Capacity,
	}, nil
}

func validateHourWindow(w domain.HourWindow) error {
	if w.Start < 0 || w.Start > 23 || w.End < 0 || w.End > 24 {
		return domain.ErrInvalidHourWindow
	}
	return nil
}

func validateWeights(w domain.WeightPreferences) error {
	if w.Deadline < 0 || w.Priority < 0 || w.Complexity < 0 || w.Sum() <= 0 {
		return domain.ErrInvalidWeights
	}
	return nil
}
