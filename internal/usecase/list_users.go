package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskpulse/internal/domain"
	"github.com/runoshun/taskpulse/internal/engine"
)

// ListUsersInput contains the parameters for listing users.
type ListUsersInput struct{}

// UserSummary is a user with task counts.
type UserSummary struct {
	User      *domain.User
	Open      int // Incomplete tasks
	Completed int // Completed tasks
}

// ListUsersOutput contains the users ordered by name.
type ListUsersOutput struct {
	Users []UserSummary
}

// ListUsers is the use case for listing users.
type ListUsers struct {
	users domain.UserRepository
}

// NewListUsers creates a new ListUsers use case.
func NewListUsers(users domain.UserRepository) *ListUsers {
	return &ListUsers{users: users}
}

// Execute returns every user with open and completed task counts.
func (uc *ListUsers) Execute(_ context.Context, _ ListUsersInput) (*ListUsersOutput, error) {
	users, err := uc.users.List()
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := &ListUsersOutput{Users: make([]UserSummary, 0, len(users))}
	for _, u := range users {
		s := UserSummary{User: u}
		for i := range u.Tasks {
			if engine.IsTaskCompleted(&u.Tasks[i]) {
				s.Completed++
			} else {
				s.Open++
			}
		}
		out.Users = append(out.Users, s)
	}
	return out, nil
}
