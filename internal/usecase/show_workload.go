package usecase

import (
	"context"
	"time"

	"github.com/runoshun/taskpulse/internal/domain"
	"github.com/runoshun/taskpulse/internal/engine"
	"github.com/runoshun/taskpulse/internal/usecase/shared"
)

// ShowWorkloadInput contains the parameters for showing a user's workload.
type ShowWorkloadInput struct {
	User string // User ID or name (required)
}

// ShowWorkloadOutput contains the workload metrics.
type ShowWorkloadOutput struct {
	At       time.Time
	User     *domain.User
	Metrics  domain.WorkloadMetrics
	Declared bool // True if the user declared a capacity
}

// ShowWorkload is the use case for analyzing near-term load against capacity.
type ShowWorkload struct {
	users  domain.UserRepository
	engine *engine.Engine
	clock  domain.Clock
}

// NewShowWorkload creates a new ShowWorkload use case.
func NewShowWorkload(users domain.UserRepository, eng *engine.Engine, clock domain.Clock) *ShowWorkload {
	return &ShowWorkload{
		users:  users,
		engine: eng,
		clock:  clock,
	}
}

// Execute computes the workload metrics.
func (uc *ShowWorkload) Execute(_ context.Context, in ShowWorkloadInput) (*ShowWorkloadOutput, error) {
	user, err := shared.GetUser(uc.users, in.User)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	return &ShowWorkloadOutput{
		At:       now,
		User:     user,
		Metrics:  uc.engine.CalculateWorkloadMetrics(user, now),
		Declared: user.Preferences != nil && user.Preferences.WorkloadCapacity > 0,
	}, nil
}
