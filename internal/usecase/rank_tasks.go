package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/runoshun/taskpulse/internal/domain"
	"github.com/runoshun/taskpulse/internal/engine"
	"github.com/runoshun/taskpulse/internal/usecase/shared"
)

// RankTasksInput contains the parameters for ranking a user's open tasks.
type RankTasksInput struct {
	User  string // User ID or name (required)
	Limit int    // Maximum number of tasks (0 = all)
}

// RankedTask is an open task with its dynamic weight.
type RankedTask struct {
	Task      *domain.Task
	Breakdown engine.WeightBreakdown
}

// RankTasksOutput contains the ranked tasks, heaviest first.
type RankTasksOutput struct {
	At    time.Time
	User  *domain.User
	Tasks []RankedTask
}

// RankTasks is the use case for ordering open tasks by dynamic weight.
type RankTasks struct {
	users  domain.UserRepository
	engine *engine.Engine
	clock  domain.Clock
}

// NewRankTasks creates a new RankTasks use case.
func NewRankTasks(users domain.UserRepository, eng *engine.Engine, clock domain.Clock) *RankTasks {
	return &RankTasks{
		users:  users,
		engine: eng,
		clock:  clock,
	}
}

// Execute ranks the user's incomplete tasks.
// Ties are broken by earlier deadline, then by name.
func (uc *RankTasks) Execute(_ context.Context, in RankTasksInput) (*RankTasksOutput, error) {
	user, err := shared.GetUser(uc.users, in.User)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	ranked := make([]RankedTask, 0, len(user.Tasks))
	for i := range user.Tasks {
		task := &user.Tasks[i]
		if engine.IsTaskCompleted(task) {
			continue
		}
		ranked = append(ranked, RankedTask{
			Task:      task,
			Breakdown: uc.engine.ExplainWeight(task, user, now),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Breakdown.Weight != b.Breakdown.Weight {
			return a.Breakdown.Weight > b.Breakdown.Weight
		}
		if !a.Task.End.Equal(b.Task.End) {
			return a.Task.End.Before(b.Task.End)
		}
		return a.Task.Name < b.Task.Name
	})

	if in.Limit > 0 && len(ranked) > in.Limit {
		ranked = ranked[:in.Limit]
	}

	return &RankTasksOutput{
		At:    now,
		User:  user,
		Tasks: ranked,
	}, nil
}
