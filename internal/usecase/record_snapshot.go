package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/runoshun/taskpulse/internal/domain"
	"github.com/runoshun/taskpulse/internal/engine"
	"github.com/runoshun/taskpulse/internal/usecase/shared"
)

// RecordSnapshotInput contains the parameters for recording productivity.
type RecordSnapshotInput struct {
	User string // User ID or name (required)
}

// RecordSnapshotOutput contains the stored record.
type RecordSnapshotOutput struct {
	User     *domain.User
	Record   domain.ProductivityRecord
	Replaced bool // True if a record for the same day was overwritten
}

// RecordSnapshot is the use case for appending today's RTP to a user's history.
type RecordSnapshot struct {
	users  domain.UserRepository
	engine *engine.Engine
	clock  domain.Clock
	logger domain.Logger
}

// NewRecordSnapshot creates a new RecordSnapshot use case.
func NewRecordSnapshot(users domain.UserRepository, eng *engine.Engine, clock domain.Clock, logger domain.Logger) *RecordSnapshot {
	return &RecordSnapshot{
		users:  users,
		engine: eng,
		clock:  clock,
		logger: logger,
	}
}

// Execute computes the RTP over all tasks and stores it under today's date.
// History stays sorted by date with at most one record per day.
func (uc *RecordSnapshot) Execute(_ context.Context, in RecordSnapshotInput) (*RecordSnapshotOutput, error) {
	user, err := shared.GetUser(uc.users, in.User)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	result := uc.engine.CalculateRTP(user, engine.RTPOptions{Filter: domain.TierFilterAll}, now)
	record := domain.ProductivityRecord{
		Date:       startOfDay(now),
		Score:      result.Score,
		Percentage: result.Percentage,
		Completed:  result.Metrics.CompletedTasks,
		Total:      result.Metrics.TotalTasks,
	}

	replaced := false
	for i := range user.History {
		if user.History[i].Date.Equal(record.Date) {
			user.History[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		user.History = append(user.History, record)
		sort.SliceStable(user.History, func(i, j int) bool {
			return user.History[i].Date.Before(user.History[j].Date)
		})
	}

	if err := uc.users.Save(user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(user.ID, "snapshot", fmt.Sprintf("recorded %s: %.1f%% (%d/%d)",
			record.Date.Format(time.DateOnly), record.Percentage, record.Completed, record.Total))
	}

	return &RecordSnapshotOutput{
		User:     user,
		Record:   record,
		Replaced: replaced,
	}, nil
}

// startOfDay truncates t to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
