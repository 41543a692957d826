// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"time"

	"github.com/runoshun/taskpulse/internal/domain"
	"github.com/runoshun/taskpulse/internal/engine"
	"github.com/runoshun/taskpulse/internal/usecase/shared"
)

// openRangeEnd stands in for a missing upper date bound.
var openRangeEnd = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

// CalculateRTPInput contains the parameters for an RTP calculation.
// Fields are ordered to minimize memory padding.
type CalculateRTPInput struct {
	From   *time.Time        // Range start, inclusive (optional)
	To     *time.Time        // Range end, exclusive (optional)
	User   string            // User ID or name (required)
	Filter domain.TierFilter // Tier filter ("" = ALL)
}

// CalculateRTPOutput contains the result of an RTP calculation.
type CalculateRTPOutput struct {
	At     time.Time         // Evaluation instant
	User   *domain.User      // Evaluated user
	Range  *domain.DateRange // Applied date range, nil if none
	Result domain.RTPResult  // Percentage, score and metrics
	Filter domain.TierFilter // Applied tier filter
}

// CalculateRTP is the use case for computing real-time productivity.
type CalculateRTP struct {
	users  domain.UserRepository
	engine *engine.Engine
	clock  domain.Clock
}

// NewCalculateRTP creates a new CalculateRTP use case.
func NewCalculateRTP(users domain.UserRepository, eng *engine.Engine, clock domain.Clock) *CalculateRTP {
	return &CalculateRTP{
		users:  users,
		engine: eng,
		clock:  clock,
	}
}

// Execute computes the RTP for the user at the current clock instant.
func (uc *CalculateRTP) Execute(_ context.Context, in CalculateRTPInput) (*CalculateRTPOutput, error) {
	dateRange, err := buildDateRange(in.From, in.To)
	if err != nil {
		return nil, err
	}

	user, err := shared.GetUser(uc.users, in.User)
	if err != nil {
		return nil, err
	}

	filter := in.Filter
	if filter == "" {
		filter = domain.TierFilterAll
	}

	now := uc.clock.Now()
	result := uc.engine.CalculateRTP(user, engine.RTPOptions{
		Range:  dateRange,
		Filter: filter,
	}, now)

	return &CalculateRTPOutput{
		At:     now,
		User:   user,
		Range:  dateRange,
		Result: result,
		Filter: filter,
	}, nil
}

// buildDateRange turns optional bounds into a range.
// A missing bound leaves that side open; no bounds means no range.
func buildDateRange(from, to *time.Time) (*domain.DateRange, error) {
	if from == nil && to == nil {
		return nil, nil
	}
	r := domain.DateRange{End: openRangeEnd}
	if from != nil {
		r.Start = *from
	}
	if to != nil {
		r.End = *to
	}
	if r.IsInverted() {
		return nil, domain.ErrInvalidDateRange
	}
	return &r, nil
}
