package engine

import (
	"math"
	"time"

	"github.com/runoshun/taskpulse/internal/domain"
)

// RTPOptions restricts which tasks take part in an RTP calculation.
type RTPOptions struct {
	Range  *domain.DateRange // Only tasks starting inside the range (nil = all)
	Filter domain.TierFilter // Only tasks of this tier enter the weighted sums
}

// CalculateRTP computes the weighted completion percentage of the user's tasks.
//
// Tasks outside the date range are ignored entirely. Tasks outside the tier
// filter still count toward the total and blocked counts but not toward the
// weighted sums or the completed count.
func (e *Engine) CalculateRTP(user *domain.User, opts RTPOptions, now time.Time) domain.RTPResult {
	if user == nil {
		return zeroRTP()
	}

	w := e.newWeigher(user, now)

	var (
		completedSum, totalSum     float64
		estimatedSum, actualSum    float64
		hasEstimates               bool
		totalTasks, completedTasks int
		blockedTasks               int
	)

	for i := range user.Tasks {
		task := &user.Tasks[i]
		if opts.Range != nil && !opts.Range.Contains(task.Start) {
			continue
		}

		totalTasks++
		if task.IsBlocked() {
			blockedTasks++
		}
		if !opts.Filter.Matches(task.Type) {
			continue
		}

		weight := w.explain(task).Weight

		if task.EstimatedMinutes != nil && task.ActualMinutes != nil {
			hasEstimates = true
			estimatedSum += float64(*task.EstimatedMinutes)
			actualSum += float64(*task.ActualMinutes)
		}

		c := SubtaskContribution(task)
		if IsTaskCompleted(task) {
			completedTasks++
		}
		completedSum += weight * c.CompletedWeight
		totalSum += weight * c.TotalWeight
	}

	if totalSum == 0 {
		return zeroRTP()
	}

	metrics := domain.RTPMetrics{
		CompletedTasks: completedTasks,
		TotalTasks:     totalTasks,
		BlockedTasks:   blockedTasks,
	}
	if hasEstimates {
		metrics.EstimationAccuracy = estimationAccuracy(estimatedSum, actualSum)
	}
	if totalTasks > 0 {
		n := float64(totalTasks)
		metrics.CompletionRate = float64(completedTasks) / n * 100
		metrics.BlockedTasksPercentage = float64(blockedTasks) / n * 100
		metrics.AverageTaskWeight = totalSum / n
	}

	return domain.RTPResult{
		Percentage: completedSum / totalSum * 100,
		Score:      int(math.Round(completedSum)),
		Metrics:    metrics,
	}
}

// estimationAccuracy scores how close actual time came to the estimate.
// The result is capped at 100 but has no lower bound. It returns nil
// when nothing was estimated.
func estimationAccuracy(estimated, actual float64) *float64 {
	if estimated <= 0 {
		return nil
	}
	acc := math.Min(100, 100-math.Abs(actual-estimated)/estimated*100)
	return &acc
}

func zeroRTP() domain.RTPResult {
	return domain.RTPResult{
		Metrics: domain.RTPMetrics{EstimationAccuracy: new(float64)},
	}
}
