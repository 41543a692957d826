package engine

import (
	"time"

	"github.com/runoshun/taskpulse/internal/domain"
)

// upcomingHorizon bounds the near-but-not-immediate deadline window.
const upcomingHorizon = 3 // days

// CalculateWorkloadMetrics measures the user's near-term load at now.
//
// Current load counts incomplete tasks due by the end of tomorrow
// (overdue tasks included). Upcoming deadlines counts incomplete tasks due
// after that but before three days from now.
func (e *Engine) CalculateWorkloadMetrics(user *domain.User, now time.Time) domain.WorkloadMetrics {
	capacity, _ := e.capacityFor(user)
	m := domain.WorkloadMetrics{DailyCapacity: capacity}
	if user == nil {
		return m
	}

	tomorrowEnd := endOfDay(now.AddDate(0, 0, 1))
	horizon := now.AddDate(0, 0, upcomingHorizon)

	for i := range user.Tasks {
		task := &user.Tasks[i]
		if task.Completed {
			continue
		}
		switch {
		case !task.End.After(tomorrowEnd):
			m.CurrentLoad++
		case task.End.Before(horizon):
			m.UpcomingDeadlines++
		}
		if task.IsBlocked() {
			m.BlockedTasks++
		}
	}

	m.OverloadFactor = float64(m.CurrentLoad) / float64(capacity)
	return m
}

// endOfDay returns the last representable instant of t's calendar day.
func endOfDay(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
