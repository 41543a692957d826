package domain

import "time"

// DateRange is a half-open timestamp interval [Start, End).
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// IsInverted returns true if End is before Start.
func (r DateRange) IsInverted() bool {
	return r.End.Before(r.Start)
}

// RTPResult is the output of a real-time productivity calculation.
type RTPResult struct {
	Metrics    RTPMetrics `json:"metrics"`
	Percentage float64    `json:"percentage"` // Weighted completion in [0, 100]
	Score      int        `json:"score"`      // Rounded weighted completed sum
}

// RTPMetrics holds the metrics derived alongside the RTP percentage.
type RTPMetrics struct {
	// EstimationAccuracy is nil when no task recorded both an estimate and
	// an actual time. It is not clamped below zero.
	EstimationAccuracy     *float64 `json:"estimationAccuracy"`
	CompletionRate         float64  `json:"completionRate"`
	BlockedTasksPercentage float64  `json:"blockedTasksPercentage"`
	AverageTaskWeight      float64  `json:"averageTaskWeight"`
	CompletedTasks         int      `json:"completedTasks"`
	TotalTasks             int      `json:"totalTasks"`
	BlockedTasks           int      `json:"blockedTasks"`
}

// WorkloadMetrics describes a user's near-term load against capacity.
type WorkloadMetrics struct {
	OverloadFactor    float64 `json:"overloadFactor"`
	DailyCapacity     int     `json:"dailyCapacity"`
	CurrentLoad       int     `json:"currentLoad"`
	UpcomingDeadlines int     `json:"upcomingDeadlines"`
	BlockedTasks      int     `json:"blockedTasks"`
}

// IsOverloaded returns true if current load exceeds capacity.
func (m WorkloadMetrics) IsOverloaded() bool {
	return m.OverloadFactor > 1
}

// Classification is the tier and priority assigned to an untyped task.
type Classification struct {
	Scores   TierScores `json:"scores"`
	Type     Tier       `json:"type"`
	Priority int        `json:"priority"`
}

// TierScores holds the raw heuristic points per tier.
type TierScores struct {
	Low  int `json:"low"`
	Mid  int `json:"mid"`
	High int `json:"high"`
}

// Total returns the unweighted sum of the three scores.
func (s TierScores) Total() int {
	return s.Low + s.Mid + s.High
}
