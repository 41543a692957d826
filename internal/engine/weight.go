package engine

import (
	"math"
	"time"

	"github.com/runoshun/taskpulse/internal/domain"
)

const (
	day = 24 * time.Hour

	urgencySlope      = 0.5 // Urgency gained over a task's full duration
	maxOverdueUrgency = 3.0

	complexityStep         = 0.1
	maxComplexSubTasks     = 10
	maxComplexContributors = 5

	productiveHoursBoost = 1.1
	overloadExponent     = 1.2
)

// BasePriorityWeight returns the explicit priority when present,
// otherwise the fixed base weight of the tier.
func BasePriorityWeight(priority *int, tier domain.Tier) float64 {
	if priority != nil {
		return float64(*priority)
	}
	return tier.BaseWeight()
}

// UrgencyFactor measures deadline proximity relative to the task's own
// duration. It is 1 when work has just started, approaches
// 1 + 0.5*durationFactor at the deadline, and grows by one per elapsed
// duration once overdue, capped at 3. It never drops below 1: a task
// that has not started yet scores as if it had just started.
func UrgencyFactor(start, end, now time.Time) float64 {
	total := end.Sub(start)
	remaining := end.Sub(now)

	if remaining > 0 {
		if total <= 0 {
			total = day
		}
		elapsed := 1 - float64(remaining)/float64(total)
		if elapsed < 0 {
			// Not started yet.
			elapsed = 0
		}
		return 1 + elapsed*urgencySlope*durationFactor(total)
	}

	if total <= 0 {
		total = day
	}
	overdue := math.Abs(float64(remaining))
	return math.Min(maxOverdueUrgency, 1+overdue/float64(total))
}

// durationFactor dampens urgency growth for long tasks.
// Tasks shorter than ten days get a neutral factor of 1.
func durationFactor(total time.Duration) float64 {
	days := total.Hours() / 24
	if days <= 0 {
		return 1
	}
	return math.Max(1, math.Log10(days))
}

// ComplexityFactor grows by 0.1 per subtask (up to 10) and
// 0.1 per collaborator (up to 5).
func ComplexityFactor(subTasks, collaborators int) float64 {
	return 1 +
		complexityStep*float64(min(max(subTasks, 0), maxComplexSubTasks)) +
		complexityStep*float64(min(max(collaborators, 0), maxComplexContributors))
}

// WeightBreakdown explains how a dynamic weight was derived.
// Fields are ordered to minimize memory padding.
type WeightBreakdown struct {
	Weights    domain.WeightPreferences
	Base       float64 // Priority term
	Urgency    float64 // Urgency factor (not multiplied by base)
	Complexity float64 // Complexity factor (not multiplied by base)
	Blended    float64 // Weighted average before adjustments
	Weight     float64 // Final weight
	Productive bool    // Evaluated inside a productive-hour window
	Overloaded bool    // User is over declared capacity
}

// DynamicWeight returns the importance of task for user at now.
func (e *Engine) DynamicWeight(task *domain.Task, user *domain.User, now time.Time) float64 {
	return e.newWeigher(user, now).explain(task).Weight
}

// ExplainWeight returns the dynamic weight with its intermediate terms.
func (e *Engine) ExplainWeight(task *domain.Task, user *domain.User, now time.Time) WeightBreakdown {
	return e.newWeigher(user, now).explain(task)
}

// weigher caches the per-user, per-instant inputs of the weight model so
// that scoring a task list evaluates the workload only once.
type weigher struct {
	now        time.Time
	weights    domain.WeightPreferences
	productive bool
	overloaded bool
}

func (e *Engine) newWeigher(user *domain.User, now time.Time) *weigher {
	w := &weigher{
		now:     now,
		weights: e.weightsFor(user),
	}
	if user == nil || user.Preferences == nil {
		return w
	}
	for _, window := range user.Preferences.ProductiveHours {
		if window.Contains(now) {
			w.productive = true
			break
		}
	}
	if _, declared := e.capacityFor(user); declared {
		w.overloaded = e.CalculateWorkloadMetrics(user, now).IsOverloaded()
	}
	return w
}

func (w *weigher) explain(task *domain.Task) WeightBreakdown {
	base := BasePriorityWeight(task.Priority, task.Type)
	urgency := UrgencyFactor(task.Start, task.End, w.now)
	complexity := ComplexityFactor(len(task.SubTasks), len(task.Collaborators))

	blended := (base*w.weights.Priority +
		base*urgency*w.weights.Deadline +
		base*complexity*w.weights.Complexity) / w.weights.Sum()

	weight := blended
	if w.productive {
		weight *= productiveHoursBoost
	}
	// Widen the spread between heavy and light tasks under overload.
	if w.overloaded && weight > 0 {
		weight = math.Pow(weight, overloadExponent)
	}

	return WeightBreakdown{
		Weights:    w.weights,
		Base:       base,
		Urgency:    urgency,
		Complexity: complexity,
		Blended:    blended,
		Weight:     weight,
		Productive: w.productive,
		Overloaded: w.overloaded,
	}
}
