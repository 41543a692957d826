package engine

import "github.com/runoshun/taskpulse/internal/domain"

// award grants points to one tier.
type award struct {
	tier   domain.Tier
	points int
}

// rung awards points when a measured value is strictly above a threshold.
type rung struct {
	above float64
	award award
}

// ladder is an ordered threshold table. The first rung whose threshold is
// exceeded wins; otherwise the fallback applies, if any.
type ladder struct {
	otherwise *award
	rungs     []rung
}

// apply returns the award for value, or false when nothing applies.
func (l ladder) apply(value float64) (award, bool) {
	for _, r := range l.rungs {
		if value > r.above {
			return r.award, true
		}
	}
	if l.otherwise != nil {
		return *l.otherwise, true
	}
	return award{}, false
}

// Description length in characters.
var descriptionLadder = ladder{
	rungs: []rung{
		{300, award{domain.TierHigh, 3}},
		{150, award{domain.TierHigh, 2}},
		{80, award{domain.TierMid, 2}},
	},
	otherwise: &award{domain.TierLow, 1},
}

// Subtask count.
var subTaskLadder = ladder{
	rungs: []rung{
		{5, award{domain.TierHigh, 4}},
		{3, award{domain.TierHigh, 3}},
		{0, award{domain.TierMid, 2}},
	},
	otherwise: &award{domain.TierLow, 1},
}

// Duration in hours. Only applied when both timestamps are set.
var durationLadder = ladder{
	rungs: []rung{
		{24, award{domain.TierHigh, 3}},
		{8, award{domain.TierHigh, 2}},
		{2, award{domain.TierMid, 2}},
	},
	otherwise: &award{domain.TierLow, 2},
}

// Collaborator count.
var collaboratorLadder = ladder{
	rungs: []rung{
		{2, award{domain.TierHigh, 2}},
		{0, award{domain.TierMid, 1}},
	},
}

// Blocking task count.
var blockerLadder = ladder{
	rungs: []rung{
		{0, award{domain.TierMid, 1}},
	},
}

// Estimated minutes. Only applied when an estimate is set.
var estimateLadder = ladder{
	rungs: []rung{
		{240, award{domain.TierHigh, 2}},
		{60, award{domain.TierMid, 2}},
	},
	otherwise: &award{domain.TierLow, 1},
}

// keywords are matched case-insensitively as substrings of name and
// description. Every match is worth one point to its tier.
var keywords = []struct {
	tier  domain.Tier
	words []string
}{
	{domain.TierHigh, []string{"urgent", "critical", "important", "asap", "emergency", "deadline", "crucial", "blocker"}},
	{domain.TierMid, []string{"review", "update", "meeting", "prepare", "plan", "analyze", "discuss", "implement"}},
	{domain.TierLow, []string{"check", "read", "email", "call", "organize", "routine", "simple", "quick"}},
}

// tierMultipliers weight raw scores when deriving the 1-10 priority.
var tierMultipliers = map[domain.Tier]int{
	domain.TierHigh: 3,
	domain.TierMid:  2,
	domain.TierLow:  1,
}
