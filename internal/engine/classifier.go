package engine

import (
	"math"
	"strings"

	"github.com/runoshun/taskpulse/internal/domain"
)

const (
	minPriority = 1
	maxPriority = 10

	// priorityScale maps the weighted average tier multiplier (1-3)
	// onto the priority range.
	priorityScale = 3
)

// ClassifyTask assigns a tier and a 1-10 priority to a partially filled
// task using rule-based heuristics. The result depends only on the task.
func ClassifyTask(task *domain.Task) domain.Classification {
	scores := ScoreTask(task)
	return domain.Classification{
		Type:     pickTier(scores),
		Priority: priorityFromScores(scores),
		Scores:   scores,
	}
}

// ScoreTask accumulates the heuristic points per tier.
func ScoreTask(task *domain.Task) domain.TierScores {
	var s domain.TierScores
	add := func(a award, ok bool) {
		if !ok {
			return
		}
		switch a.tier {
		case domain.TierHigh:
			s.High += a.points
		case domain.TierMid:
			s.Mid += a.points
		case domain.TierLow:
			s.Low += a.points
		case domain.TierAuto:
		}
	}

	add(descriptionLadder.apply(float64(len(task.Description))))
	add(subTaskLadder.apply(float64(len(task.SubTasks))))
	if !task.Start.IsZero() && !task.End.IsZero() {
		add(durationLadder.apply(task.Duration().Hours()))
	}
	for _, a := range keywordAwards(task.Name + " " + task.Description) {
		add(a, true)
	}
	add(collaboratorLadder.apply(float64(len(task.Collaborators))))
	add(blockerLadder.apply(float64(len(task.BlockedBy))))
	if task.EstimatedMinutes != nil {
		add(estimateLadder.apply(float64(*task.EstimatedMinutes)))
	}

	return s
}

// keywordAwards returns one award per keyword found in text.
func keywordAwards(text string) []award {
	text = strings.ToLower(text)
	var out []award
	for _, group := range keywords {
		for _, w := range group.words {
			if strings.Contains(text, w) {
				out = append(out, award{group.tier, 1})
			}
		}
	}
	return out
}

// pickTier selects HIGH only on a strict win, then MID on a strict win
// over LOW. LOW takes every tie.
func pickTier(s domain.TierScores) domain.Tier {
	switch {
	case s.High > s.Mid && s.High > s.Low:
		return domain.TierHigh
	case s.Mid > s.Low:
		return domain.TierMid
	default:
		return domain.TierLow
	}
}

func priorityFromScores(s domain.TierScores) int {
	weighted := s.High*tierMultipliers[domain.TierHigh] +
		s.Mid*tierMultipliers[domain.TierMid] +
		s.Low*tierMultipliers[domain.TierLow]
	total := s.Total()
	if total == 0 {
		total = 1
	}
	p := int(math.Round(float64(weighted) / float64(total) * priorityScale))
	return min(max(p, minPriority), maxPriority)
}
