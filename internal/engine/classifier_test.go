package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/runoshun/taskpulse/internal/domain"
	"github.com/stretchr/testify/assert"
)

func subTasks(n int) []domain.SubTask {
	out := make([]domain.SubTask, n)
	for i := range out {
		out[i] = domain.SubTask{Name: "step"}
	}
	return out
}

func TestClassifyTask_LongComplexTask(t *testing.T) {
	task := &domain.Task{
		Name:        "Project",
		Description: strings.Repeat("x", 400),
		SubTasks:    subTasks(6),
		Start:       testNow,
		End:         testNow.Add(30 * time.Hour),
	}

	got := ClassifyTask(task)

	assert.Equal(t, domain.TierScores{High: 10}, got.Scores)
	assert.Equal(t, domain.TierHigh, got.Type)
	assert.Equal(t, 9, got.Priority)
}

func TestClassifyTask_EmptyTask(t *testing.T) {
	got := ClassifyTask(&domain.Task{})

	assert.Equal(t, domain.TierScores{Low: 2}, got.Scores)
	assert.Equal(t, domain.TierLow, got.Type)
	assert.Equal(t, 3, got.Priority)
}

func TestClassifyTask_TieGoesToLow(t *testing.T) {
	got := ClassifyTask(&domain.Task{Name: "Urgent critical fix"})

	assert.Equal(t, domain.TierScores{High: 2, Low: 2}, got.Scores)
	assert.Equal(t, domain.TierLow, got.Type)
	assert.Equal(t, 6, got.Priority)
}

func TestClassifyTask_Mid(t *testing.T) {
	got := ClassifyTask(&domain.Task{
		Name:        "Task",
		Description: strings.Repeat("x", 100),
		SubTasks:    subTasks(2),
	})

	assert.Equal(t, domain.TierScores{Mid: 4}, got.Scores)
	assert.Equal(t, domain.TierMid, got.Type)
	assert.Equal(t, 6, got.Priority)
}

func TestScoreTask_Heuristics(t *testing.T) {
	tests := []struct {
		name string
		task domain.Task
		want domain.TierScores
	}{
		{
			name: "description over 150",
			task: domain.Task{Description: strings.Repeat("x", 151)},
			want: domain.TierScores{High: 2, Low: 1},
		},
		{
			name: "description of exactly 80",
			task: domain.Task{Description: strings.Repeat("x", 80)},
			want: domain.TierScores{Low: 2},
		},
		{
			name: "four subtasks",
			task: domain.Task{SubTasks: subTasks(4)},
			want: domain.TierScores{High: 3, Low: 1},
		},
		{
			name: "short duration",
			task: domain.Task{Start: testNow, End: testNow.Add(time.Hour)},
			want: domain.TierScores{Low: 4},
		},
		{
			name: "working day duration",
			task: domain.Task{Start: testNow, End: testNow.Add(9 * time.Hour)},
			want: domain.TierScores{High: 2, Low: 2},
		},
		{
			name: "duration ignored without start",
			task: domain.Task{End: testNow.Add(48 * time.Hour)},
			want: domain.TierScores{Low: 2},
		},
		{
			name: "keywords accumulate across lists",
			task: domain.Task{Name: "URGENT review", Description: "check the plan"},
			want: domain.TierScores{High: 1, Mid: 2, Low: 3},
		},
		{
			name: "many collaborators",
			task: domain.Task{Collaborators: []string{"a", "b", "c"}},
			want: domain.TierScores{High: 2, Low: 2},
		},
		{
			name: "one collaborator and a blocker",
			task: domain.Task{Collaborators: []string{"a"}, BlockedBy: []string{"t1"}},
			want: domain.TierScores{Mid: 2, Low: 2},
		},
		{
			name: "long estimate",
			task: domain.Task{EstimatedMinutes: domain.IntPtr(300)},
			want: domain.TierScores{High: 2, Low: 2},
		},
		{
			name: "medium estimate",
			task: domain.Task{EstimatedMinutes: domain.IntPtr(90)},
			want: domain.TierScores{Mid: 2, Low: 2},
		},
		{
			name: "short estimate",
			task: domain.Task{EstimatedMinutes: domain.IntPtr(15)},
			want: domain.TierScores{Low: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreTask(&tt.task))
		})
	}
}

func TestPickTier(t *testing.T) {
	tests := []struct {
		scores domain.TierScores
		want   domain.Tier
	}{
		{domain.TierScores{High: 3, Mid: 2, Low: 1}, domain.TierHigh},
		{domain.TierScores{High: 3, Mid: 3, Low: 1}, domain.TierMid},
		{domain.TierScores{High: 3, Mid: 3, Low: 3}, domain.TierLow},
		{domain.TierScores{High: 1, Mid: 2, Low: 2}, domain.TierLow},
		{domain.TierScores{}, domain.TierLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, pickTier(tt.scores), "%+v", tt.scores)
	}
}

func TestPriorityFromScores_Clamped(t *testing.T) {
	assert.Equal(t, 1, priorityFromScores(domain.TierScores{}))
	assert.Equal(t, 9, priorityFromScores(domain.TierScores{High: 50}))
	assert.Equal(t, 3, priorityFromScores(domain.TierScores{Low: 50}))
	// (3*1 + 2*1 + 1*1) / 3 * 3 = 6
	assert.Equal(t, 6, priorityFromScores(domain.TierScores{High: 1, Mid: 1, Low: 1}))
}

func TestClassifyTask_Deterministic(t *testing.T) {
	task := &domain.Task{
		Name:             "Prepare quarterly review",
		Description:      "Update the deck and email the team before the deadline",
		SubTasks:         subTasks(3),
		Collaborators:    []string{"ann", "bo"},
		EstimatedMinutes: domain.IntPtr(120),
		Start:            testNow,
		End:              testNow.Add(6 * time.Hour),
	}

	first := ClassifyTask(task)
	for range 5 {
		assert.Equal(t, first, ClassifyTask(task))
	}
}
