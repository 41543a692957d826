package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/runoshun/taskpulse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyTask_Execute(t *testing.T) {
	end := testNow.Add(time.Hour)
	longEnd := testNow.Add(30 * time.Hour)

	tests := []struct {
		end          *time.Time
		name         string
		taskName     string
		wantTier     domain.Tier
		subTasks     int
		wantPriority int
	}{
		{name: "routine work", taskName: "quick call", end: &end, wantTier: domain.TierLow, wantPriority: 3},
		{name: "urgent over a day", taskName: "urgent critical launch", end: &longEnd, wantTier: domain.TierHigh, wantPriority: 7},
		{name: "many subtasks", taskName: "migration", end: &end, subTasks: 6, wantTier: domain.TierHigh, wantPriority: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewClassifyTask()
			start := testNow

			out, err := uc.Execute(context.Background(), ClassifyTaskInput{
				Name:     tt.taskName,
				Start:    &start,
				End:      tt.end,
				SubTasks: tt.subTasks,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.wantTier, out.Classification.Type)
			assert.Equal(t, tt.wantPriority, out.Classification.Priority)
		})
	}
}

func TestClassifyTask_EmptyName(t *testing.T) {
	uc := NewClassifyTask()

	_, err := uc.Execute(context.Background(), ClassifyTaskInput{Name: "  "})

	assert.ErrorIs(t, err, domain.ErrEmptyName)
}

func TestClassifyTask_SkipsDurationWithoutBothTimes(t *testing.T) {
	uc := NewClassifyTask()
	start := testNow

	tests := []struct {
		start *time.Time
		name  string
	}{
		{name: "no times"},
		{name: "start only", start: &start},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.Execute(context.Background(), ClassifyTaskInput{Name: "foo", Start: tt.start})

			require.NoError(t, err)
			assert.Equal(t, domain.TierScores{Low: 2}, out.Classification.Scores)
			assert.Equal(t, domain.TierLow, out.Classification.Type)
			assert.Equal(t, 3, out.Classification.Priority)
		})
	}
}
