package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/taskpulse/internal/domain"
	"github.com/runoshun/taskpulse/internal/engine"
	"github.com/runoshun/taskpulse/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowWorkload_Execute(t *testing.T) {
	blocked := sampleTask("t2", "wait for review")
	blocked.BlockedBy = []string{"t1"}
	user := sampleUser(sampleTask("t1", "draft"), blocked)
	user.Preferences = &domain.UserPreferences{WorkloadCapacity: 1}
	repo := testutil.NewMockUserRepository(user)
	uc := NewShowWorkload(repo, engine.Default(), newTestClock())

	out, err := uc.Execute(context.Background(), ShowWorkloadInput{User: "Alice"})

	require.NoError(t, err)
	assert.True(t, out.Declared)
	assert.Equal(t, 2, out.Metrics.CurrentLoad)
	assert.Equal(t, 1, out.Metrics.DailyCapacity)
	assert.Equal(t, 1, out.Metrics.BlockedTasks)
	assert.InDelta(t, 2.0, out.Metrics.OverloadFactor, 1e-9)
	assert.True(t, out.Metrics.IsOverloaded())
}

func TestShowWorkload_DefaultCapacity(t *testing.T) {
	repo := testutil.NewMockUserRepository(sampleUser(sampleTask("t1", "draft")))
	eng := engine.New(engine.Defaults{Weights: domain.DefaultWeightPreferences(), DailyCapacity: 4})
	uc := NewShowWorkload(repo, eng, newTestClock())

	out, err := uc.Execute(context.Background(), ShowWorkloadInput{User: "u-1"})

	require.NoError(t, err)
	assert.False(t, out.Declared)
	assert.Equal(t, 4, out.Metrics.DailyCapacity)
	assert.InDelta(t, 0.25, out.Metrics.OverloadFactor, 1e-9)
}

func TestShowWorkload_UserNotFound(t *testing.T) {
	uc := NewShowWorkload(testutil.NewMockUserRepository(), engine.Default(), newTestClock())

	_, err := uc.Execute(context.Background(), ShowWorkloadInput{User: "ghost"})

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
