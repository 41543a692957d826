package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/runoshun/taskpulse/internal/domain"
	"github.com/runoshun/taskpulse/internal/engine"
	"github.com/runoshun/taskpulse/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSnapshot_Execute(t *testing.T) {
	done := sampleTask("t1", "a")
	done.Completed = true
	user := sampleUser(done, sampleTask("t2", "b"))
	yesterday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	user.History = []domain.ProductivityRecord{{Date: yesterday, Percentage: 10}}
	repo := testutil.NewMockUserRepository(user)
	logger := &testutil.MockLogger{}
	uc := NewRecordSnapshot(repo, engine.Default(), newTestClock(), logger)

	out, err := uc.Execute(context.Background(), RecordSnapshotInput{User: "u-1"})

	require.NoError(t, err)
	assert.False(t, out.Replaced)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), out.Record.Date)
	assert.InDelta(t, 50, out.Record.Percentage, 1e-9)
	assert.Equal(t, 1, out.Record.Completed)
	assert.Equal(t, 2, out.Record.Total)

	history := repo.Users["u-1"].History
	require.Len(t, history, 2)
	assert.Equal(t, yesterday, history[0].Date)
	assert.Equal(t, out.Record, history[1])
	require.Len(t, logger.Entries, 1)
	assert.Contains(t, logger.Entries[0], "recorded 2026-03-10: 50.0% (1/2)")
}

func TestRecordSnapshot_ReplacesSameDay(t *testing.T) {
	done := sampleTask("t1", "a")
	done.Completed = true
	user := sampleUser(done)
	user.History = []domain.ProductivityRecord{{Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), Percentage: 5}}
	repo := testutil.NewMockUserRepository(user)
	uc := NewRecordSnapshot(repo, engine.Default(), newTestClock(), nil)

	out, err := uc.Execute(context.Background(), RecordSnapshotInput{User: "u-1"})

	require.NoError(t, err)
	assert.True(t, out.Replaced)
	require.Len(t, repo.Users["u-1"].History, 1)
	assert.InDelta(t, 100, repo.Users["u-1"].History[0].Percentage, 1e-9)
}

func TestRecordSnapshot_NoTasks(t *testing.T) {
	repo := testutil.NewMockUserRepository(sampleUser())
	uc := NewRecordSnapshot(repo, engine.Default(), newTestClock(), nil)

	out, err := uc.Execute(context.Background(), RecordSnapshotInput{User: "u-1"})

	require.NoError(t, err)
	assert.Zero(t, out.Record.Percentage)
	assert.Zero(t, out.Record.Total)
}
