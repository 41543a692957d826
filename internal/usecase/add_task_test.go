package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/runoshun/taskpulse/internal/domain"
	"github.com/runoshun/taskpulse/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAddTask(repo domain.UserRepository, logger domain.Logger) *AddTask {
	uc := NewAddTask(repo, newTestClock(), logger)
	uc.newID = sequentialIDs("id")
	return uc
}

func TestAddTask_AutoClassification(t *testing.T) {
	repo := testutil.NewMockUserRepository(sampleUser())
	logger := &testutil.MockLogger{}
	uc := newAddTask(repo, logger)

	out, err := uc.Execute(context.Background(), AddTaskInput{
		User: "alice",
		Name: "urgent critical launch",
	})

	require.NoError(t, err)
	assert.True(t, out.Classified)
	assert.Equal(t, "id-1", out.Task.ID)
	// The default span is not scored: two HIGH keywords tie with LOW.
	assert.Equal(t, domain.TierLow, out.Task.Type)
	require.NotNil(t, out.Task.Priority)
	assert.Equal(t, 6, *out.Task.Priority)
	assert.Equal(t, testNow, out.Task.Start)
	assert.Equal(t, testNow.Add(24*time.Hour), out.Task.End)

	stored := repo.Users["u-1"]
	require.Len(t, stored.Tasks, 1)
	assert.Equal(t, out.Task.ID, stored.Tasks[0].ID)
	require.Len(t, logger.Entries, 1)
	assert.Contains(t, logger.Entries[0], "INFO u-1 task added id-1")
}

func TestAddTask_ClassifiesGivenSpan(t *testing.T) {
	repo := testutil.NewMockUserRepository(sampleUser())
	uc := newAddTask(repo, nil)
	start := testNow
	end := testNow.Add(30 * time.Hour)

	out, err := uc.Execute(context.Background(), AddTaskInput{
		User:     "u-1",
		Name:     "urgent critical launch",
		Start:    &start,
		End:      &end,
		SubTasks: []string{"read docs"},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.TierHigh, out.Task.Type)
	assert.Equal(t, 8, *out.Task.Priority)
	assert.Equal(t, end, out.Task.End)
	assert.Equal(t, start, out.Task.SubTasks[0].Start)
	assert.Equal(t, end, out.Task.SubTasks[0].End)
}

func TestAddTask_ExplicitTypeAndPriority(t *testing.T) {
	repo := testutil.NewMockUserRepository(sampleUser())
	uc := newAddTask(repo, nil)

	out, err := uc.Execute(context.Background(), AddTaskInput{
		User:     "u-1",
		Name:     "urgent critical launch",
		Type:     "low",
		Priority: domain.IntPtr(2),
	})

	require.NoError(t, err)
	assert.False(t, out.Classified)
	assert.Equal(t, domain.TierLow, out.Task.Type)
	assert.Equal(t, 2, *out.Task.Priority)
}

func TestAddTask_KeepsExplicitPriorityWhenClassifying(t *testing.T) {
	repo := testutil.NewMockUserRepository(sampleUser())
	uc := newAddTask(repo, nil)

	out, err := uc.Execute(context.Background(), AddTaskInput{
		User:     "u-1",
		Name:     "urgent critical asap launch",
		Type:     "AUTO",
		Priority: domain.IntPtr(9),
	})

	require.NoError(t, err)
	assert.True(t, out.Classified)
	assert.Equal(t, domain.TierHigh, out.Task.Type)
	assert.Equal(t, 9, *out.Task.Priority)
}

func TestAddTask_SubTasksAndBlockers(t *testing.T) {
	repo := testutil.NewMockUserRepository(sampleUser(sampleTask("abc-123", "design")))
	uc := newAddTask(repo, nil)

	out, err := uc.Execute(context.Background(), AddTaskInput{
		User:      "u-1",
		Name:      "build",
		Type:      "MID",
		SubTasks:  []string{"read docs", "write code"},
		BlockedBy: []string{"abc"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"abc-123"}, out.Task.BlockedBy)
	require.Len(t, out.Task.SubTasks, 2)
	assert.Equal(t, "id-1", out.Task.ID)
	assert.Equal(t, "id-2", out.Task.SubTasks[0].ID)
	assert.Equal(t, "id-3", out.Task.SubTasks[1].ID)
	assert.Equal(t, domain.TierLow, out.Task.SubTasks[0].Type)
	assert.Equal(t, out.Task.End, out.Task.SubTasks[0].End)
}

func TestAddTask_Validation(t *testing.T) {
	tests := []struct {
		wantErr error
		in      AddTaskInput
		name    string
	}{
		{name: "empty name", in: AddTaskInput{User: "u-1", Name: " "}, wantErr: domain.ErrEmptyName},
		{name: "priority too high", in: AddTaskInput{User: "u-1", Name: "x", Priority: domain.IntPtr(11)}, wantErr: domain.ErrInvalidPriority},
		{name: "priority zero", in: AddTaskInput{User: "u-1", Name: "x", Priority: domain.IntPtr(0)}, wantErr: domain.ErrInvalidPriority},
		{name: "negative estimate", in: AddTaskInput{User: "u-1", Name: "x", EstimatedMinutes: domain.IntPtr(-5)}, wantErr: domain.ErrInvalidMinutes},
		{name: "bad tier", in: AddTaskInput{User: "u-1", Name: "x", Type: "EPIC"}, wantErr: domain.ErrInvalidTier},
		{name: "unknown blocker", in: AddTaskInput{User: "u-1", Name: "x", BlockedBy: []string{"nope"}}, wantErr: domain.ErrTaskNotFound},
		{name: "unknown user", in: AddTaskInput{User: "bob", Name: "x"}, wantErr: domain.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := testutil.NewMockUserRepository(sampleUser())
			uc := newAddTask(repo, nil)

			_, err := uc.Execute(context.Background(), tt.in)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, repo.SaveCalls)
		})
	}
}

func TestAddTask_SaveError(t *testing.T) {
	repo := testutil.NewMockUserRepository(sampleUser())
	repo.SaveErr = errors.New("disk full")
	uc := newAddTask(repo, nil)

	_, err := uc.Execute(context.Background(), AddTaskInput{User: "u-1", Name: "x"})

	assert.ErrorContains(t, err, "save user")
}

func TestAddTask_GeneratesUUIDs(t *testing.T) {
	repo := testutil.NewMockUserRepository(sampleUser())
	uc := NewAddTask(repo, newTestClock(), nil)

	out, err := uc.Execute(context.Background(), AddTaskInput{User: "u-1", Name: "x", SubTasks: []string{"y"}})

	require.NoError(t, err)
	_, err = uuid.Parse(out.Task.ID)
	assert.NoError(t, err)
	_, err = uuid.Parse(out.Task.SubTasks[0].ID)
	assert.NoError(t, err)
}
