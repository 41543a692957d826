package sqlitestore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/runoshun/taskpulse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "taskpulse.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_SaveAndGet(t *testing.T) {
	s := newTestStore(t)
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	user := &domain.User{
		ID:          "u1",
		Name:        "Alice",
		Preferences: &domain.UserPreferences{WorkloadCapacity: 3},
		Tasks: []domain.Task{
			{ID: "t2", Name: "Second", Type: domain.TierLow, Start: start, End: start.Add(time.Hour)},
			{ID: "t1", Name: "First", Type: domain.TierHigh, Priority: domain.IntPtr(9), Completed: true},
		},
		History: []domain.ProductivityRecord{{Date: start, Score: 4, Percentage: 50, Completed: 1, Total: 2}},
	}

	require.NoError(t, s.Save(user))

	got, err := s.Get("u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Alice", got.Name)
	require.NotNil(t, got.Preferences)
	assert.Equal(t, 3, got.Preferences.WorkloadCapacity)
	require.Len(t, got.Tasks, 2)
	assert.Equal(t, "t2", got.Tasks[0].ID, "task order is preserved")
	assert.Equal(t, 9, *got.Tasks[1].Priority)
	assert.True(t, got.Tasks[1].Completed)
	require.Len(t, got.History, 1)
	assert.Equal(t, 4, got.History[0].Score)
}

func TestStore_SaveReplacesTasks(t *testing.T) {
	s := newTestStore(t)
	user := &domain.User{ID: "u1", Name: "Alice", Tasks: []domain.Task{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}}
	require.NoError(t, s.Save(user))

	user.Tasks = user.Tasks[:1]
	user.Name = "Alicia"
	require.NoError(t, s.Save(user))

	got, err := s.Get("u1")
	require.NoError(t, err)
	assert.Equal(t, "Alicia", got.Name)
	assert.Len(t, got.Tasks, 1)
	assert.Nil(t, got.Preferences)
}

func TestStore_GetMissing(t *testing.T) {
	s := newTestStore(t)

	got, err := s.Get("missing")

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_ListAndDelete(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(&domain.User{ID: "1", Name: "Zoe", Tasks: []domain.Task{{ID: "t", Name: "T"}}}))
	require.NoError(t, s.Save(&domain.User{ID: "2", Name: "Bob"}))

	users, err := s.List()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Bob", users[0].Name)
	assert.Empty(t, users[0].Tasks)

	require.NoError(t, s.Delete("1"))
	users, err = s.List()
	require.NoError(t, err)
	require.Len(t, users, 1)

	var orphaned int
	require.NoError(t, s.db.Get(&orphaned, "SELECT COUNT(*) FROM tasks WHERE user_id = '1'"))
	assert.Equal(t, 0, orphaned)
}

func TestStore_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskpulse.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(&domain.User{ID: "u", Name: "Kept"}))
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = s2.Close() }()

	got, err := s2.Get("u")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Kept", got.Name)
}
