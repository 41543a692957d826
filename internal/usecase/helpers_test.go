package usecase

import (
	"fmt"
	"time"

	"github.com/runoshun/taskpulse/internal/domain"
	"github.com/runoshun/taskpulse/internal/testutil"
)

var testNow = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

func newTestClock() *testutil.MockClock {
	return &testutil.MockClock{NowTime: testNow}
}

// sequentialIDs returns an ID generator yielding prefix-1, prefix-2, ...
func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// sampleTask returns a MID task running from a day ago until a day from now.
func sampleTask(id, name string) domain.Task {
	return domain.Task{
		ID:    id,
		Name:  name,
		Type:  domain.TierMid,
		Start: testNow.Add(-24 * time.Hour),
		End:   testNow.Add(24 * time.Hour),
	}
}

func sampleUser(tasks ...domain.Task) *domain.User {
	return &domain.User{ID: "u-1", Name: "Alice", Tasks: tasks}
}
