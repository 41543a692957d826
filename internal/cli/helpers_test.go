package cli

import (
	"bytes"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskpulse/internal/app"
	"github.com/runoshun/taskpulse/internal/domain"
	"github.com/runoshun/taskpulse/internal/testutil"
)

var testNow = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

// newTestContainer creates an app.Container with mock dependencies.
func newTestContainer(repo *testutil.MockUserRepository) *app.Container {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return app.NewWithDeps(
		app.Config{DataDir: "/tmp/taskpulse-test", Backend: domain.StoreJSON},
		repo,
		&testutil.MockStoreInitializer{},
		&testutil.MockClock{NowTime: testNow},
		logger,
	)
}

// runCommand executes cmd with args and returns stdout.
func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// aliceWithTasks returns a user with one completed and one open MID task.
func aliceWithTasks() *domain.User {
	return &domain.User{
		ID:   "11111111-aaaa-bbbb-cccc-000000000000",
		Name: "alice",
		Tasks: []domain.Task{
			{
				ID:        "22222222-aaaa-bbbb-cccc-000000000000",
				Name:      "write report",
				Type:      domain.TierMid,
				Start:     testNow.Add(-24 * time.Hour),
				End:       testNow.Add(24 * time.Hour),
				Completed: true,
			},
			{
				ID:    "33333333-aaaa-bbbb-cccc-000000000000",
				Name:  "review notes",
				Type:  domain.TierMid,
				Start: testNow.Add(-24 * time.Hour),
				End:   testNow.Add(24 * time.Hour),
				SubTasks: []domain.SubTask{
					{ID: "44444444-aaaa-bbbb-cccc-000000000000", Name: "skim", Type: domain.TierLow},
				},
			},
		},
	}
}

func requireUser(t *testing.T, repo *testutil.MockUserRepository, id string) *domain.User {
	t.Helper()
	u, ok := repo.Users[id]
	require.True(t, ok, "user %s not stored", id)
	return u
}
