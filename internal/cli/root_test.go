package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskpulse/internal/testutil"
)

func TestNewRootCommand_Help(t *testing.T) {
	root := NewRootCommand(nil, "test-version")

	out, err := runCommand(t, root, "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "Setup Commands:")
	assert.Contains(t, out, "Reports:")
	assert.Contains(t, out, "rtp")
}

func TestNewRootCommand_Version(t *testing.T) {
	root := NewRootCommand(nil, "1.2.3")

	out, err := runCommand(t, root, "--version")

	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3")
}

func TestNewRootCommand_AsOf(t *testing.T) {
	repo := testutil.NewMockUserRepository(aliceWithTasks())
	c := newTestContainer(repo)
	root := NewRootCommand(c, "test")

	out, err := runCommand(t, root, "rtp", "--user", "alice", "--as-of", "2026-03-12T08:30:00Z")

	require.NoError(t, err)
	assert.Contains(t, out, "at 2026-03-12 08:30")
	assert.Equal(t, time.Date(2026, 3, 12, 8, 30, 0, 0, time.UTC), c.Clock.Now())
}

func TestNewRootCommand_InvalidAsOf(t *testing.T) {
	c := newTestContainer(testutil.NewMockUserRepository())
	root := NewRootCommand(c, "test")

	_, err := runCommand(t, root, "rtp", "--user", "alice", "--as-of", "yesterday")

	assert.ErrorContains(t, err, "--as-of")
}
