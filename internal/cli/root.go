// Package cli provides the command-line interface for taskpulse.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskpulse/internal/app"
)

// Command group IDs.
const (
	groupSetup  = "setup"
	groupTask   = "task"
	groupReport = "report"
)

// NewRootCommand creates the root command for taskpulse.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var asOf string

	root := &cobra.Command{
		Use:   "taskpulse",
		Short: "Task productivity scoring CLI",
		Long: `taskpulse scores how productive a user is on their tasks.

Tasks are weighted by priority, deadline urgency and complexity.
The real-time productivity (RTP) score is the weighted share of
completed work, alongside workload and estimation metrics.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil || asOf == "" {
				return nil
			}
			t, err := parseTime(asOf)
			if err != nil {
				return fmt.Errorf("--as-of: %w", err)
			}
			c.SetAsOf(t)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&asOf, "as-of", "", "Evaluate at this instant instead of now (RFC3339 or YYYY-MM-DD)")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupReport, Title: "Reports:"},
	)

	// Setup commands
	initCmd := newInitCommand(c)
	initCmd.GroupID = groupSetup

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	userCmd := newUserCommand(c)
	userCmd.GroupID = groupSetup

	importCmd := newImportCommand(c)
	importCmd.GroupID = groupSetup

	// Task management commands
	taskCmd := newTaskCommand(c)
	taskCmd.GroupID = groupTask

	classifyCmd := newClassifyCommand(c)
	classifyCmd.GroupID = groupTask

	// Report commands
	rtpCmd := newRTPCommand(c)
	rtpCmd.GroupID = groupReport

	workloadCmd := newWorkloadCommand(c)
	workloadCmd.GroupID = groupReport

	rankCmd := newRankCommand(c)
	rankCmd.GroupID = groupReport

	snapshotCmd := newSnapshotCommand(c)
	snapshotCmd.GroupID = groupReport

	root.AddCommand(
		initCmd,
		configCmd,
		userCmd,
		importCmd,
		taskCmd,
		classifyCmd,
		rtpCmd,
		workloadCmd,
		rankCmd,
		snapshotCmd,
	)

	return root
}
