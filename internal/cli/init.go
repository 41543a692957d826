package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskpulse/internal/app"
	"github.com/runoshun/taskpulse/internal/usecase"
)

// newInitCommand creates the init command.
func newInitCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the taskpulse data store",
		Long: `Initialize the taskpulse data directory.

This command creates the data directory and an empty user store
(users.json, or taskpulse.db when [store] backend = "sqlite").
Running it again leaves existing data untouched.

The data directory is $TASKPULSE_DATA_DIR, or $XDG_DATA_HOME/taskpulse.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.InitStoreUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.InitStoreInput{
				DataDir: c.Config.DataDir,
				Backend: c.Config.Backend,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Initialized taskpulse (%s store) in %s\n", out.Backend, out.DataDir)
			return nil
		},
	}
}
