package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskpulse/internal/app"
	"github.com/runoshun/taskpulse/internal/infra/userfile"
	"github.com/runoshun/taskpulse/internal/usecase"
)

// newImportCommand creates the import command.
func newImportCommand(c *app.Container) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import users and tasks from YAML or JSON",
		Long: `Import users and their tasks from a YAML (.yaml, .yml) or JSON file.

The file holds a top-level "users" list. Missing IDs are generated,
and tasks without a type are classified automatically. A user whose ID
already exists is replaced.`,
		Example: `  taskpulse import team.yaml
  taskpulse import backup.json --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := userfile.Read(args[0])
			if err != nil {
				return err
			}

			out, err := c.ImportUsersUseCase().Execute(cmd.Context(), usecase.ImportUsersInput{
				Users:  users,
				DryRun: dryRun,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			verb := "Imported"
			if dryRun {
				verb = "Would import"
			}
			for _, u := range out.Users {
				note := ""
				if u.Replaced {
					note = " (replaced)"
				}
				_, _ = fmt.Fprintf(w, "%s %s (%s): %d tasks, %d classified%s\n",
					verb, u.Name, shortID(u.ID), u.Tasks, u.Classified, note)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate and classify without saving")

	return cmd
}
