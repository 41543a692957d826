package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskpulse/internal/app"
	"github.com/runoshun/taskpulse/internal/usecase"
)

// newClassifyCommand creates the classify command.
func newClassifyCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Name          string
		Description   string
		Start         string
		End           string
		Estimate      int
		SubTasks      int
		Collaborators int
		BlockedBy     int
	}

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Suggest a tier and priority for a task (dry run)",
		Long: `Suggest a tier and priority for a task description without storing it.

Points are awarded per tier for description length, subtask count,
duration, keywords, collaborators, blockers and the time estimate.
HIGH needs a strict win; LOW wins ties.`,
		Example: `  taskpulse classify --name "urgent: fix login" --estimate 300`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := parseOptionalTime(opts.Start)
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			end, err := parseOptionalTime(opts.End)
			if err != nil {
				return fmt.Errorf("--end: %w", err)
			}

			out, err := c.ClassifyTaskUseCase().Execute(cmd.Context(), usecase.ClassifyTaskInput{
				Name:             opts.Name,
				Description:      opts.Description,
				Start:            start,
				End:              end,
				EstimatedMinutes: optionalInt(cmd.Flags().Changed("estimate"), opts.Estimate),
				SubTasks:         opts.SubTasks,
				Collaborators:    opts.Collaborators,
				BlockedBy:        opts.BlockedBy,
			})
			if err != nil {
				return err
			}

			cl := out.Classification
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Type:     %s\n", tierBadge(cl.Type))
			_, _ = fmt.Fprintf(w, "Priority: %d\n", cl.Priority)
			_, _ = fmt.Fprintf(w, "Scores:   %s\n", mutedStyle.Render(fmt.Sprintf("low=%d mid=%d high=%d", cl.Scores.Low, cl.Scores.Mid, cl.Scores.High)))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.Name, "name", "n", "", "Task name (required)")
	f.StringVarP(&opts.Description, "desc", "d", "", "Task description")
	f.StringVar(&opts.Start, "start", "", "Start time (duration counts only with --end)")
	f.StringVar(&opts.End, "end", "", "Deadline (duration counts only with --start)")
	f.IntVar(&opts.Estimate, "estimate", 0, "Estimated minutes")
	f.IntVar(&opts.SubTasks, "subtasks", 0, "Number of subtasks")
	f.IntVar(&opts.Collaborators, "collaborators", 0, "Number of collaborators")
	f.IntVar(&opts.BlockedBy, "blockers", 0, "Number of blocking tasks")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
