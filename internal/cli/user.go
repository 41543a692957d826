package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskpulse/internal/app"
	"github.com/runoshun/taskpulse/internal/domain"
	"github.com/runoshun/taskpulse/internal/usecase"
)

// newUserCommand creates the user command.
func newUserCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	cmd.AddCommand(newUserAddCommand(c))
	cmd.AddCommand(newUserListCommand(c))

	return cmd
}

// newUserAddCommand creates the user add subcommand.
func newUserAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Name     string
		Weights  string
		Hours    []string
		Tiers    []string
		Capacity int
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a user",
		Long: `Register a user with optional scoring preferences.

Preferences:
  --capacity     tasks per day the user can handle (default from config)
  --hours        productive hour windows such as 9-12 or 22-2 (repeatable)
  --weights      deadline,priority,complexity importance, e.g. 0.5,0.3,0.2
  --tier         preferred tiers (informational, repeatable)`,
		Example: `  taskpulse user add --name alice --capacity 4 --hours 9-12 --hours 14-17
  taskpulse user add --name bob --weights 1,1,0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := usecase.AddUserInput{
				Name:     opts.Name,
				Capacity: opts.Capacity,
			}
			for _, h := range opts.Hours {
				w, err := parseHourWindow(h)
				if err != nil {
					return err
				}
				in.ProductiveHours = append(in.ProductiveHours, w)
			}
			if opts.Weights != "" {
				w, err := parseWeights(opts.Weights)
				if err != nil {
					return err
				}
				in.Weights = w
			}
			tiers, err := parseTiers(opts.Tiers)
			if err != nil {
				return err
			}
			if len(tiers) > 0 {
				in.PreferredTiers = tiers
			}

			out, err := c.AddUserUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (%s)\n", out.User.Name, out.User.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Name, "name", "n", "", "User name (required)")
	cmd.Flags().IntVar(&opts.Capacity, "capacity", 0, "Daily task capacity")
	cmd.Flags().StringArrayVar(&opts.Hours, "hours", nil, "Productive hour window START-END (repeatable)")
	cmd.Flags().StringVar(&opts.Weights, "weights", "", "Weights as deadline,priority,complexity")
	cmd.Flags().StringArrayVar(&opts.Tiers, "tier", nil, "Preferred tier (repeatable)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

// newUserListCommand creates the user list subcommand.
func newUserListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List users",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListUsersUseCase().Execute(cmd.Context(), usecase.ListUsersInput{})
			if err != nil {
				return err
			}
			if len(out.Users) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No users. Add one with 'taskpulse user add --name NAME'.")
				return nil
			}
			printUserList(cmd.OutOrStdout(), out.Users)
			return nil
		},
	}
}

func printUserList(w io.Writer, users []usecase.UserSummary) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tNAME\tOPEN\tDONE\tCAPACITY")
	for _, s := range users {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n",
			shortID(s.User.ID), s.User.Name, s.Open, s.Completed, capacityLabel(s.User))
	}
	_ = tw.Flush()
}

func capacityLabel(u *domain.User) string {
	if u.Preferences == nil || u.Preferences.WorkloadCapacity <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d/day", u.Preferences.WorkloadCapacity)
}
