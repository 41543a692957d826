package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskpulse/internal/app"
	"github.com/runoshun/taskpulse/internal/domain"
	"github.com/runoshun/taskpulse/internal/usecase"
)

// newRTPCommand creates the rtp command.
func newRTPCommand(c *app.Container) *cobra.Command {
	var opts struct {
		User string
		Tier string
		From string
		To   string
		JSON bool
	}

	cmd := &cobra.Command{
		Use:   "rtp",
		Short: "Show a user's real-time productivity",
		Long: `Show a user's real-time productivity (RTP).

RTP is the weighted share of completed work: each task contributes its
dynamic weight times its completed fraction. Subtasks split a task's
share by their base weights.

--from/--to keep only tasks starting in [from, to). Tasks outside
--tier still count toward the total and blocked counts.`,
		Example: `  taskpulse rtp --user alice
  taskpulse rtp --user alice --tier HIGH --from 2026-03-01 --to 2026-04-01
  taskpulse rtp --user alice --as-of 2026-03-10T18:00:00Z --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := domain.ParseTierFilter(opts.Tier)
			if err != nil {
				return err
			}
			from, err := parseOptionalTime(opts.From)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			to, err := parseOptionalTime(opts.To)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}

			out, err := c.CalculateRTPUseCase().Execute(cmd.Context(), usecase.CalculateRTPInput{
				User:   opts.User,
				Filter: filter,
				From:   from,
				To:     to,
			})
			if err != nil {
				return err
			}

			if opts.JSON {
				return writeJSON(cmd.OutOrStdout(), rtpJSON{
					At:         out.At,
					UserID:     out.User.ID,
					User:       out.User.Name,
					Filter:     out.Filter,
					Percentage: out.Result.Percentage,
					Score:      out.Result.Score,
					Metrics:    out.Result.Metrics,
				})
			}
			printRTP(cmd.OutOrStdout(), out)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.User, "user", "u", "", "User ID or name (required)")
	f.StringVar(&opts.Tier, "tier", "ALL", "Tier filter: ALL, LOW, MID or HIGH")
	f.StringVar(&opts.From, "from", "", "Only tasks starting at or after this time")
	f.StringVar(&opts.To, "to", "", "Only tasks starting before this time")
	f.BoolVar(&opts.JSON, "json", false, "Output in JSON format")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

// rtpJSON is the --json shape of the rtp command.
type rtpJSON struct {
	At         time.Time         `json:"at"`
	Metrics    domain.RTPMetrics `json:"metrics"`
	UserID     string            `json:"userId"`
	User       string            `json:"user"`
	Filter     domain.TierFilter `json:"filter"`
	Percentage float64           `json:"percentage"`
	Score      int               `json:"score"`
}

func printRTP(w io.Writer, out *usecase.CalculateRTPOutput) {
	r := out.Result
	m := r.Metrics

	_, _ = fmt.Fprintf(w, "%s %s\n", headerStyle.Render("RTP for "+out.User.Name), mutedStyle.Render("at "+out.At.Format(timeDisplayFormat)))
	if out.Filter != domain.TierFilterAll {
		_, _ = fmt.Fprintf(w, "Tier:       %s\n", out.Filter)
	}
	if out.Range != nil {
		_, _ = fmt.Fprintf(w, "Range:      %s .. %s\n", out.Range.Start.Format(timeDisplayFormat), out.Range.End.Format(timeDisplayFormat))
	}
	_, _ = fmt.Fprintf(w, "Progress:   %s %5.1f%%\n", rtpBar(r.Percentage), r.Percentage)
	_, _ = fmt.Fprintf(w, "Score:      %d\n", r.Score)
	_, _ = fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintf(tw, "Completed\t%d / %d\t(%.1f%%)\n", m.CompletedTasks, m.TotalTasks, m.CompletionRate)
	_, _ = fmt.Fprintf(tw, "Blocked\t%d\t(%.1f%%)\n", m.BlockedTasks, m.BlockedTasksPercentage)
	_, _ = fmt.Fprintf(tw, "Avg weight\t%.2f\t\n", m.AverageTaskWeight)
	if m.EstimationAccuracy != nil {
		_, _ = fmt.Fprintf(tw, "Estimation\t%.1f%%\t\n", *m.EstimationAccuracy)
	} else {
		_, _ = fmt.Fprintf(tw, "Estimation\t%s\t\n", mutedStyle.Render("n/a"))
	}
	_ = tw.Flush()
}

// newWorkloadCommand creates the workload command.
func newWorkloadCommand(c *app.Container) *cobra.Command {
	var (
		userRef string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "workload",
		Short: "Show a user's near-term workload",
		Long: `Show a user's near-term workload against capacity.

Current load counts open tasks due by the end of tomorrow, overdue ones
included. Upcoming deadlines counts open tasks due after that and within
three days. The overload factor is current load divided by capacity.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowWorkloadUseCase().Execute(cmd.Context(), usecase.ShowWorkloadInput{User: userRef})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), out.Metrics)
			}

			m := out.Metrics
			w := cmd.OutOrStdout()
			capacity := fmt.Sprintf("%d/day", m.DailyCapacity)
			if !out.Declared {
				capacity += mutedStyle.Render(" (default)")
			}
			_, _ = fmt.Fprintf(w, "%s %s\n", headerStyle.Render("Workload for "+out.User.Name), mutedStyle.Render("at "+out.At.Format(timeDisplayFormat)))
			tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
			_, _ = fmt.Fprintf(tw, "Current load\t%d\n", m.CurrentLoad)
			_, _ = fmt.Fprintf(tw, "Capacity\t%s\n", capacity)
			_, _ = fmt.Fprintf(tw, "Overload\t%.2f %s\n", m.OverloadFactor, overloadLabel(m))
			_, _ = fmt.Fprintf(tw, "Upcoming\t%d\n", m.UpcomingDeadlines)
			_, _ = fmt.Fprintf(tw, "Blocked\t%d\n", m.BlockedTasks)
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&userRef, "user", "u", "", "User ID or name (required)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

// newRankCommand creates the rank command.
func newRankCommand(c *app.Container) *cobra.Command {
	var (
		userRef string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "List open tasks by dynamic weight",
		Long: `List a user's open tasks, heaviest first.

The dynamic weight blends the priority, deadline urgency and complexity
terms by the user's weight preferences, with a boost inside productive
hours and a wider spread when the user is overloaded.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.RankTasksUseCase().Execute(cmd.Context(), usecase.RankTasksInput{
				User:  userRef,
				Limit: limit,
			})
			if err != nil {
				return err
			}
			if len(out.Tasks) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No open tasks.")
				return nil
			}
			printRanking(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&userRef, "user", "u", "", "User ID or name (required)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most N tasks (0 = all)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func printRanking(w io.Writer, out *usecase.RankTasksOutput) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintln(tw, "#\tID\tTYPE\tWEIGHT\tURGENCY\tDUE\tNAME")
	for i, r := range out.Tasks {
		due := r.Task.End.Format(timeDisplayFormat)
		if !r.Task.End.After(out.At) {
			due = errStyle.Render(due)
		}
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\t%.2f\t%s\t%s\n",
			i+1, shortID(r.Task.ID), tierBadge(r.Task.Type), r.Breakdown.Weight, r.Breakdown.Urgency, due, r.Task.Name)
	}
	_ = tw.Flush()
}

// newSnapshotCommand creates the snapshot command.
func newSnapshotCommand(c *app.Container) *cobra.Command {
	var userRef string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Record today's RTP in the user's history",
		Long: `Record today's RTP in the user's productivity history.

One record is kept per calendar day; recording again replaces it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.RecordSnapshotUseCase().Execute(cmd.Context(), usecase.RecordSnapshotInput{User: userRef})
			if err != nil {
				return err
			}

			rec := out.Record
			verb := "Recorded"
			if out.Replaced {
				verb = "Updated"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s for %s: %.1f%% (score %d, %d/%d completed)\n",
				verb, rec.Date.Format(time.DateOnly), out.User.Name, rec.Percentage, rec.Score, rec.Completed, rec.Total)
			return nil
		},
	}

	cmd.Flags().StringVarP(&userRef, "user", "u", "", "User ID or name (required)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
