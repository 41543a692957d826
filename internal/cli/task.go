package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskpulse/internal/app"
	"github.com/runoshun/taskpulse/internal/domain"
	"github.com/runoshun/taskpulse/internal/usecase"
)

// newTaskCommand creates the task command.
func newTaskCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Add tasks and record progress",
	}

	cmd.AddCommand(newTaskAddCommand(c))
	cmd.AddCommand(newTaskCompleteCommand(c, "done", true))
	cmd.AddCommand(newTaskCompleteCommand(c, "undo", false))
	cmd.AddCommand(newTaskTimeCommand(c))
	cmd.AddCommand(newTaskRateCommand(c))
	cmd.AddCommand(newTaskSubtaskCommand(c))

	return cmd
}

// newTaskAddCommand creates the task add subcommand.
func newTaskAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		User          string
		Name          string
		Description   string
		Start         string
		End           string
		Type          string
		Recurrence    string
		SubTasks      []string
		Collaborators []string
		BlockedBy     []string
		Tags          []string
		Priority      int
		Estimate      int
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to a user",
		Long: `Add a task to a user.

The task starts now and is due one day later unless --start/--end are
given. With --type AUTO (the default) the tier and, unless --priority
is set, the priority are assigned by the classifier.`,
		Example: `  taskpulse task add --user alice --name "Prepare release notes" --end 2026-03-12
  taskpulse task add --user alice --name "Quick email" --type LOW --estimate 10
  taskpulse task add --user bob --name "Migrate DB" --subtask "dump" --subtask "restore"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := parseOptionalTime(opts.Start)
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			end, err := parseOptionalTime(opts.End)
			if err != nil {
				return fmt.Errorf("--end: %w", err)
			}

			flags := cmd.Flags()
			out, err := c.AddTaskUseCase().Execute(cmd.Context(), usecase.AddTaskInput{
				User:             opts.User,
				Name:             opts.Name,
				Description:      opts.Description,
				Start:            start,
				End:              end,
				Type:             opts.Type,
				Priority:         optionalInt(flags.Changed("priority"), opts.Priority),
				EstimatedMinutes: optionalInt(flags.Changed("estimate"), opts.Estimate),
				Recurrence:       opts.Recurrence,
				SubTasks:         opts.SubTasks,
				Collaborators:    opts.Collaborators,
				BlockedBy:        opts.BlockedBy,
				Tags:             opts.Tags,
			})
			if err != nil {
				return err
			}

			printAddedTask(cmd.OutOrStdout(), out)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.User, "user", "u", "", "User ID or name (required)")
	f.StringVarP(&opts.Name, "name", "n", "", "Task name (required)")
	f.StringVarP(&opts.Description, "desc", "d", "", "Task description")
	f.StringVar(&opts.Start, "start", "", "Start time (default now)")
	f.StringVar(&opts.End, "end", "", "Deadline (default one day after start)")
	f.StringVarP(&opts.Type, "type", "t", "AUTO", "Tier: AUTO, LOW, MID or HIGH")
	f.IntVarP(&opts.Priority, "priority", "p", 0, "Priority 1-10")
	f.IntVar(&opts.Estimate, "estimate", 0, "Estimated minutes")
	f.StringVar(&opts.Recurrence, "recurrence", "", "Recurrence note (informational)")
	f.StringArrayVar(&opts.SubTasks, "subtask", nil, "Subtask name (repeatable)")
	f.StringArrayVar(&opts.Collaborators, "collaborator", nil, "Collaborator (repeatable)")
	f.StringArrayVar(&opts.BlockedBy, "blocked-by", nil, "ID of a prerequisite task (repeatable)")
	f.StringArrayVar(&opts.Tags, "tag", nil, "Tag (repeatable)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func printAddedTask(w io.Writer, out *usecase.AddTaskOutput) {
	t := out.Task
	priority := "-"
	if t.Priority != nil {
		priority = strconv.Itoa(*t.Priority)
	}
	how := ""
	if out.Classified {
		how = mutedStyle.Render(" (classified)")
	}
	_, _ = fmt.Fprintf(w, "Added task %s: %s\n", t.ID, t.Name)
	_, _ = fmt.Fprintf(w, "  Type: %s%s  Priority: %s\n", tierBadge(t.Type), how, priority)
	_, _ = fmt.Fprintf(w, "  Due: %s\n", t.End.Format(timeDisplayFormat))
	for _, st := range t.SubTasks {
		_, _ = fmt.Fprintf(w, "  - %s %s %s\n", shortID(st.ID), tierBadge(st.Type), st.Name)
	}
}

// timeDisplayFormat is used for timestamps in human-readable output.
const timeDisplayFormat = "2006-01-02 15:04"

// newTaskCompleteCommand creates the task done and task undo subcommands.
func newTaskCompleteCommand(c *app.Container, name string, completed bool) *cobra.Command {
	var userRef string

	short := "Mark a task as completed"
	if !completed {
		short = "Mark a task as not completed"
	}

	cmd := &cobra.Command{
		Use:   name + " TASK_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.UpdateTaskUseCase().Execute(cmd.Context(), usecase.UpdateTaskInput{
				User:      userRef,
				TaskID:    args[0],
				Completed: &completed,
			})
			if err != nil {
				return err
			}
			printUpdatedTask(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&userRef, "user", "u", "", "User ID or name (required)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

// newTaskTimeCommand creates the task time subcommand.
func newTaskTimeCommand(c *app.Container) *cobra.Command {
	var userRef string

	cmd := &cobra.Command{
		Use:   "time TASK_ID MINUTES",
		Short: "Record the actual time spent on a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid minutes %q: %w", args[1], domain.ErrInvalidMinutes)
			}
			out, err := c.UpdateTaskUseCase().Execute(cmd.Context(), usecase.UpdateTaskInput{
				User:          userRef,
				TaskID:        args[0],
				ActualMinutes: &minutes,
			})
			if err != nil {
				return err
			}
			printUpdatedTask(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&userRef, "user", "u", "", "User ID or name (required)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

// newTaskRateCommand creates the task rate subcommand.
func newTaskRateCommand(c *app.Container) *cobra.Command {
	var userRef string

	cmd := &cobra.Command{
		Use:   "rate TASK_ID RATING",
		Short: "Rate the quality of a task's result (1-5)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rating, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid rating %q: %w", args[1], domain.ErrInvalidRating)
			}
			out, err := c.UpdateTaskUseCase().Execute(cmd.Context(), usecase.UpdateTaskInput{
				User:          userRef,
				TaskID:        args[0],
				QualityRating: &rating,
			})
			if err != nil {
				return err
			}
			printUpdatedTask(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&userRef, "user", "u", "", "User ID or name (required)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

// newTaskSubtaskCommand creates the task subtask subcommand.
func newTaskSubtaskCommand(c *app.Container) *cobra.Command {
	var (
		userRef string
		undo    bool
	)

	cmd := &cobra.Command{
		Use:   "subtask TASK_ID SUBTASK_ID",
		Short: "Mark a subtask as completed",
		Long: `Mark a subtask as completed, or as not completed with --undo.

A task with subtasks counts as completed only when the task itself and
every subtask are marked completed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			completed := !undo
			out, err := c.UpdateTaskUseCase().Execute(cmd.Context(), usecase.UpdateTaskInput{
				User:      userRef,
				TaskID:    args[0],
				SubTaskID: args[1],
				Completed: &completed,
			})
			if err != nil {
				return err
			}
			printUpdatedTask(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&userRef, "user", "u", "", "User ID or name (required)")
	cmd.Flags().BoolVar(&undo, "undo", false, "Mark the subtask as not completed")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func printUpdatedTask(w io.Writer, out *usecase.UpdateTaskOutput) {
	if out.SubTask != nil {
		_, _ = fmt.Fprintf(w, "Updated subtask %s of %s: %s\n", shortID(out.SubTask.ID), shortID(out.Task.ID), out.SubTask.Name)
	} else {
		_, _ = fmt.Fprintf(w, "Updated task %s: %s\n", shortID(out.Task.ID), out.Task.Name)
	}
	status := warnStyle.Render("open")
	if out.TaskCompleted {
		status = okStyle.Render("completed")
	}
	_, _ = fmt.Fprintf(w, "  Status: %s\n", status)
}
