package engine

import "github.com/runoshun/taskpulse/internal/domain"

// Contribution is a task's share of the RTP sums.
type Contribution struct {
	CompletedWeight float64 // Completed fraction in [0, 1]
	TotalWeight     float64 // Always 1
	CompletedCount  int     // Completed subtasks, or 1/0 for a task without subtasks
}

// SubtaskContribution reduces a task's subtasks into a single completion
// fraction. Subtasks never change the task's share of the total.
func SubtaskContribution(task *domain.Task) Contribution {
	if !task.HasSubTasks() {
		if task.Completed {
			return Contribution{CompletedWeight: 1, TotalWeight: 1, CompletedCount: 1}
		}
		return Contribution{CompletedWeight: 0, TotalWeight: 1}
	}

	var done, all float64
	completed := 0
	for i := range task.SubTasks {
		st := &task.SubTasks[i]
		w := BasePriorityWeight(st.Priority, st.Type)
		all += w
		if st.Completed {
			done += w
			completed++
		}
	}

	fraction := float64(completed) / float64(len(task.SubTasks))
	if all > 0 {
		fraction = done / all
	}
	return Contribution{
		CompletedWeight: fraction,
		TotalWeight:     1,
		CompletedCount:  completed,
	}
}

// IsTaskCompleted reports whether a task counts toward the completion rate.
// A task with subtasks needs every subtask and its own flag completed.
func IsTaskCompleted(task *domain.Task) bool {
	if !task.HasSubTasks() {
		return task.Completed
	}
	return task.Completed && task.AllSubTasksCompleted()
}
