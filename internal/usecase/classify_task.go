package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/runoshun/taskpulse/internal/domain"
	"github.com/runoshun/taskpulse/internal/engine"
)

// ClassifyTaskInput describes a task to classify without storing it.
// Fields are ordered to minimize memory padding.
type ClassifyTaskInput struct {
	Start            *time.Time
	End              *time.Time
	EstimatedMinutes *int
	Name             string
	Description      string
	SubTasks         int
	Collaborators    int
	BlockedBy        int
}

// ClassifyTaskOutput contains the suggested tier and priority.
type ClassifyTaskOutput struct {
	Classification domain.Classification
}

// ClassifyTask is the use case for a classification dry run.
type ClassifyTask struct{}

// NewClassifyTask creates a new ClassifyTask use case.
func NewClassifyTask() *ClassifyTask {
	return &ClassifyTask{}
}

// Execute classifies the described task. Missing times stay zero, so the
// duration rule applies only when both are given.
func (uc *ClassifyTask) Execute(_ context.Context, in ClassifyTaskInput) (*ClassifyTaskOutput, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrEmptyName
	}
	task := domain.Task{
		Name:             in.Name,
		Description:      in.Description,
		EstimatedMinutes: in.EstimatedMinutes,
		SubTasks:         make([]domain.SubTask, max(in.SubTasks, 0)),
		Collaborators:    make([]string, max(in.Collaborators, 0)),
		BlockedBy:        make([]string, max(in.BlockedBy, 0)),
	}
	if in.Start != nil {
		task.Start = *in.Start
	}
	if in.End != nil {
		task.End = *in.End
	}

	return &ClassifyTaskOutput{Classification: engine.ClassifyTask(&task)}, nil
}
