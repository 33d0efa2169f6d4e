package usecase

import (
	"context"

	"taskboard/internal/task"
	repo "taskboard/internal/task/repository"
)

// Create persists a new Task after validating its title.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	if err := uc.validateTitle(input.Title); err != nil {
		return task.CreateOutput{}, err
	}

	t, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{Title: input.Title})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Create: task %d created", t.ID)
	return task.CreateOutput{Task: t}, nil
}
