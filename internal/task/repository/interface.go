package repository

import (
	"context"

	"taskboard/internal/task"
)

// Repository is the data store contract for tasks.
//
// GetTask and UpdateTask return a zero-value Task (ID == 0) when no row matches;
// DeleteTask reports whether a row was removed.
type Repository interface {
	ListTasks(ctx context.Context) ([]task.Task, error)
	GetTask(ctx context.Context, id int64) (task.Task, error)
	CreateTask(ctx context.Context, opt CreateTaskOptions) (task.Task, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (task.Task, error)
	DeleteTask(ctx context.Context, id int64) (bool, error)
}
