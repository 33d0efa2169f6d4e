package board

import (
	"context"

	"taskboard/pkg/taskapi"
)

// MaxTitleLength caps both the new-task and rename inputs, counted in runes.
const MaxTitleLength = 120

const (
	msgEmptyTitle   = "Title cannot be empty."
	msgLoadFailed   = "Unable to load tasks."
	msgCreateFailed = "Unable to create task."
	msgUpdateFailed = "Unable to update task."
	msgDeleteFailed = "Unable to delete task."
)

// API is the subset of the TaskBoard client the board needs.
type API interface {
	ListTasks(ctx context.Context) ([]taskapi.Task, error)
	CreateTask(ctx context.Context, title string) (taskapi.Task, error)
	UpdateTask(ctx context.Context, id int64, title string) (taskapi.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

// Status is the load state of the task list.
type Status int

const (
	StatusLoading Status = iota
	StatusLoaded
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Row is one task as shown on the board.
type Row struct {
	Task    taskapi.Task
	Editing bool
}

// View is an immutable snapshot of the board.
type View struct {
	Status       Status
	Error        string
	NewTitle     string
	EditingID    int64
	EditingTitle string
	Rows         []Row
}
