package http

import (
	"strconv"

	"taskboard/internal/task"
)

// --- Request DTOs ---

// titleReq is the body of both create and update.
type titleReq struct {
	Title string `json:"title" example:"Draft kickoff brief"`
}

func (r titleReq) toCreateInput() task.CreateInput {
	return task.CreateInput{Title: r.Title}
}

func (r titleReq) toUpdateInput(id int64) task.UpdateInput {
	return task.UpdateInput{ID: id, Title: r.Title}
}

// --- Response DTOs ---

type taskResp struct {
	ID         int64  `json:"id" example:"1"`
	Title      string `json:"title" example:"Draft kickoff brief"`
	IsComplete bool   `json:"isComplete" example:"false"`
}

func newTaskResp(t task.Task) taskResp {
	return taskResp{
		ID:         t.ID,
		Title:      t.Title,
		IsComplete: t.IsComplete,
	}
}

func (h *handler) newListResp(out task.ListOutput) []taskResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return tasks
}

// location returns the resource path of a task created under basePath.
func location(basePath string, id int64) string {
	return basePath + "/" + strconv.FormatInt(id, 10)
}
