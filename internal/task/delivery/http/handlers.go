package http

import (
	"github.com/gin-gonic/gin"

	"taskboard/pkg/response"
)

// List godoc
// @Summary     List tasks
// @Description Returns every task in insertion order.
// @Tags        Tasks
// @Produce     json
// @Success     200 {array}  taskResp
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get a task
// @Description Returns a single task by its ID.
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 "Not Found"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Debugf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// Create godoc
// @Summary     Create a task
// @Description Creates a task with the given title. Blank titles are rejected.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body titleReq true "Task title"
// @Success     201 {object} taskResp
// @Header      201 {string} Location "/api/tasks/{id}"
// @Failure     400 {object} response.ErrorResp "Bad Request"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTitleReq(c)
	if err != nil {
		h.l.Debugf(ctx, "processTitleReq: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Create(ctx, req.toCreateInput())
	if err != nil {
		h.l.Debugf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, location(c.FullPath(), output.Task.ID), newTaskResp(output.Task))
}

// Update godoc
// @Summary     Rename a task
// @Description Replaces the title of an existing task. Completion state is not changed.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path int      true "Task ID"
// @Param       body body titleReq true "New title"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.ErrorResp "Bad Request"
// @Failure     404 "Not Found"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	req, err := h.processTitleReq(c)
	if err != nil {
		h.l.Debugf(ctx, "processTitleReq: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Update(ctx, req.toUpdateInput(id))
	if err != nil {
		h.l.Debugf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task by ID.
// @Tags        Tasks
// @Param       id path int true "Task ID"
// @Success     204 "No Content"
// @Failure     404 "Not Found"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Debugf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.NoContent(c)
}
