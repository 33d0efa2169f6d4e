package http

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// processTitleReq binds the {title} JSON body.
func (h *handler) processTitleReq(c *gin.Context) (titleReq, error) {
	var req titleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	return req, nil
}

// processID parses the :id path parameter. Anything that is not a positive integer cannot
// name a task.
func (h *handler) processID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
