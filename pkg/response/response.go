package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "taskboard/pkg/errors"
)

// OK sends 200 JSON with data as the whole body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends 201 JSON with a Location header pointing at the new resource.
func Created(c *gin.Context, location string, data any) {
	c.Header("Location", location)
	c.JSON(http.StatusCreated, data)
}

// NoContent sends 204 with an empty body.
func NoContent(c *gin.Context) {
	c.AbortWithStatus(http.StatusNoContent)
}

// NotFound sends 404 with an empty body.
func NotFound(c *gin.Context) {
	c.AbortWithStatus(http.StatusNotFound)
}

// Text sends 200 text/plain.
func Text(c *gin.Context, body string) {
	c.String(http.StatusOK, body)
}

// Error sends the status and message carried by an HTTPError.
// Anything else is reported as an internal error.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if !errors.As(err, &httpErr) {
		InternalError(c, err)
		return
	}

	if httpErr.Message == "" {
		c.AbortWithStatus(httpErr.StatusCode)
		return
	}

	c.AbortWithStatusJSON(httpErr.StatusCode, ErrorResp{Error: httpErr.Message})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResp{Error: pkgErrors.ErrInternalServerError.Message})
}
