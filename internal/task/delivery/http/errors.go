package http

import (
	"errors"
	"net/http"

	"taskboard/internal/task"
	pkgErrors "taskboard/pkg/errors"
)

var (
	errInvalidBody = errors.New("invalid request body")
	errInvalidID   = errors.New("invalid task id")
)

var (
	errRespEmptyTitle  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Title cannot be empty.")
	errRespInvalidBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body.")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors become 500 so the request fails without taking the process down.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrEmptyTitle):
		return errRespEmptyTitle
	case errors.Is(err, errInvalidBody):
		return errRespInvalidBody
	case errors.Is(err, task.ErrTaskNotFound), errors.Is(err, errInvalidID):
		return pkgErrors.ErrNotFound
	default:
		return pkgErrors.ErrInternalServerError
	}
}
