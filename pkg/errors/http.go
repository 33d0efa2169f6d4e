package errors

import "net/http"

// HTTPError is an error that carries the status code and the client-facing message.
type HTTPError struct {
	StatusCode int
	Message    string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

var (
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "Too many requests.")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Internal server error.")
)
