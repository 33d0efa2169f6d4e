package taskapi

import "fmt"

// Task is the wire representation of a task.
type Task struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	IsComplete bool   `json:"isComplete"`
}

type titleRequest struct {
	Title string `json:"title"`
}

type errorPayload struct {
	Error string `json:"error"`
}

// APIError is returned for every non-2xx response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func newAPIError(status int, payload errorPayload) *APIError {
	msg := payload.Error
	if msg == "" {
		msg = fmt.Sprintf("Request failed (%d)", status)
	}
	return &APIError{Status: status, Message: msg}
}
