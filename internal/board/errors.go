package board

import "errors"

var (
	ErrEmptyTitle  = errors.New("title cannot be empty")
	ErrNotEditing  = errors.New("no task is being edited")
	ErrUnknownTask = errors.New("task is not on the board")
)
