package repository

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	Title string
}

// UpdateTaskOptions holds parameters for renaming an existing Task.
type UpdateTaskOptions struct {
	ID    int64
	Title string
}
