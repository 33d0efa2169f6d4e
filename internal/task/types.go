package task

// --- Task Domain Model ---

// Task is the single entity managed by this service.
type Task struct {
	ID         int64
	Title      string
	IsComplete bool
}

// --- UseCase Inputs ---

type CreateInput struct {
	Title string
}

type UpdateInput struct {
	ID    int64
	Title string
}

// --- UseCase Outputs ---

type ListOutput struct {
	Tasks []Task
}

type DetailOutput struct {
	Task Task
}

type CreateOutput struct {
	Task Task
}

type UpdateOutput struct {
	Task Task
}
