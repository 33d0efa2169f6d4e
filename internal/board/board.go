package board

import (
	"context"
	"slices"
	"strings"
	"sync"

	"taskboard/pkg/taskapi"
)

// Board holds the client-side state of the task list. State only changes
// after the server confirms a mutation, and a confirmed mutation leaves the
// board in the loaded state. The lock is never held across an
// API call, so concurrent operations apply in completion order.
type Board struct {
	api API

	mu           sync.Mutex
	tasks        []taskapi.Task
	status       Status
	errMsg       string
	newTitle     string
	editingID    int64
	editingTitle string
}

// New returns a board in the loading state. Call Load to populate it.
func New(api API) *Board {
	return &Board{
		api:    api,
		tasks:  []taskapi.Task{},
		status: StatusLoading,
	}
}

// Load fetches the full list and replaces the local copy.
func (b *Board) Load(ctx context.Context) error {
	b.mu.Lock()
	b.status = StatusLoading
	b.errMsg = ""
	b.mu.Unlock()

	tasks, err := b.api.ListTasks(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.tasks = []taskapi.Task{}
		b.status = StatusError
		b.errMsg = messageOf(err, msgLoadFailed)
		return err
	}
	b.tasks = slices.Clone(tasks)
	b.status = StatusLoaded
	return nil
}

// SetNewTitle updates the new-task input.
func (b *Board) SetNewTitle(title string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.newTitle = truncate(title)
}

// Create submits the new-task input. A blank input sets the banner and
// never reaches the API.
func (b *Board) Create(ctx context.Context) error {
	b.mu.Lock()
	title := strings.TrimSpace(b.newTitle)
	if title == "" {
		b.errMsg = msgEmptyTitle
		b.mu.Unlock()
		return ErrEmptyTitle
	}
	b.errMsg = ""
	b.mu.Unlock()

	created, err := b.api.CreateTask(ctx, title)

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.errMsg = messageOf(err, msgCreateFailed)
		return err
	}
	b.tasks = append(b.tasks, created)
	b.newTitle = ""
	b.status = StatusLoaded
	return nil
}

// StartEditing switches the row with the given id into edit mode, pre-filled
// with its current title. Any other row being edited returns to viewing.
func (b *Board) StartEditing(id int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.indexOf(id)
	if i < 0 {
		return ErrUnknownTask
	}
	b.editingID = id
	b.editingTitle = b.tasks[i].Title
	return nil
}

// SetEditingTitle updates the rename input.
func (b *Board) SetEditingTitle(title string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.editingTitle = truncate(title)
}

// CancelEditing leaves edit mode without saving.
func (b *Board) CancelEditing() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopEditing()
}

// SaveEditing submits the rename input for the row being edited. On failure
// the row stays in edit mode.
func (b *Board) SaveEditing(ctx context.Context) error {
	b.mu.Lock()
	if b.editingID == 0 {
		b.mu.Unlock()
		return ErrNotEditing
	}
	id := b.editingID
	title := strings.TrimSpace(b.editingTitle)
	if title == "" {
		b.errMsg = msgEmptyTitle
		b.mu.Unlock()
		return ErrEmptyTitle
	}
	b.errMsg = ""
	b.mu.Unlock()

	updated, err := b.api.UpdateTask(ctx, id, title)

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.errMsg = messageOf(err, msgUpdateFailed)
		return err
	}
	if i := b.indexOf(id); i >= 0 {
		b.tasks[i] = updated
	}
	if b.editingID == id {
		b.stopEditing()
	}
	b.status = StatusLoaded
	return nil
}

// Delete removes the task on the server, then locally.
func (b *Board) Delete(ctx context.Context, id int64) error {
	b.mu.Lock()
	b.errMsg = ""
	b.mu.Unlock()

	err := b.api.DeleteTask(ctx, id)

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.errMsg = messageOf(err, msgDeleteFailed)
		return err
	}
	b.tasks = slices.DeleteFunc(b.tasks, func(t taskapi.Task) bool { return t.ID == id })
	if b.editingID == id {
		b.stopEditing()
	}
	b.status = StatusLoaded
	return nil
}

// View returns a snapshot with rows sorted by ascending id.
func (b *Board) View() View {
	b.mu.Lock()
	defer b.mu.Unlock()

	tasks := slices.Clone(b.tasks)
	slices.SortStableFunc(tasks, func(x, y taskapi.Task) int {
		switch {
		case x.ID < y.ID:
			return -1
		case x.ID > y.ID:
			return 1
		}
		return 0
	})

	rows := make([]Row, len(tasks))
	for i, t := range tasks {
		rows[i] = Row{Task: t, Editing: b.editingID != 0 && t.ID == b.editingID}
	}

	return View{
		Status:       b.status,
		Error:        b.errMsg,
		NewTitle:     b.newTitle,
		EditingID:    b.editingID,
		EditingTitle: b.editingTitle,
		Rows:         rows,
	}
}

func (b *Board) indexOf(id int64) int {
	return slices.IndexFunc(b.tasks, func(t taskapi.Task) bool { return t.ID == id })
}

func (b *Board) stopEditing() {
	b.editingID = 0
	b.editingTitle = ""
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) <= MaxTitleLength {
		return s
	}
	return string(r[:MaxTitleLength])
}

func messageOf(err error, fallback string) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
