package postgre

import (
	"context"
	"database/sql"
	"errors"

	"taskboard/internal/task"
	repo "taskboard/internal/task/repository"
)

const taskColumns = `id, title, is_complete`

// ListTasks returns every Task in insertion order.
func (r *implRepository) ListTasks(ctx context.Context) ([]task.Task, error) {
	const query = `SELECT ` + taskColumns + ` FROM tasks ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := make([]task.Task, 0)
	for rows.Next() {
		var t task.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.IsComplete); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// GetTask retrieves a single Task by ID.
// Returns zero-value Task (ID == 0) when not found. Not-found is not an error.
func (r *implRepository) GetTask(ctx context.Context, id int64) (task.Task, error) {
	const query = `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	var t task.Task
	err := r.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Title, &t.IsComplete)
	if errors.Is(err, sql.ErrNoRows) {
		return task.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTask"), err)
		return task.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (task.Task, error) {
	const query = `INSERT INTO tasks (title) VALUES ($1) RETURNING ` + taskColumns

	var t task.Task
	err := r.db.QueryRowContext(ctx, query, opt.Title).Scan(&t.ID, &t.Title, &t.IsComplete)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return task.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// UpdateTask renames a Task by ID and returns the updated entity.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (task.Task, error) {
	const query = `UPDATE tasks SET title = $1 WHERE id = $2 RETURNING ` + taskColumns

	var t task.Task
	err := r.db.QueryRowContext(ctx, query, opt.Title, opt.ID).Scan(&t.ID, &t.Title, &t.IsComplete)
	if errors.Is(err, sql.ErrNoRows) {
		return task.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return task.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// DeleteTask removes a Task by ID.
func (r *implRepository) DeleteTask(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM tasks WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return false, repo.ErrFailedToDelete
	}
	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("DeleteTask"), err)
		return false, repo.ErrFailedToDelete
	}
	return affected > 0, nil
}
