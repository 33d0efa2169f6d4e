package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"taskboard/internal/task"
	repo "taskboard/internal/task/repository"
)

const selectTask = `SELECT id, title, is_complete FROM tasks`

// ListTasks returns every Task ordered by id, which is insertion order for AUTOINCREMENT keys.
func (r *implRepository) ListTasks(ctx context.Context) ([]task.Task, error) {
	rows, err := r.db.QueryContext(ctx, selectTask+` ORDER BY id ASC`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := make([]task.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
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

// GetTask returns the Task with id, or a zero-value Task when there is none.
func (r *implRepository) GetTask(ctx context.Context, id int64) (task.Task, error) {
	t, err := scanTask(r.db.QueryRowContext(ctx, selectTask+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return task.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTask"), err)
		return task.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// CreateTask inserts a Task and reads it back so store defaults are reflected.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (task.Task, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO tasks (title) VALUES (?)`, opt.Title)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return task.Task{}, repo.ErrFailedToInsert
	}
	id, err := res.LastInsertId()
	if err != nil {
		r.l.Errorf(ctx, "%s last insert id: %v", r.dsn("CreateTask"), err)
		return task.Task{}, repo.ErrFailedToInsert
	}

	t, err := scanTask(r.db.QueryRowContext(ctx, selectTask+` WHERE id = ?`, id))
	if err != nil {
		r.l.Errorf(ctx, "%s read back: %v", r.dsn("CreateTask"), err)
		return task.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// UpdateTask renames a Task. Returns a zero-value Task when id does not exist.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (task.Task, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE tasks SET title = ? WHERE id = ?`, opt.Title, opt.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return task.Task{}, repo.ErrFailedToUpdate
	}
	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("UpdateTask"), err)
		return task.Task{}, repo.ErrFailedToUpdate
	}
	if affected == 0 {
		return task.Task{}, nil
	}

	t, err := scanTask(r.db.QueryRowContext(ctx, selectTask+` WHERE id = ?`, opt.ID))
	if err != nil {
		r.l.Errorf(ctx, "%s read back: %v", r.dsn("UpdateTask"), err)
		return task.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// DeleteTask removes a Task and reports whether it existed.
func (r *implRepository) DeleteTask(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(s rowScanner) (task.Task, error) {
	var t task.Task
	err := s.Scan(&t.ID, &t.Title, &t.IsComplete)
	return t, err
}
