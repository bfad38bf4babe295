package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"todo_backend/internal/models"
)

type TodoSQLite struct {
	db *sql.DB
}

func NewTodoSQLite(db *sql.DB) *TodoSQLite { return &TodoSQLite{db: db} }

var _ TodoRepo = (*TodoSQLite)(nil)

const (
	todoColumns = `id, user_id, content, is_done, created_at, updated_at`

	insertTodoSQL = `INSERT INTO todos (` + todoColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	updateTodoSQL = `UPDATE todos SET is_done = ?, content = COALESCE(?, content), updated_at = ? WHERE id = ? AND user_id = ?`
	selectTodoSQL = `SELECT ` + todoColumns + ` FROM todos WHERE id = ? AND user_id = ?`
	deleteTodoSQL = `DELETE FROM todos WHERE id = ? AND user_id = ?`
	listTodosSQL  = `SELECT ` + todoColumns + ` FROM todos WHERE user_id = ? ORDER BY created_at DESC`
	statsTodosSQL = `SELECT COUNT(*), COALESCE(SUM(CASE WHEN is_done THEN 1 ELSE 0 END), 0) FROM todos WHERE user_id = ?`
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodo(s rowScanner) (models.Todo, error) {
	var t models.Todo
	if err := s.Scan(&t.ID, &t.UserID, &t.Content, &t.IsDone, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return models.Todo{}, err
	}
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return t, nil
}

func (r *TodoSQLite) Create(ctx context.Context, t models.Todo) error {
	_, err := r.db.ExecContext(ctx, insertTodoSQL,
		t.ID, t.UserID, t.Content, t.IsDone, t.CreatedAt.UTC(), t.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("insert todo: %w", err)
	}
	return nil
}

// Update applies p to the todo owned by userID and returns the stored row.
func (r *TodoSQLite) Update(ctx context.Context, userID, id string, p TodoPatch) (models.Todo, error) {
	var content sql.NullString
	if p.Content != nil {
		content = sql.NullString{String: *p.Content, Valid: true}
	}
	res, err := r.db.ExecContext(ctx, updateTodoSQL, p.IsDone, content, p.UpdatedAt.UTC(), id, userID)
	if err != nil {
		return models.Todo{}, fmt.Errorf("update todo %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return models.Todo{}, fmt.Errorf("rows affected for todo %q: %w", id, err)
	}
	if n == 0 {
		return models.Todo{}, ErrNotFound
	}

	t, err := scanTodo(r.db.QueryRowContext(ctx, selectTodoSQL, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Todo{}, ErrNotFound
		}
		return models.Todo{}, fmt.Errorf("select todo %q: %w", id, err)
	}
	return t, nil
}

func (r *TodoSQLite) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, deleteTodoSQL, id, userID)
	if err != nil {
		return fmt.Errorf("delete todo %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for todo %q: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TodoSQLite) ListByUser(ctx context.Context, userID string) ([]models.Todo, error) {
	rows, err := r.db.QueryContext(ctx, listTodosSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer rows.Close()

	out := make([]models.Todo, 0, 16)
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate todos: %w", err)
	}
	return out, nil
}

func (r *TodoSQLite) Stats(ctx context.Context, userID string) (models.TodoStats, error) {
	var st models.TodoStats
	if err := r.db.QueryRowContext(ctx, statsTodosSQL, userID).Scan(&st.Total, &st.Done); err != nil {
		return models.TodoStats{}, fmt.Errorf("todo stats: %w", err)
	}
	st.Pending = st.Total - st.Done
	return st, nil
}
