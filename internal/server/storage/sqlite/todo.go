package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/taskkeeper/internal/models"
	"github.com/iudanet/taskkeeper/internal/server/storage"
)

// CreateTodo inserts a new todo row
func (s *Storage) CreateTodo(ctx context.Context, todo *models.Todo) error {
	query := `
		INSERT INTO todos (id, user_id, title, description, is_completed, due_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		todo.ID,
		todo.UserID,
		todo.Title,
		todo.Description,
		boolToInt(todo.IsCompleted),
		nullableTime(todo.DueDate),
		todo.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to insert todo: %w", err)
	}

	return nil
}

// GetTodo retrieves a todo by (id, owner).
// Чужая запись и несуществующая запись неразличимы: оба случая
// дают ErrTodoNotFound.
func (s *Storage) GetTodo(ctx context.Context, id, ownerID string) (*models.Todo, error) {
	query := `
		SELECT id, user_id, title, description, is_completed, due_date, created_at
		FROM todos
		WHERE id = ? AND user_id = ?
	`

	return s.scanTodo(s.db.QueryRowContext(ctx, query, id, ownerID))
}

// ListTodos retrieves all todos of the owner ordered by due date ascending.
// Записи без due_date сортируются после всех датированных.
func (s *Storage) ListTodos(ctx context.Context, ownerID string) ([]*models.Todo, error) {
	query := `
		SELECT id, user_id, title, description, is_completed, due_date, created_at
		FROM todos
		WHERE user_id = ?
		ORDER BY due_date IS NULL, due_date ASC
	`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query todos: %w", err)
	}
	defer rows.Close()

	todos := []*models.Todo{}
	for rows.Next() {
		todo, err := s.scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate todos: %w", err)
	}

	return todos, nil
}

// UpdateTodo applies non-nil fields of changes to the (id, owner) row.
// Только переданные поля меняются; явный IsCompleted=false применяется.
func (s *Storage) UpdateTodo(ctx context.Context, id, ownerID string, changes *models.TodoChanges) (*models.Todo, error) {
	// Читаем текущую запись с проверкой владельца
	todo, err := s.GetTodo(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if changes.Title != nil {
		todo.Title = *changes.Title
	}
	if changes.Description != nil {
		todo.Description = *changes.Description
	}
	if changes.IsCompleted != nil {
		todo.IsCompleted = *changes.IsCompleted
	}
	if changes.DueDate != nil {
		todo.DueDate = changes.DueDate
	}

	query := `
		UPDATE todos
		SET title = ?, description = ?, is_completed = ?, due_date = ?
		WHERE id = ? AND user_id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		todo.Title,
		todo.Description,
		boolToInt(todo.IsCompleted),
		nullableTime(todo.DueDate),
		id,
		ownerID,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return nil, storage.ErrTodoNotFound
	}

	return todo, nil
}

// DeleteTodo removes the (id, owner) row and returns the pre-delete snapshot
func (s *Storage) DeleteTodo(ctx context.Context, id, ownerID string) (*models.Todo, error) {
	// Снимок до удаления возвращается вызывающему для подтверждения
	todo, err := s.GetTodo(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	query := `DELETE FROM todos WHERE id = ? AND user_id = ?`

	result, err := s.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete todo: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return nil, storage.ErrTodoNotFound
	}

	return todo, nil
}

// rowScanner покрывает *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTodo читает одну строку todos
func (s *Storage) scanTodo(row rowScanner) (*models.Todo, error) {
	todo := &models.Todo{}
	var isCompleted int
	var dueDate sql.NullTime

	err := row.Scan(
		&todo.ID,
		&todo.UserID,
		&todo.Title,
		&todo.Description,
		&isCompleted,
		&dueDate,
		&todo.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTodoNotFound
		}
		return nil, fmt.Errorf("failed to scan todo: %w", err)
	}

	todo.IsCompleted = isCompleted != 0
	if dueDate.Valid {
		t := dueDate.Time
		todo.DueDate = &t
	}

	return todo, nil
}

// boolToInt конвертирует bool в 0/1 для SQLite
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// nullableTime конвертирует *time.Time в sql.NullTime
func nullableTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
