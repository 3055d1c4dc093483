package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/taskkeeper/internal/models"
	"github.com/iudanet/taskkeeper/internal/server/storage"
)

// CreateUser creates a new user in the storage.
// Уникальность email среди активных пользователей обеспечивает
// частичный уникальный индекс: при конфликте БД возвращает
// constraint violation, который мы переводим в ErrUserAlreadyExists.
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, username, email, password_hash, created_at, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	var deletedAt sql.NullTime
	if user.DeletedAt != nil {
		deletedAt = sql.NullTime{Time: *user.DeletedAt, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
		deletedAt,
	)

	if err != nil {
		// Нарушение idx_users_email_active — повторная регистрация email
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return storage.ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// FindUser retrieves a single user matching all set filter fields (ANDed).
// Фильтр — точное пересечение: валидный email с несовпадающим username
// дает ErrUserNotFound, хотя email сам по себе нашел бы пользователя.
func (s *Storage) FindUser(ctx context.Context, filter storage.UserFilter) (*models.User, error) {
	if filter.IsEmpty() {
		return nil, storage.ErrUserNotFound
	}

	query := `
		SELECT id, username, email, password_hash, created_at, deleted_at
		FROM users
		WHERE 1 = 1
	`
	var args []any

	if filter.ID != "" {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, strings.ToLower(filter.Email))
	}
	if filter.Username != "" {
		query += " AND username = ?"
		args = append(args, filter.Username)
	}

	user := &models.User{}
	var deletedAt sql.NullTime

	err := s.db.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&deletedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if deletedAt.Valid {
		user.DeletedAt = &deletedAt.Time
	}

	return user, nil
}

// SoftDeleteUser sets the deletion marker on an active user
func (s *Storage) SoftDeleteUser(ctx context.Context, userID string, deletedAt time.Time) error {
	query := `UPDATE users SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`

	result, err := s.db.ExecContext(ctx, query, deletedAt, userID)
	if err != nil {
		return fmt.Errorf("failed to soft delete user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrUserNotFound
	}

	return nil
}
