// Package todos реализует слой доступа к задачам, привязанный
// к одному аутентифицированному пользователю. Scope конструируется
// на запрос с разрешенным owner id, и все операции неявно
// фильтруются по владельцу.
package todos

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/taskkeeper/internal/models"
	"github.com/iudanet/taskkeeper/internal/server/apperr"
	"github.com/iudanet/taskkeeper/internal/server/storage"
)

// Scope - доступ к задачам одного владельца
type Scope struct {
	store   storage.TodoStorage
	ownerID string
}

// NewScope создает scope, привязанный к владельцу
func NewScope(store storage.TodoStorage, ownerID string) *Scope {
	return &Scope{
		store:   store,
		ownerID: ownerID,
	}
}

// CreateInput - данные новой задачи.
// Владелец не принимается от вызывающего: он всегда берется из scope.
type CreateInput struct {
	Title       string
	Description string
	IsCompleted bool
	DueDate     *time.Time
}

// Create создает задачу с принудительным owner = ownerID scope.
// IsCompleted по умолчанию false, если не передан.
func (s *Scope) Create(ctx context.Context, input CreateInput) (*models.Todo, error) {
	if input.Title == "" {
		return nil, apperr.Validation([]string{"Title is required"})
	}

	todo := &models.Todo{
		ID:          uuid.New().String(),
		UserID:      s.ownerID,
		Title:       input.Title,
		Description: input.Description,
		IsCompleted: input.IsCompleted,
		DueDate:     input.DueDate,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.store.CreateTodo(ctx, todo); err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	return todo, nil
}

// List возвращает задачи владельца по возрастанию due date,
// задачи без даты - в конце
func (s *Scope) List(ctx context.Context) ([]*models.Todo, error) {
	todos, err := s.store.ListTodos(ctx, s.ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}

// Get возвращает задачу по id. Чужая запись неотличима
// от несуществующей: обе дают NotFound.
func (s *Scope) Get(ctx context.Context, id string) (*models.Todo, error) {
	todo, err := s.store.GetTodo(ctx, id, s.ownerID)
	if err != nil {
		if errors.Is(err, storage.ErrTodoNotFound) {
			return nil, apperr.NotFound("Todo not found")
		}
		return nil, fmt.Errorf("failed to get todo: %w", err)
	}
	return todo, nil
}

// Update применяет частичное обновление.
// Меняются только переданные поля; явный IsCompleted=false применяется.
func (s *Scope) Update(ctx context.Context, id string, changes *models.TodoChanges) (*models.Todo, error) {
	if id == "" {
		return nil, apperr.InvalidEntity("Todo ID is required for update")
	}

	todo, err := s.store.UpdateTodo(ctx, id, s.ownerID, changes)
	if err != nil {
		if errors.Is(err, storage.ErrTodoNotFound) {
			return nil, apperr.NotFound("Todo not found")
		}
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	return todo, nil
}

// Delete удаляет задачу и возвращает снимок полей до удаления
func (s *Scope) Delete(ctx context.Context, id string) (*models.Todo, error) {
	if id == "" {
		return nil, apperr.InvalidEntity("Todo ID is required for deletion")
	}

	snapshot, err := s.store.DeleteTodo(ctx, id, s.ownerID)
	if err != nil {
		if errors.Is(err, storage.ErrTodoNotFound) {
			return nil, apperr.NotFound("Todo not found")
		}
		return nil, fmt.Errorf("failed to delete todo: %w", err)
	}

	return snapshot, nil
}
