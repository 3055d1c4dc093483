package storage

import (
	"context"

	"github.com/iudanet/taskkeeper/internal/models"
)

// TodoStorage defines interface for todo persistence.
// Every read and mutation takes the owner id and matches (id, user_id):
// a todo owned by someone else is indistinguishable from a missing one.
type TodoStorage interface {
	// CreateTodo inserts a new todo row
	CreateTodo(ctx context.Context, todo *models.Todo) error

	// GetTodo retrieves a todo by (id, owner).
	// Returns ErrTodoNotFound if absent or owned by another user.
	GetTodo(ctx context.Context, id, ownerID string) (*models.Todo, error)

	// ListTodos retrieves all todos of the owner ordered by due date
	// ascending; todos without a due date sort after all dated ones.
	// Returns empty slice if the owner has no todos.
	ListTodos(ctx context.Context, ownerID string) ([]*models.Todo, error)

	// UpdateTodo applies non-nil fields of changes to the (id, owner) row.
	// Returns the updated todo, or ErrTodoNotFound if absent/foreign.
	UpdateTodo(ctx context.Context, id, ownerID string, changes *models.TodoChanges) (*models.Todo, error)

	// DeleteTodo removes the (id, owner) row and returns the pre-delete
	// snapshot. Returns ErrTodoNotFound if absent/foreign.
	DeleteTodo(ctx context.Context, id, ownerID string) (*models.Todo, error)
}
