package storage

import (
	"context"
	"time"

	"github.com/iudanet/taskkeeper/internal/models"
)

// UserFilter describes an exact-intersection lookup: all set fields are ANDed.
// Email is matched against the normalized (lowercase) stored value.
type UserFilter struct {
	ID       string
	Email    string
	Username string
}

// IsEmpty reports whether no filter field is set
func (f UserFilter) IsEmpty() bool {
	return f.ID == "" && f.Email == "" && f.Username == ""
}

// UserStorage defines interface for user data persistence
type UserStorage interface {
	// CreateUser creates a new user in the storage.
	// Email must already be normalized to lowercase by the caller.
	// Returns ErrUserAlreadyExists if an active (non-deleted) user
	// with that email exists; uniqueness is enforced by the database,
	// not by a check-then-insert in application code.
	CreateUser(ctx context.Context, user *models.User) error

	// FindUser retrieves a single user matching all set filter fields.
	// Soft-deleted users are returned too: the authentication path is
	// responsible for treating them as absent.
	// Returns ErrUserNotFound if no user matches the intersection.
	FindUser(ctx context.Context, filter UserFilter) (*models.User, error)

	// SoftDeleteUser sets the deletion marker on a user.
	// Returns ErrUserNotFound if user doesn't exist or is already deleted.
	SoftDeleteUser(ctx context.Context, userID string, deletedAt time.Time) error
}
