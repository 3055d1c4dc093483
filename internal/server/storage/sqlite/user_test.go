package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/taskkeeper/internal/models"
	"github.com/iudanet/taskkeeper/internal/server/storage"
)

func TestUserStorage_CreateUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := &models.User{
		ID:           uuid.New().String(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash123",
		CreatedAt:    time.Now().UTC(),
	}

	require.NoError(t, s.CreateUser(ctx, user))

	retrieved, err := s.FindUser(ctx, storage.UserFilter{ID: user.ID})
	require.NoError(t, err)
	assert.Equal(t, user.ID, retrieved.ID)
	assert.Equal(t, user.Username, retrieved.Username)
	assert.Equal(t, user.Email, retrieved.Email)
	assert.Equal(t, user.PasswordHash, retrieved.PasswordHash)
	assert.Nil(t, retrieved.DeletedAt)
}

func TestUserStorage_CreateUser_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	newTestUser(t, s, "taken@example.com")

	dup := &models.User{
		ID:           uuid.New().String(),
		Username:     "someone-else",
		Email:        "taken@example.com",
		PasswordHash: "otherhash",
		CreatedAt:    time.Now().UTC(),
	}

	err := s.CreateUser(ctx, dup)
	assert.ErrorIs(t, err, storage.ErrUserAlreadyExists)
}

func TestUserStorage_CreateUser_EmailFreedBySoftDelete(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	// Частичный индекс действует только на активных пользователей:
	// после soft delete email можно занять заново
	old := newTestUser(t, s, "recycled@example.com")
	require.NoError(t, s.SoftDeleteUser(ctx, old.ID, time.Now().UTC()))

	fresh := &models.User{
		ID:           uuid.New().String(),
		Username:     "newcomer",
		Email:        "recycled@example.com",
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	}
	assert.NoError(t, s.CreateUser(ctx, fresh))
}

func TestUserStorage_FindUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := &models.User{
		ID:           uuid.New().String(),
		Username:     "bob",
		Email:        "bob@example.com",
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, s.CreateUser(ctx, user))

	tests := []struct {
		wantErr error
		name    string
		filter  storage.UserFilter
		wantID  string
	}{
		{
			name:   "by id",
			filter: storage.UserFilter{ID: user.ID},
			wantID: user.ID,
		},
		{
			name:   "by email",
			filter: storage.UserFilter{Email: "bob@example.com"},
			wantID: user.ID,
		},
		{
			name:   "email lookup is case-insensitive",
			filter: storage.UserFilter{Email: "BOB@Example.COM"},
			wantID: user.ID,
		},
		{
			name:   "by username",
			filter: storage.UserFilter{Username: "bob"},
			wantID: user.ID,
		},
		{
			name:   "email and username both match",
			filter: storage.UserFilter{Email: "bob@example.com", Username: "bob"},
			wantID: user.ID,
		},
		{
			name: "valid email with mismatching username",
			// Точное пересечение: email нашел бы пользователя,
			// но username не совпадает
			filter:  storage.UserFilter{Email: "bob@example.com", Username: "alice"},
			wantErr: storage.ErrUserNotFound,
		},
		{
			name:    "no match at all",
			filter:  storage.UserFilter{Email: "ghost@example.com"},
			wantErr: storage.ErrUserNotFound,
		},
		{
			name:    "empty filter",
			filter:  storage.UserFilter{},
			wantErr: storage.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := s.FindUser(ctx, tt.filter)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, found.ID)
		})
	}
}

func TestUserStorage_FindUser_ReturnsSoftDeleted(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := newTestUser(t, s, "gone@example.com")
	require.NoError(t, s.SoftDeleteUser(ctx, user.ID, time.Now().UTC()))

	// Storage отдает запись с маркером удаления;
	// путь аутентификации сам трактует ее как отсутствующую
	found, err := s.FindUser(ctx, storage.UserFilter{Email: "gone@example.com"})
	require.NoError(t, err)
	require.NotNil(t, found.DeletedAt)
	assert.True(t, found.IsDeleted())
}

func TestUserStorage_SoftDeleteUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := newTestUser(t, s, "delete-me@example.com")

	require.NoError(t, s.SoftDeleteUser(ctx, user.ID, time.Now().UTC()))

	// Повторное удаление уже удаленного — not found
	err := s.SoftDeleteUser(ctx, user.ID, time.Now().UTC())
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	// Несуществующий пользователь — not found
	err = s.SoftDeleteUser(ctx, uuid.New().String(), time.Now().UTC())
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}
