// Package session хранит состояние входа клиента между запусками CLI.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/taskkeeper/internal/client/securestore"
	"github.com/iudanet/taskkeeper/internal/client/storage"
)

// Namespace - namespace защищенного хранилища для данных сессии
const Namespace = "taskkeeper-auth"

const (
	keyToken    = "token"
	keyUsername = "username"
)

// ErrNotAuthenticated возвращается когда сохраненной сессии нет
var ErrNotAuthenticated = errors.New("not authenticated")

// Session управляет сохраненным токеном доступа
type Session struct {
	store *securestore.Store
}

// New создает Session поверх защищенного хранилища
func New(store *securestore.Store) *Session {
	return &Session{store: store}
}

// Save сохраняет токен и имя пользователя после успешного входа
func (s *Session) Save(ctx context.Context, token, username string) error {
	if err := s.store.SetItem(ctx, keyToken, token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	if err := s.store.SetItem(ctx, keyUsername, username); err != nil {
		return fmt.Errorf("failed to save username: %w", err)
	}
	return nil
}

// Token возвращает сохраненный токен доступа
func (s *Session) Token(ctx context.Context) (string, error) {
	token, err := s.store.GetItem(ctx, keyToken)
	if err != nil {
		if errors.Is(err, storage.ErrItemNotFound) {
			return "", ErrNotAuthenticated
		}
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return token, nil
}

// Username возвращает имя пользователя текущей сессии
func (s *Session) Username(ctx context.Context) (string, error) {
	username, err := s.store.GetItem(ctx, keyUsername)
	if err != nil {
		if errors.Is(err, storage.ErrItemNotFound) {
			return "", ErrNotAuthenticated
		}
		return "", fmt.Errorf("failed to read username: %w", err)
	}
	return username, nil
}

// IsAuthenticated сообщает, есть ли сохраненная сессия
func (s *Session) IsAuthenticated(ctx context.Context) (bool, error) {
	_, err := s.Token(ctx)
	if err != nil {
		if errors.Is(err, ErrNotAuthenticated) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Logout удаляет все данные сессии
func (s *Session) Logout(ctx context.Context) error {
	if err := s.store.ClearNamespace(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
