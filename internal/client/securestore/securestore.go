// Package securestore реализует зашифрованное клиентское хранилище
// строковых значений поверх низкоуровневого KV.
//
// Ключ шифрования детерминированно выводится из имени namespace, поэтому
// хранилище дает обфускацию локальных данных, а не криптографическую
// защиту от владельца файла БД.
package securestore

import (
	"context"
	"fmt"

	appcrypto "github.com/iudanet/taskkeeper/internal/crypto"

	"github.com/iudanet/taskkeeper/internal/client/storage"
)

// Store - зашифрованное хранилище значений в пределах одного namespace
type Store struct {
	kv        storage.KV
	namespace string
	key       []byte
}

// New создает Store для заданного namespace.
// Разные namespace не пересекаются даже при одинаковых ключах записей.
func New(kv storage.KV, namespace string) *Store {
	return &Store{
		kv:        kv,
		namespace: namespace,
		key:       appcrypto.DeriveStoreKey(namespace),
	}
}

// storageKey строит полный ключ записи в KV
func (s *Store) storageKey(key string) string {
	return s.namespace + "_" + key
}

// SetItem шифрует value и сохраняет под ключом key
func (s *Store) SetItem(ctx context.Context, key, value string) error {
	encrypted, err := appcrypto.Encrypt([]byte(value), s.key)
	if err != nil {
		return fmt.Errorf("failed to encrypt item: %w", err)
	}

	if err := s.kv.Put(ctx, s.storageKey(key), encrypted); err != nil {
		return fmt.Errorf("failed to store item: %w", err)
	}

	return nil
}

// GetItem возвращает расшифрованное значение по ключу.
// Если запись отсутствует - storage.ErrItemNotFound.
// Если запись повреждена или зашифрована чужим ключом, она удаляется
// и также возвращается storage.ErrItemNotFound: хранилище самоисцеляется,
// а не отдает мусор наверх.
func (s *Store) GetItem(ctx context.Context, key string) (string, error) {
	encrypted, err := s.kv.Get(ctx, s.storageKey(key))
	if err != nil {
		return "", err
	}

	plaintext, err := appcrypto.Decrypt(encrypted, s.key)
	if err != nil {
		// Поврежденную запись убираем, чтобы не спотыкаться о нее повторно
		_ = s.kv.Delete(ctx, s.storageKey(key))
		return "", storage.ErrItemNotFound
	}

	return string(plaintext), nil
}

// RemoveItem удаляет запись. Отсутствие записи не является ошибкой.
func (s *Store) RemoveItem(ctx context.Context, key string) error {
	return s.kv.Delete(ctx, s.storageKey(key))
}

// ClearNamespace удаляет все записи этого namespace
func (s *Store) ClearNamespace(ctx context.Context) error {
	return s.kv.DeleteByPrefix(ctx, s.namespace+"_")
}
