package storage

import "context"

// KV определяет низкоуровневое key-value хранилище клиента.
// Значения непрозрачны: шифрование выполняется слоем выше.
type KV interface {
	Put(ctx context.Context, key string, value []byte) error
	// Get возвращает ErrItemNotFound если ключ не существует
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	DeleteByPrefix(ctx context.Context, prefix string) error
	Close() error
}
