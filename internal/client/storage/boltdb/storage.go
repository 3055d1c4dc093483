package boltdb

import (
	"bytes"
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/taskkeeper/internal/client/storage"
)

// bucketItems - единственный bucket для всех клиентских записей
var bucketItems = []byte("items")

// Storage represents BoltDB storage implementation for client
type Storage struct {
	db *bbolt.DB
}

var _ storage.KV = (*Storage)(nil)

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db}

	// Инициализируем bucket
	if err := s.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// initBuckets создает bucket если он не существует
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketItems); err != nil {
			return fmt.Errorf("failed to create items bucket: %w", err)
		}
		return nil
	})
}

// Put stores or replaces a value by key
func (s *Storage) Put(ctx context.Context, key string, value []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketItems)
		if bucket == nil {
			return fmt.Errorf("items bucket not found")
		}

		if err := bucket.Put([]byte(key), value); err != nil {
			return fmt.Errorf("failed to save item: %w", err)
		}

		return nil
	})
}

// Get retrieves a value by key
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketItems)
		if bucket == nil {
			return fmt.Errorf("items bucket not found")
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return storage.ErrItemNotFound
		}

		// Копируем: срез валиден только внутри транзакции
		value = make([]byte, len(data))
		copy(value, data)

		return nil
	})

	if err != nil {
		return nil, err
	}

	return value, nil
}

// Delete removes a value by key. Deleting a missing key is not an error.
func (s *Storage) Delete(ctx context.Context, key string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketItems)
		if bucket == nil {
			return fmt.Errorf("items bucket not found")
		}

		if err := bucket.Delete([]byte(key)); err != nil {
			return fmt.Errorf("failed to delete item: %w", err)
		}

		return nil
	})
}

// DeleteByPrefix removes all values whose key starts with prefix
func (s *Storage) DeleteByPrefix(ctx context.Context, prefix string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketItems)
		if bucket == nil {
			return fmt.Errorf("items bucket not found")
		}

		c := bucket.Cursor()
		p := []byte(prefix)

		// Собираем ключи перед удалением: Delete во время Next небезопасен
		var keys [][]byte
		for k, _ := c.Seek(p); k != nil && bytes.HasPrefix(k, p); k, _ = c.Next() {
			kk := make([]byte, len(k))
			copy(kk, k)
			keys = append(keys, kk)
		}

		for _, k := range keys {
			if err := bucket.Delete(k); err != nil {
				return fmt.Errorf("failed to delete item: %w", err)
			}
		}

		return nil
	})
}
