package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/taskkeeper/internal/client/storage"
)

func setupTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "testdb.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestNew_Success(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "testdb.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() {
		require.NoError(t, store.Close())
	}()

	// Проверяем что файл БД действительно создан
	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	// Проверяем, что бакет существует
	err = store.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketItems) == nil {
			return os.ErrNotExist
		}
		return nil
	})
	require.NoError(t, err)
}

func TestNew_InvalidPath(t *testing.T) {
	ctx := context.Background()
	// На некоторых системах путь с нулевым символом даст ошибку
	invalidPath := string([]byte{0})
	store, err := New(ctx, invalidPath)
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "testdb.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	err = store.Close()
	assert.NoError(t, err)
	assert.Nil(t, store.db)

	// Второй вызов Close не должен падать
	err = store.Close()
	assert.NoError(t, err)
}

func TestPutGet(t *testing.T) {
	store := setupTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "alpha", []byte("value-1")))

	got, err := store.Get(ctx, "alpha")
	require.NoError(t, err)
	assert.Equal(t, []byte("value-1"), got)

	// Перезапись
	require.NoError(t, store.Put(ctx, "alpha", []byte("value-2")))
	got, err = store.Get(ctx, "alpha")
	require.NoError(t, err)
	assert.Equal(t, []byte("value-2"), got)
}

func TestGet_NotFound(t *testing.T) {
	store := setupTestStorage(t)

	got, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrItemNotFound)
	assert.Nil(t, got)
}

func TestDelete(t *testing.T) {
	store := setupTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "alpha", []byte("value")))
	require.NoError(t, store.Delete(ctx, "alpha"))

	_, err := store.Get(ctx, "alpha")
	assert.ErrorIs(t, err, storage.ErrItemNotFound)

	// Удаление несуществующего ключа не является ошибкой
	assert.NoError(t, store.Delete(ctx, "alpha"))
}

func TestDeleteByPrefix(t *testing.T) {
	store := setupTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "ns1_token", []byte("a")))
	require.NoError(t, store.Put(ctx, "ns1_user", []byte("b")))
	require.NoError(t, store.Put(ctx, "ns2_token", []byte("c")))

	require.NoError(t, store.DeleteByPrefix(ctx, "ns1_"))

	_, err := store.Get(ctx, "ns1_token")
	assert.ErrorIs(t, err, storage.ErrItemNotFound)
	_, err = store.Get(ctx, "ns1_user")
	assert.ErrorIs(t, err, storage.ErrItemNotFound)

	// Чужой namespace не тронут
	got, err := store.Get(ctx, "ns2_token")
	require.NoError(t, err)
	assert.Equal(t, []byte("c"), got)
}
