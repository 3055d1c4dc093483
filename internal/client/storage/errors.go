package storage

import "errors"

var (
	// ErrItemNotFound возвращается когда записи нет в локальном хранилище
	ErrItemNotFound = errors.New("item not found")
)
