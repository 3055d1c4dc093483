package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that an active user with this email already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrTodoNotFound indicates that todo was not found for the given owner
	ErrTodoNotFound = errors.New("todo not found")
)
