package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrInvalidRecord indicates a record that cannot be stored (empty id, unknown collection)
	ErrInvalidRecord = errors.New("invalid record")

	// ErrRevisionConflict indicates that the stored record changed after the base revision
	// the client wrote against
	ErrRevisionConflict = errors.New("record changed on server")
)
