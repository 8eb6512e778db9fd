package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this email already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrEntryNotFound indicates that journal entry was not found
	ErrEntryNotFound = errors.New("entry not found")

	// ErrRiverNotFound indicates that saved river was not found
	ErrRiverNotFound = errors.New("river not found")
)
