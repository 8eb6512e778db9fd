package storage

import "errors"

// Common client storage errors
var (
	// ErrSessionNotFound indicates that no saved session exists (not logged in)
	ErrSessionNotFound = errors.New("session not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")

	// ErrStorageFull indicates that the local database cannot accept more data
	// (disk full or quota exceeded). Callers must treat this as non-fatal:
	// warn the user that the entry was not saved, do not crash.
	ErrStorageFull = errors.New("local storage full")
)
