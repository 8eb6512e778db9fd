package storage

import (
	"context"
	"time"

	"github.com/iudanet/riffle/internal/models"
)

// JournalStorage defines interface for journal entry persistence
type JournalStorage interface {
	// CreateEntry inserts a journal entry and returns its id.
	// When the entry carries a client_ref that was already accepted for
	// this user, no new row is written and the existing id is returned
	// with duplicate=true. Offline clients resubmit the same entry after
	// an unacknowledged upload, the ref keeps the journal free of copies.
	CreateEntry(ctx context.Context, entry *models.JournalEntry) (id int64, duplicate bool, err error)

	// FindEntryByClientRef reports whether the user already has an entry
	// with the given idempotency key, and its id when so
	FindEntryByClientRef(ctx context.Context, userID, clientRef string) (id int64, found bool, err error)

	// GetEntry retrieves a single entry owned by the user
	// Returns ErrEntryNotFound if entry doesn't exist
	GetEntry(ctx context.Context, userID string, entryID int64) (*models.JournalEntry, error)

	// ListUserEntries retrieves the user's entries ordered by trip date
	// descending. Returns empty slice if no entries found
	ListUserEntries(ctx context.Context, userID string, limit, offset int) ([]models.JournalEntry, error)

	// ListPublicEntries retrieves public entries of all users with the
	// author name attached
	ListPublicEntries(ctx context.Context, limit, offset int) ([]models.JournalEntry, error)

	// UpdateEntry replaces the mutable fields of an entry owned by the user
	// Returns ErrEntryNotFound if entry doesn't exist
	UpdateEntry(ctx context.Context, userID string, entryID int64, entry *models.JournalEntry) error

	// DeleteEntry deletes an entry owned by the user
	// Returns ErrEntryNotFound if entry doesn't exist
	DeleteEntry(ctx context.Context, userID string, entryID int64) error

	// CountEntriesSince counts the user's entries created at or after
	// the given moment. Used for the free tier monthly quota
	CountEntriesSince(ctx context.Context, userID string, since time.Time) (int, error)
}
