package storage

import (
	"context"

	"github.com/iudanet/riffle/pkg/api"
)

//go:generate moq -out cache_mock.go . CacheStorage

// CacheStorage defines the read-through mirror of server-side entries,
// used only to serve reads while offline. The cached set is a full
// replacement snapshot of the last successful fetch, never merged
// field-by-field.
type CacheStorage interface {
	// ReplaceCache atomically clears and repopulates the cached set in a
	// single transaction. Partial failure leaves the prior snapshot intact.
	ReplaceCache(ctx context.Context, entries []api.Entry) error

	// ListCache returns the last-known-good snapshot ordered by server id.
	ListCache(ctx context.Context) ([]api.Entry, error)
}
