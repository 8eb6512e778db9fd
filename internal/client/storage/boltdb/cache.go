package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/riffle/internal/client/storage"
	"github.com/iudanet/riffle/pkg/api"
)

// ReplaceCache atomically replaces the cached snapshot of server entries.
// Drop and repopulate happen inside one Update transaction: if anything
// fails, bolt rolls back and the previous snapshot stays intact.
func (s *Storage) ReplaceCache(ctx context.Context, entries []api.Entry) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketCache); err != nil && err != bbolt.ErrBucketNotFound {
			return fmt.Errorf("failed to delete cache bucket: %w", err)
		}

		bucket, err := tx.CreateBucket(bucketCache)
		if err != nil {
			return fmt.Errorf("failed to create cache bucket: %w", err)
		}

		for i := range entries {
			data, err := json.Marshal(&entries[i])
			if err != nil {
				return fmt.Errorf("failed to marshal cached entry: %w", err)
			}
			if err := bucket.Put(itob(uint64(entries[i].ID)), data); err != nil {
				return fmt.Errorf("failed to save cached entry: %w", err)
			}
		}

		return nil
	})

	if err != nil {
		return wrapWriteErr(err)
	}

	return nil
}

// ListCache returns the last-known-good snapshot, ordered by server id.
func (s *Storage) ListCache(ctx context.Context) ([]api.Entry, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var entries []api.Entry

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCache)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var entry api.Entry
			if err := json.Unmarshal(v, &entry); err != nil {
				return fmt.Errorf("failed to unmarshal cached entry: %w", err)
			}
			entries = append(entries, entry)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list cached entries: %w", err)
	}

	return entries, nil
}
