package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/iudanet/riffle/internal/client/storage"
	"github.com/iudanet/riffle/pkg/api"
)

// EnqueuePending persists a new pending entry and returns its local id.
// The id comes from the bucket sequence: monotonically increasing, never
// reused, so ascending key order is creation order.
func (s *Storage) EnqueuePending(ctx context.Context, payload api.EntryPayload) (uint64, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	// client_ref присваивается один раз при постановке в очередь: при
	// повторных отправках той же записи сервер дедуплицирует по нему.
	if payload.ClientRef == "" {
		payload.ClientRef = uuid.New().String()
	}

	var localID uint64

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			return storage.ErrStorageClosed
		}

		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to get next sequence: %w", err)
		}

		entry := storage.PendingEntry{
			LocalID:   seq,
			CreatedAt: time.Now(),
			Payload:   payload,
			Synced:    false,
		}

		data, err := json.Marshal(&entry)
		if err != nil {
			return fmt.Errorf("failed to marshal pending entry: %w", err)
		}

		if err := bucket.Put(itob(seq), data); err != nil {
			return fmt.Errorf("failed to save pending entry: %w", err)
		}

		localID = seq
		return nil
	})

	if err != nil {
		return 0, wrapWriteErr(err)
	}

	return localID, nil
}

// ListPending returns all pending entries, oldest first.
func (s *Storage) ListPending(ctx context.Context) ([]storage.PendingEntry, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var entries []storage.PendingEntry

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			return nil
		}

		// Ключи big-endian, поэтому порядок курсора = порядок создания
		return bucket.ForEach(func(k, v []byte) error {
			var entry storage.PendingEntry
			if err := json.Unmarshal(v, &entry); err != nil {
				return fmt.Errorf("failed to unmarshal pending entry: %w", err)
			}
			entries = append(entries, entry)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list pending entries: %w", err)
	}

	return entries, nil
}

// RemovePending deletes a pending entry by local id. Deleting an id that is
// not present is a no-op.
func (s *Storage) RemovePending(ctx context.Context, localID uint64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			return nil
		}
		// bbolt Delete на отсутствующем ключе не возвращает ошибку
		return bucket.Delete(itob(localID))
	})

	if err != nil {
		return wrapWriteErr(fmt.Errorf("failed to remove pending entry: %w", err))
	}

	return nil
}

// PendingCount returns the number of queued entries.
func (s *Storage) PendingCount(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var count int

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			return nil
		}
		count = bucket.Stats().KeyN
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to count pending entries: %w", err)
	}

	return count, nil
}
