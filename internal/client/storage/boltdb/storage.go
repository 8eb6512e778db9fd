package boltdb

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"syscall"

	"go.etcd.io/bbolt"

	"github.com/iudanet/riffle/internal/client/storage"
)

var (
	// BoltDB bucket names
	bucketPending = []byte("pending-entries")
	bucketCache   = []byte("cached-entries")
	bucketAuth    = []byte("auth")
	bucketMeta    = []byte("meta")

	keySchemaVersion = []byte("schema_version")
)

// schemaVersion is the current on-disk layout version. A bump requires a
// migration step in migrate() that preserves pending entries: unsynced user
// data must never be dropped on upgrade.
const schemaVersion uint64 = 1

// Storage represents BoltDB storage implementation for the offline client
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db}

	if err := s.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketPending, bucketCache, bucketAuth, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

// migrate brings the on-disk layout up to schemaVersion. Migrations operate
// on the pending bucket in place and must keep every queued entry readable.
func (s *Storage) migrate() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		meta := tx.Bucket(bucketMeta)

		current := uint64(0)
		if v := meta.Get(keySchemaVersion); v != nil {
			current = binary.BigEndian.Uint64(v)
		}

		if current > schemaVersion {
			return fmt.Errorf("database schema version %d is newer than supported %d", current, schemaVersion)
		}

		// Версия 0 -> 1: начальная разметка, данных для переноса нет.
		// Будущие шаги добавляются сюда по одному, последовательно.

		return meta.Put(keySchemaVersion, itob(schemaVersion))
	})
}

// itob converts an id to a big-endian byte slice so that bolt's
// lexicographic key order matches numeric order.
func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

// wrapWriteErr maps low-level write failures to storage sentinel errors.
func wrapWriteErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, syscall.ENOSPC) {
		return fmt.Errorf("%w: %v", storage.ErrStorageFull, err)
	}
	return err
}
