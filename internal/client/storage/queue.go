package storage

import (
	"context"
	"time"

	"github.com/iudanet/riffle/pkg/api"
)

//go:generate moq -out queue_mock.go . QueueStorage

// PendingEntry представляет запись журнала, созданную offline и еще не
// подтвержденную сервером. Запись неизменяема: она либо лежит в очереди,
// либо удаляется после успешной отправки.
type PendingEntry struct {
	CreatedAt time.Time        `json:"created_at"` // локальные часы устройства
	Payload   api.EntryPayload `json:"payload"`
	LocalID   uint64           `json:"local_id"` // монотонный локальный id, не переиспользуется
	Synced    bool             `json:"synced"`   // всегда false пока запись в очереди
}

// QueueStorage defines the durable queue of entries awaiting upload.
// An entry exists in the queue if and only if the server has not yet
// acknowledged it.
type QueueStorage interface {
	// EnqueuePending assigns a new local id, stamps created_at and a
	// client_ref idempotency key, and persists the entry.
	EnqueuePending(ctx context.Context, payload api.EntryPayload) (uint64, error)

	// ListPending returns all pending entries ordered by creation time
	// ascending. This ordering is the retry order.
	ListPending(ctx context.Context) ([]PendingEntry, error)

	// RemovePending deletes an entry after a confirmed upload.
	// Removing a non-existent id is a no-op, not an error.
	RemovePending(ctx context.Context, localID uint64) error

	// PendingCount returns the number of queued entries.
	PendingCount(ctx context.Context) (int, error)
}
