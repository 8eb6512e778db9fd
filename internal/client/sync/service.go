package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iudanet/riffle/internal/client/storage"
	"github.com/iudanet/riffle/pkg/api"
)

// ErrSyncInProgress is returned when a sync batch is already running in
// this process. The caller simply tries again later; the queue is untouched.
var ErrSyncInProgress = errors.New("sync already in progress")

//go:generate moq -out submitter_mock.go . EntrySubmitter

// EntrySubmitter определяет часть API клиента, нужную движку синхронизации
type EntrySubmitter interface {
	CreateEntry(ctx context.Context, accessToken string, payload api.EntryPayload) (*api.CreateEntryResponse, error)
}

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс движка синхронизации
type Service interface {
	// SyncPendingEntries drains the pending queue against the server
	SyncPendingEntries(ctx context.Context, accessToken string) (*SyncResult, error)

	// PendingCount возвращает количество записей, ожидающих отправки
	PendingCount(ctx context.Context) (int, error)
}

// SyncResult contains the outcome of one sync batch. Every pending entry
// captured at batch start lands in exactly one of the two lists.
type SyncResult struct {
	Synced []storage.PendingEntry
	Failed []FailedEntry
}

// FailedEntry pairs a still-queued entry with the error that kept it queued.
// Retryable is advisory: non-retryable entries stay queued too and are
// retried on the next trigger, but the UI can warn that a retry will likely
// fail the same way (validation error, quota).
type FailedEntry struct {
	Err       error
	Entry     storage.PendingEntry
	Retryable bool
}

type service struct {
	queue     storage.QueueStorage
	submitter EntrySubmitter
	logger    *slog.Logger
	mu        sync.Mutex
}

// NewService creates a new sync service
func NewService(submitter EntrySubmitter, queue storage.QueueStorage, logger *slog.Logger) Service {
	return &service{
		submitter: submitter,
		queue:     queue,
		logger:    logger,
	}
}

// SyncPendingEntries submits queued entries to the server, oldest first,
// strictly sequentially. A confirmed entry is removed from the queue; a
// failed one is left untouched and the batch continues. Invocations are
// serialized in-process: an overlapping call gets ErrSyncInProgress instead
// of double-submitting the same entries.
func (s *service) SyncPendingEntries(ctx context.Context, accessToken string) (*SyncResult, error) {
	if !s.mu.TryLock() {
		return nil, ErrSyncInProgress
	}
	defer s.mu.Unlock()

	pending, err := s.queue.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending entries: %w", err)
	}

	result := &SyncResult{}
	if len(pending) == 0 {
		// Пустая очередь: ни одного сетевого вызова
		return result, nil
	}

	s.logger.Info("starting sync batch", slog.Int("pending", len(pending)))

	for _, entry := range pending {
		if err := ctx.Err(); err != nil {
			// Батч прерван: уже отправленные записи удалены, остальные
			// остаются в очереди до следующего запуска
			return result, fmt.Errorf("sync interrupted: %w", err)
		}

		resp, err := s.submitter.CreateEntry(ctx, accessToken, entry.Payload)
		if err != nil {
			failed := FailedEntry{Entry: entry, Err: err, Retryable: true}

			var apiErr *api.Error
			if errors.As(err, &apiErr) {
				failed.Retryable = apiErr.Retryable()
				s.logger.Warn("server rejected entry",
					slog.Uint64("local_id", entry.LocalID),
					slog.Int("status", apiErr.StatusCode),
					slog.String("error", apiErr.Message))
			} else {
				s.logger.Warn("failed to submit entry",
					slog.Uint64("local_id", entry.LocalID),
					slog.Any("error", err))
			}

			result.Failed = append(result.Failed, failed)
			continue
		}

		if resp.Duplicate {
			s.logger.Info("entry already accepted earlier, removing from queue",
				slog.Uint64("local_id", entry.LocalID),
				slog.Int64("entry_id", resp.EntryID))
		}

		if err := s.queue.RemovePending(ctx, entry.LocalID); err != nil {
			// Сервер запись принял, но локально удалить не удалось.
			// Запись будет отправлена повторно, сервер дедуплицирует
			// ее по client_ref.
			s.logger.Warn("failed to remove synced entry from queue",
				slog.Uint64("local_id", entry.LocalID),
				slog.Any("error", err))
		}

		result.Synced = append(result.Synced, entry)
	}

	s.logger.Info("sync batch completed",
		slog.Int("synced", len(result.Synced)),
		slog.Int("failed", len(result.Failed)))

	return result, nil
}

// PendingCount возвращает количество записей, ожидающих отправки
func (s *service) PendingCount(ctx context.Context) (int, error) {
	count, err := s.queue.PendingCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending entries: %w", err)
	}
	return count, nil
}
