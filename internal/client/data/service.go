package data

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/riffle/internal/client/storage"
	"github.com/iudanet/riffle/pkg/api"
)

//go:generate moq -out journal_mock.go . JournalAPI

// JournalAPI is the slice of the server API the facade needs.
type JournalAPI interface {
	CreateEntry(ctx context.Context, accessToken string, payload api.EntryPayload) (*api.CreateEntryResponse, error)
	ListEntries(ctx context.Context, accessToken string, limit, offset int) ([]api.Entry, error)
}

// Online reports the current reachability heuristic.
type Online interface {
	IsOnline() bool
}

// AddResult describes where a newly written entry ended up.
type AddResult struct {
	// EntryID is the server-assigned id when the entry was submitted
	// directly. Zero when queued.
	EntryID int64
	// LocalID is the queue id when the entry was stored locally.
	LocalID uint64
	// Queued is true when the entry went to the local queue instead of
	// the server.
	Queued bool
}

// Entries is a combined read: the last known server snapshot plus
// everything still waiting in the local queue.
type Entries struct {
	Cached  []api.Entry
	Pending []storage.PendingEntry
	// FromCache is true when the server could not be reached and the
	// snapshot may be stale.
	FromCache bool
}

// Service is the write-through/read-through facade over the server API and
// the local store. Writes prefer the server and fall back to the queue,
// reads prefer the server and fall back to the cache. Callers never branch
// on connectivity themselves.
type Service struct {
	api    JournalAPI
	queue  storage.QueueStorage
	cache  storage.CacheStorage
	online Online
	logger *slog.Logger
}

func NewService(
	journalAPI JournalAPI,
	queue storage.QueueStorage,
	cache storage.CacheStorage,
	online Online,
	logger *slog.Logger,
) *Service {
	return &Service{
		api:    journalAPI,
		queue:  queue,
		cache:  cache,
		online: online,
		logger: logger,
	}
}

// AddEntry writes a journal entry. Online it goes straight to the server;
// offline, or when the submit fails with a transport error, it is queued
// locally for the next sync. A server-side rejection (quota, validation)
// is returned to the caller as-is: queueing it would just fail again.
func (s *Service) AddEntry(ctx context.Context, accessToken string, payload api.EntryPayload) (*AddResult, error) {
	if s.online.IsOnline() {
		resp, err := s.api.CreateEntry(ctx, accessToken, payload)
		if err == nil {
			return &AddResult{EntryID: resp.EntryID}, nil
		}

		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			return nil, err
		}

		// Сервер недоступен, падаем в очередь
		s.logger.Debug("direct submit failed, queueing entry", "error", err)
	}

	localID, err := s.queue.EnqueuePending(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("enqueue entry: %w", err)
	}

	return &AddResult{LocalID: localID, Queued: true}, nil
}

// ListEntries reads the user's journal. Online it fetches from the server
// and refreshes the local snapshot; when the fetch fails the last snapshot
// is served instead. Pending queue items are always included so the user
// sees their own unsynced writes.
func (s *Service) ListEntries(ctx context.Context, accessToken string, limit, offset int) (*Entries, error) {
	pending, err := s.queue.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending: %w", err)
	}

	if s.online.IsOnline() {
		entries, err := s.api.ListEntries(ctx, accessToken, limit, offset)
		if err == nil {
			if cacheErr := s.cache.ReplaceCache(ctx, entries); cacheErr != nil {
				// Некритично: снапшот устареет, но ответ корректный
				s.logger.Warn("cache refresh failed", "error", cacheErr)
			}
			return &Entries{Cached: entries, Pending: pending}, nil
		}
		s.logger.Debug("server fetch failed, serving cache", "error", err)
	}

	cached, err := s.cache.ListCache(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cache: %w", err)
	}

	return &Entries{Cached: cached, Pending: pending, FromCache: true}, nil
}

// PendingCount reports how many entries wait in the local queue.
func (s *Service) PendingCount(ctx context.Context) (int, error) {
	return s.queue.PendingCount(ctx)
}
