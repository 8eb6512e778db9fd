package trigger

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/iudanet/riffle/internal/client/notify"
	"github.com/iudanet/riffle/internal/client/sync"
)

// TaskSyncJournal is the background task tag the host wires wake-ups to.
const TaskSyncJournal = "sync-journal"

// OnlineEvents is the slice of the connectivity observer the trigger needs:
// the becameOnline edge.
type OnlineEvents interface {
	OnOnline(fn func()) func()
}

// TokenFunc returns the current access token, or an error when the user is
// not logged in (in which case the attempt is skipped, not failed).
type TokenFunc func(ctx context.Context) (string, error)

// Trigger runs sync batches without an open UI: it wakes on connectivity
// restoration, on a periodic interval, and on explicit RequestSync calls.
// Each attempt is awaited to completion and the trigger re-arms afterwards
// regardless of outcome, so one failed attempt never disables future retries.
type Trigger struct {
	syncSvc     sync.Service
	events      OnlineEvents
	broadcaster *notify.Broadcaster
	tokenFn     TokenFunc
	logger      *slog.Logger
	requestC    chan struct{}
	name        string
	interval    time.Duration
}

// New registers interest in the named background task and returns the
// capability object used to request wake-ups.
func New(name string, syncSvc sync.Service, events OnlineEvents, broadcaster *notify.Broadcaster, tokenFn TokenFunc, interval time.Duration, logger *slog.Logger) *Trigger {
	return &Trigger{
		name:        name,
		syncSvc:     syncSvc,
		events:      events,
		broadcaster: broadcaster,
		tokenFn:     tokenFn,
		interval:    interval,
		logger:      logger,
		requestC:    make(chan struct{}, 1),
	}
}

// Name returns the background task tag.
func (t *Trigger) Name() string {
	return t.name
}

// RequestSync asks for an immediate sync attempt ("sync now"). Non-blocking;
// if an attempt is already requested the call coalesces with it.
func (t *Trigger) RequestSync() {
	select {
	case t.requestC <- struct{}{}:
	default:
	}
}

// Run drives the trigger until ctx is done. On the becameOnline edge the
// queued entries usually become deliverable, so a sync attempt is requested
// immediately.
func (t *Trigger) Run(ctx context.Context) error {
	unsubscribe := t.events.OnOnline(func() {
		t.RequestSync()
	})
	defer unsubscribe()

	t.logger.Info("background trigger armed",
		slog.String("task", t.name),
		slog.Duration("interval", t.interval))

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			t.runOnce(ctx)
		case <-t.requestC:
			t.runOnce(ctx)
		}
	}
}

// runOnce executes one awaited sync attempt. Errors are logged and
// swallowed: the trigger stays armed either way.
func (t *Trigger) runOnce(ctx context.Context) {
	accessToken, err := t.tokenFn(ctx)
	if err != nil {
		t.logger.Debug("skipping background sync, no session", slog.Any("error", err))
		return
	}

	result, err := t.syncSvc.SyncPendingEntries(ctx, accessToken)
	if err != nil {
		if errors.Is(err, sync.ErrSyncInProgress) {
			t.logger.Debug("sync already running, skipping attempt")
			return
		}
		t.logger.Warn("background sync attempt failed", slog.Any("error", err))
		return
	}

	// Один broadcast на завершенный батч, count может быть нулевым
	t.broadcaster.Publish(notify.Message{
		Type:  notify.MessageSyncComplete,
		Count: len(result.Synced),
	})

	if len(result.Failed) > 0 {
		t.logger.Warn("some entries failed to sync",
			slog.Int("failed", len(result.Failed)),
			slog.Int("synced", len(result.Synced)))
	}
}
