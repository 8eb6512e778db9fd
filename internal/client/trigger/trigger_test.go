package trigger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/riffle/internal/client/notify"
	"github.com/iudanet/riffle/internal/client/sync"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeEvents records the OnOnline subscription and lets tests fire the edge.
type fakeEvents struct {
	handler func()
}

func (f *fakeEvents) OnOnline(fn func()) func() {
	f.handler = fn
	return func() { f.handler = nil }
}

func (f *fakeEvents) fireOnline() {
	if f.handler != nil {
		f.handler()
	}
}

func staticToken(token string) TokenFunc {
	return func(ctx context.Context) (string, error) {
		return token, nil
	}
}

func TestTrigger_ManualRequestRunsBatch(t *testing.T) {
	synced := make(chan int, 1)

	svc := &sync.ServiceMock{
		SyncPendingEntriesFunc: func(ctx context.Context, accessToken string) (*sync.SyncResult, error) {
			result := &sync.SyncResult{}
			synced <- len(result.Synced)
			return result, nil
		},
	}

	events := &fakeEvents{}
	b := notify.NewBroadcaster()

	tr := New(TaskSyncJournal, svc, events, b, staticToken("token"), time.Hour, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		_ = tr.Run(ctx)
		close(done)
	}()

	tr.RequestSync()

	select {
	case <-synced:
	case <-time.After(2 * time.Second):
		t.Fatal("sync was not triggered by manual request")
	}

	cancel()
	<-done
}

func TestTrigger_OnlineEdgeTriggersSync(t *testing.T) {
	ran := make(chan struct{}, 1)

	svc := &sync.ServiceMock{
		SyncPendingEntriesFunc: func(ctx context.Context, accessToken string) (*sync.SyncResult, error) {
			ran <- struct{}{}
			return &sync.SyncResult{}, nil
		},
	}

	events := &fakeEvents{}
	b := notify.NewBroadcaster()

	tr := New(TaskSyncJournal, svc, events, b, staticToken("token"), time.Hour, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() { _ = tr.Run(ctx) }()

	// Ждем пока Run подпишется на edge
	require.Eventually(t, func() bool { return events.handler != nil }, 2*time.Second, 10*time.Millisecond)

	events.fireOnline()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("sync was not triggered by becameOnline edge")
	}
}

func TestTrigger_BroadcastsSyncComplete(t *testing.T) {
	// Прямой вызов runOnce: проверяем форму сообщения
	svc := &sync.ServiceMock{
		SyncPendingEntriesFunc: func(ctx context.Context, accessToken string) (*sync.SyncResult, error) {
			return &sync.SyncResult{}, nil
		},
	}

	events := &fakeEvents{}
	b := notify.NewBroadcaster()

	messages := make(chan notify.Message, 1)
	b.Subscribe(func(m notify.Message) { messages <- m })

	tr := New(TaskSyncJournal, svc, events, b, staticToken("token"), time.Hour, testLogger())
	tr.runOnce(context.Background())

	select {
	case msg := <-messages:
		assert.Equal(t, notify.MessageSyncComplete, msg.Type)
		assert.Equal(t, 0, msg.Count)
	default:
		t.Fatal("no broadcast after completed batch")
	}
}

func TestTrigger_NoBroadcastOnError(t *testing.T) {
	svc := &sync.ServiceMock{
		SyncPendingEntriesFunc: func(ctx context.Context, accessToken string) (*sync.SyncResult, error) {
			return nil, errors.New("storage unavailable")
		},
	}

	events := &fakeEvents{}
	b := notify.NewBroadcaster()

	var got []notify.Message
	b.Subscribe(func(m notify.Message) { got = append(got, m) })

	tr := New(TaskSyncJournal, svc, events, b, staticToken("token"), time.Hour, testLogger())
	tr.runOnce(context.Background())

	assert.Empty(t, got)
}

func TestTrigger_SkipsWhenSyncInProgress(t *testing.T) {
	svc := &sync.ServiceMock{
		SyncPendingEntriesFunc: func(ctx context.Context, accessToken string) (*sync.SyncResult, error) {
			return nil, sync.ErrSyncInProgress
		},
	}

	events := &fakeEvents{}
	b := notify.NewBroadcaster()

	var got []notify.Message
	b.Subscribe(func(m notify.Message) { got = append(got, m) })

	tr := New(TaskSyncJournal, svc, events, b, staticToken("token"), time.Hour, testLogger())
	tr.runOnce(context.Background())

	assert.Empty(t, got)
}

func TestTrigger_SkipsWithoutSession(t *testing.T) {
	svc := &sync.ServiceMock{}

	events := &fakeEvents{}
	b := notify.NewBroadcaster()

	noSession := func(ctx context.Context) (string, error) {
		return "", errors.New("not logged in")
	}

	tr := New(TaskSyncJournal, svc, events, b, noSession, time.Hour, testLogger())
	tr.runOnce(context.Background())

	// SyncPendingEntries не вызывался
	assert.Empty(t, svc.SyncPendingEntriesCalls())
}

func TestTrigger_RearmsAfterFailure(t *testing.T) {
	attempts := make(chan struct{}, 2)

	svc := &sync.ServiceMock{
		SyncPendingEntriesFunc: func(ctx context.Context, accessToken string) (*sync.SyncResult, error) {
			attempts <- struct{}{}
			return nil, errors.New("boom")
		},
	}

	events := &fakeEvents{}
	b := notify.NewBroadcaster()

	tr := New(TaskSyncJournal, svc, events, b, staticToken("token"), time.Hour, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() { _ = tr.Run(ctx) }()

	// Первая попытка падает, повторный запрос все равно обрабатывается
	tr.RequestSync()
	select {
	case <-attempts:
	case <-time.After(2 * time.Second):
		t.Fatal("first attempt did not run")
	}

	tr.RequestSync()
	select {
	case <-attempts:
	case <-time.After(2 * time.Second):
		t.Fatal("trigger did not re-arm after failed attempt")
	}
}

func TestTrigger_Name(t *testing.T) {
	tr := New(TaskSyncJournal, &sync.ServiceMock{}, &fakeEvents{}, notify.NewBroadcaster(), staticToken(""), time.Hour, testLogger())
	assert.Equal(t, "sync-journal", tr.Name())
}
