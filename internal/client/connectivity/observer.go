package connectivity

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sethvargo/go-retry"
)

//go:generate moq -out pinger_mock.go . Pinger

// Pinger проверяет достижимость сервера. Реализуется API клиентом.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Observer tracks whether the server is reachable and notifies subscribers
// on transitions. The state is a heuristic: a positive IsOnline does not
// guarantee the next call succeeds, callers still handle call-level failures.
type Observer struct {
	pinger    Pinger
	logger    *slog.Logger
	onOnline  map[int]func()
	onOffline map[int]func()
	interval  time.Duration
	nextID    int
	mu        sync.Mutex
	online    atomic.Bool
}

// NewObserver creates a connectivity observer that probes the server health
// endpoint every interval.
func NewObserver(pinger Pinger, interval time.Duration, logger *slog.Logger) *Observer {
	return &Observer{
		pinger:    pinger,
		logger:    logger,
		interval:  interval,
		onOnline:  make(map[int]func()),
		onOffline: make(map[int]func()),
	}
}

// IsOnline returns the last known reachability state. Instantaneous and
// non-blocking.
func (o *Observer) IsOnline() bool {
	return o.online.Load()
}

// OnOnline subscribes to the becameOnline edge. The handler fires at most
// once per offline->online transition. Returns an unsubscribe func.
func (o *Observer) OnOnline(fn func()) func() {
	return o.subscribe(o.onOnline, fn)
}

// OnOffline subscribes to the becameOffline edge.
func (o *Observer) OnOffline(fn func()) func() {
	return o.subscribe(o.onOffline, fn)
}

func (o *Observer) subscribe(m map[int]func(), fn func()) func() {
	o.mu.Lock()
	defer o.mu.Unlock()

	id := o.nextID
	o.nextID++
	m[id] = fn

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		delete(m, id)
	}
}

// Run owns the reachability state: an immediate probe fixes the initial
// value, then the loop re-probes every interval until ctx is done.
func (o *Observer) Run(ctx context.Context) error {
	o.CheckNow(ctx)

	ticker := time.NewTicker(o.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			o.CheckNow(ctx)
		}
	}
}

// CheckNow performs a single reachability probe and updates the state.
// A transient probe failure is retried briefly before declaring offline,
// so a single dropped packet does not flap the state.
func (o *Observer) CheckNow(ctx context.Context) bool {
	backoff := retry.WithMaxRetries(2, retry.NewConstant(500*time.Millisecond))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := o.pinger.Ping(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})

	online := err == nil
	o.setOnline(online)
	return online
}

// setOnline updates the state and fires edge subscribers on transitions only.
func (o *Observer) setOnline(online bool) {
	prev := o.online.Swap(online)
	if prev == online {
		return
	}

	o.mu.Lock()
	var handlers []func()
	if online {
		for _, fn := range o.onOnline {
			handlers = append(handlers, fn)
		}
	} else {
		for _, fn := range o.onOffline {
			handlers = append(handlers, fn)
		}
	}
	o.mu.Unlock()

	if online {
		o.logger.Info("connectivity restored")
	} else {
		o.logger.Info("connectivity lost")
	}

	// Подписчики вызываются вне lock: обработчик может отписаться изнутри
	for _, fn := range handlers {
		fn()
	}
}
