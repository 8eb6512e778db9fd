package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/riffle/internal/client/notify"
)

// runWatch держит процесс в фоне: наблюдатель связи и триггер
// синхронизации работают до Ctrl+C
func (c *Cli) runWatch(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	unsubscribe := c.broadcaster.Subscribe(func(msg notify.Message) {
		if msg.Type == notify.MessageSyncComplete && msg.Count > 0 {
			c.io.Printf("✓ Sync complete: %d entr%s uploaded\n", msg.Count, pluralIES(msg.Count))
		}
	})
	defer unsubscribe()

	offOnline := c.observer.OnOnline(func() {
		c.io.Println("Server reachable, sync scheduled.")
	})
	defer offOnline()

	offOffline := c.observer.OnOffline(func() {
		c.io.Println("⚠️  Server unreachable. New entries will queue locally.")
	})
	defer offOffline()

	c.io.Println("=== Watch ===")
	c.io.Println("Watching connectivity and the local queue. Press Ctrl+C to stop.")
	c.io.Println()

	errC := make(chan error, 2)
	go func() { errC <- c.observer.Run(ctx) }()
	go func() { errC <- c.trigger.Run(ctx) }()

	// Сразу пробуем отправить то, что накопилось offline
	c.trigger.RequestSync()

	err := <-errC
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	c.io.Println()
	c.io.Println("Stopped.")
	return nil
}
