package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/riffle/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	session, err := c.authStore.GetSession(ctx)
	switch {
	case errors.Is(err, storage.ErrSessionNotFound):
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'riffle login' to authenticate.")
	case err != nil:
		return fmt.Errorf("failed to load session: %w", err)
	default:
		expiresAt := time.Unix(session.ExpiresAt, 0)
		remaining := time.Until(expiresAt)

		c.io.Println("Status: Authenticated")
		c.io.Printf("Email: %s\n", session.Email)
		c.io.Printf("Subscription: %s\n", session.Subscription)
		c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))

		if remaining > 0 {
			c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
		} else {
			c.io.Println("⚠️  Token has expired. Please login again.")
		}
	}

	// Разовая проверка достижимости вместо фонового наблюдателя
	c.io.Println()
	if c.observer.CheckNow(ctx) {
		c.io.Println("Server: reachable")
	} else {
		c.io.Println("Server: unreachable (entries will be queued locally)")
	}

	pendingCount, err := c.syncService.PendingCount(ctx)
	if err != nil {
		c.io.Printf("\nWarning: Failed to get pending count: %v\n", err)
		return nil
	}

	c.io.Println()
	if pendingCount > 0 {
		c.io.Printf("⚠️  Pending upload: %d entr%s waiting in the local queue\n",
			pendingCount, pluralIES(pendingCount))
		c.io.Println("Run 'riffle sync' to upload them now.")
	} else {
		c.io.Println("✓ All entries synchronized with server")
	}

	return nil
}

func pluralIES(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
