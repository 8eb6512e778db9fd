package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/riffle/internal/client/sync"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")

	accessToken, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	pending, err := c.syncService.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to read the pending queue: %w", err)
	}
	if pending == 0 {
		c.io.Println()
		c.io.Println("✓ Nothing to sync, the local queue is empty.")
		return nil
	}

	c.io.Println()
	c.io.Printf("Uploading %d queued entr%s...\n", pending, pluralIES(pending))

	result, err := c.syncService.SyncPendingEntries(ctx, accessToken)
	if err != nil {
		if errors.Is(err, sync.ErrSyncInProgress) {
			c.io.Println("A sync batch is already running, try again in a moment.")
			return nil
		}
		return fmt.Errorf("synchronization failed: %w", err)
	}

	c.io.Println()
	c.io.Printf("✓ Uploaded: %d\n", len(result.Synced))

	if len(result.Failed) > 0 {
		c.io.Printf("⚠️  Still queued: %d\n", len(result.Failed))
		for _, f := range result.Failed {
			c.io.Printf("  [queued #%d] %s: %v\n", f.Entry.LocalID, f.Entry.Payload.Title, f.Err)
			if !f.Retryable {
				c.io.Println("    This entry will likely fail the same way on retry.")
			}
		}
	} else {
		c.io.Println("Your journal is now synchronized with the server.")
	}

	return nil
}
