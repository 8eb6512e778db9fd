package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/riffle/pkg/api"
)

const (
	listLimit       = 50
	publicFeedLimit = 20
)

func (c *Cli) runList(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "public" {
		return c.runListPublic(ctx)
	}
	return c.runListOwn(ctx)
}

func (c *Cli) runListOwn(ctx context.Context) error {
	accessToken, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Journal ===")
	c.io.Println()

	c.observer.CheckNow(ctx)

	entries, err := c.dataService.ListEntries(ctx, accessToken, listLimit, 0)
	if err != nil {
		return fmt.Errorf("failed to list entries: %w", err)
	}

	if entries.FromCache {
		c.io.Println("⚠️  Server unreachable, showing the last known snapshot.")
		c.io.Println()
	}

	if len(entries.Cached) == 0 && len(entries.Pending) == 0 {
		c.io.Println("No entries yet. Run 'riffle add' to log your first trip.")
		return nil
	}

	for i := range entries.Cached {
		c.printEntry(&entries.Cached[i])
	}

	if len(entries.Pending) > 0 {
		c.io.Println()
		c.io.Printf("Pending upload (%d):\n", len(entries.Pending))
		for _, p := range entries.Pending {
			c.io.Printf("  [queued #%d] %s", p.LocalID, p.Payload.Title)
			if p.Payload.RiverName != "" {
				c.io.Printf(", %s", p.Payload.RiverName)
			}
			c.io.Printf(" (%s)\n", p.CreatedAt.Format("2006-01-02"))
		}
		c.io.Println("Run 'riffle sync' to upload them now.")
	}

	return nil
}

func (c *Cli) runListPublic(ctx context.Context) error {
	c.io.Println("=== Community Feed ===")
	c.io.Println()

	entries, err := c.apiClient.ListPublicEntries(ctx, publicFeedLimit, 0)
	if err != nil {
		return fmt.Errorf("failed to load the community feed: %w", err)
	}

	if len(entries) == 0 {
		c.io.Println("No public entries yet.")
		return nil
	}

	for i := range entries {
		e := &entries[i]
		c.io.Printf("#%d %s", e.ID, e.Title)
		if e.Author != "" {
			c.io.Printf(" by %s", e.Author)
		}
		c.io.Println()
		c.printEntryDetails(e)
	}

	return nil
}

func (c *Cli) printEntry(e *api.Entry) {
	c.io.Printf("#%d %s\n", e.ID, e.Title)
	c.printEntryDetails(e)
}

func (c *Cli) printEntryDetails(e *api.Entry) {
	if e.RiverName != "" {
		c.io.Printf("    River: %s\n", e.RiverName)
	}
	if e.Species != "" || e.FishCaught > 0 {
		c.io.Printf("    Caught: %d %s\n", e.FishCaught, e.Species)
	}
	if e.FliesUsed != "" {
		c.io.Printf("    Flies: %s\n", e.FliesUsed)
	}
	date := e.TripDate
	if date == "" {
		date = e.CreatedAt.Format(time.DateOnly)
	}
	c.io.Printf("    Date: %s\n", date)
}
