package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/iudanet/riffle/pkg/api"
)

func (c *Cli) runAdd(ctx context.Context) error {
	accessToken, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Add Journal Entry ===")
	c.io.Println()

	title, err := c.io.ReadInput("Title (e.g., 'Morning on the Platte'): ")
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title cannot be empty")
	}

	river, err := c.io.ReadInput("River (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read river: %w", err)
	}

	species, err := c.io.ReadInput("Species (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read species: %w", err)
	}

	caughtStr, err := c.io.ReadInput("Fish caught (default 0): ")
	if err != nil {
		return fmt.Errorf("failed to read fish count: %w", err)
	}
	fishCaught := 0
	if caughtStr != "" {
		fishCaught, err = strconv.Atoi(caughtStr)
		if err != nil || fishCaught < 0 {
			return fmt.Errorf("fish caught must be a non-negative number")
		}
	}

	flies, err := c.io.ReadInput("Flies used (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read flies: %w", err)
	}

	notes, err := c.io.ReadInput("Notes (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read notes: %w", err)
	}

	public, err := c.io.ReadInput("Share to community feed? (y/N): ")
	if err != nil {
		return fmt.Errorf("failed to read answer: %w", err)
	}

	payload := api.EntryPayload{
		Title:      title,
		RiverName:  river,
		Species:    species,
		FishCaught: fishCaught,
		FliesUsed:  flies,
		Content:    notes,
		IsPublic:   strings.EqualFold(public, "y") || strings.EqualFold(public, "yes"),
	}

	// Свежая проверка достижимости, чтобы не класть запись в очередь
	// при живом соединении
	c.observer.CheckNow(ctx)

	result, err := c.dataService.AddEntry(ctx, accessToken, payload)
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Upgrade {
			c.io.Println()
			c.io.Printf("✗ %s\n", apiErr.Message)
			c.io.Println("Upgrade to Pro for unlimited journal entries.")
			return fmt.Errorf("free tier limit reached")
		}
		return err
	}

	c.io.Println()
	if result.Queued {
		c.io.Println("⚠️  Server unreachable. Entry saved to the local queue.")
		c.io.Printf("Local ID: %d\n", result.LocalID)
		c.io.Println("It will upload automatically, or run 'riffle sync'.")
	} else {
		c.io.Println("✓ Entry saved!")
		c.io.Printf("Entry ID: %d\n", result.EntryID)
	}

	return nil
}
