package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/iudanet/riffle/pkg/api"
)

var riversUsage = "Usage: riffle rivers <save|list|delete|sites>"

func (c *Cli) runRivers(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. %s", riversUsage)
	}

	switch args[0] {
	case "save":
		return c.runRiversSave(ctx)
	case "list":
		return c.runRiversList(ctx)
	case "delete":
		return c.runRiversDelete(ctx, args[1:])
	case "sites":
		return c.runRiversSites(ctx, args[1:])
	default:
		return fmt.Errorf("unknown subcommand: %s. %s", args[0], riversUsage)
	}
}

func (c *Cli) runRiversSave(ctx context.Context) error {
	accessToken, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Save River ===")
	c.io.Println()

	name, err := c.io.ReadInput("River name: ")
	if err != nil {
		return fmt.Errorf("failed to read river name: %w", err)
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("river name cannot be empty")
	}

	siteID, err := c.io.ReadInput("USGS site id (optional, see 'riffle rivers sites'): ")
	if err != nil {
		return fmt.Errorf("failed to read site id: %w", err)
	}

	notes, err := c.io.ReadInput("Notes (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read notes: %w", err)
	}

	result, err := c.apiClient.SaveRiver(ctx, accessToken, api.SaveRiverRequest{
		RiverName:  name,
		USGSSiteID: siteID,
		Notes:      notes,
	})
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ River saved!")
	c.io.Printf("River ID: %d\n", result.RiverID)

	return nil
}

func (c *Cli) runRiversList(ctx context.Context) error {
	accessToken, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	rivers, err := c.apiClient.ListRivers(ctx, accessToken)
	if err != nil {
		return fmt.Errorf("failed to list rivers: %w", err)
	}

	c.io.Println("=== Saved Rivers ===")
	c.io.Println()

	if len(rivers) == 0 {
		c.io.Println("No saved rivers. Run 'riffle rivers save' to add one.")
		return nil
	}

	for i := range rivers {
		r := &rivers[i]
		c.io.Printf("#%d %s", r.ID, r.RiverName)
		if r.USGSSiteID != "" {
			c.io.Printf(" (site %s)", r.USGSSiteID)
		}
		c.io.Println()
		if r.Notes != "" {
			c.io.Printf("    %s\n", r.Notes)
		}
	}

	return nil
}

func (c *Cli) runRiversDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing river id. Usage: riffle rivers delete <id>")
	}

	riverID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid river id: %s", args[0])
	}

	accessToken, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	if err := c.apiClient.DeleteRiver(ctx, accessToken, riverID); err != nil {
		return err
	}

	c.io.Printf("✓ River #%d deleted.\n", riverID)
	return nil
}

func (c *Cli) runRiversSites(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("rivers sites", flag.ContinueOnError)
	lat := flags.Float64("lat", defaultLat, "latitude")
	lon := flags.Float64("lon", defaultLon, "longitude")
	if err := flags.Parse(args); err != nil {
		return err
	}

	sites, err := c.apiClient.SearchSites(ctx, *lat, *lon)
	if err != nil {
		return fmt.Errorf("failed to search sites: %w", err)
	}

	c.io.Println("=== USGS Sites Nearby ===")
	c.io.Println()

	if len(sites) == 0 {
		c.io.Println("No monitoring sites found near this point.")
		return nil
	}

	for _, s := range sites {
		c.io.Printf("%s  %s (%.4f, %.4f)\n", s.SiteID, s.Name, s.Lat, s.Lon)
	}

	return nil
}
