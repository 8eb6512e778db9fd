package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/iudanet/riffle/pkg/api"
)

var hatchUsage = "Usage: riffle hatch <report|list>"

func (c *Cli) runHatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. %s", hatchUsage)
	}

	switch args[0] {
	case "report":
		return c.runHatchReport(ctx)
	case "list":
		return c.runHatchList(ctx, args[1:])
	default:
		return fmt.Errorf("unknown subcommand: %s. %s", args[0], hatchUsage)
	}
}

func (c *Cli) runHatchReport(ctx context.Context) error {
	accessToken, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Report a Hatch ===")
	c.io.Println()

	river, err := c.io.ReadInput("River: ")
	if err != nil {
		return fmt.Errorf("failed to read river: %w", err)
	}
	if strings.TrimSpace(river) == "" {
		return fmt.Errorf("river cannot be empty")
	}

	hatchType, err := c.io.ReadInput("Hatch type (e.g., 'BWO', 'PMD', 'Caddis'): ")
	if err != nil {
		return fmt.Errorf("failed to read hatch type: %w", err)
	}
	if strings.TrimSpace(hatchType) == "" {
		return fmt.Errorf("hatch type cannot be empty")
	}

	intensity, err := c.io.ReadInput("Intensity (sparse/moderate/heavy/blanket, optional): ")
	if err != nil {
		return fmt.Errorf("failed to read intensity: %w", err)
	}

	flies, err := c.io.ReadInput("Flies working (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read flies: %w", err)
	}

	notes, err := c.io.ReadInput("Notes (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read notes: %w", err)
	}

	result, err := c.apiClient.CreateHatchReport(ctx, accessToken, api.HatchReportPayload{
		RiverName:      river,
		HatchType:      hatchType,
		HatchIntensity: intensity,
		FliesWorking:   flies,
		Notes:          notes,
	})
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Hatch report shared, thanks!")
	c.io.Printf("Report ID: %d\n", result.ReportID)

	return nil
}

func (c *Cli) runHatchList(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("hatch list", flag.ContinueOnError)
	river := flags.String("river", "", "filter by river name")
	days := flags.Int("days", 7, "look back this many days")
	limit := flags.Int("limit", 50, "maximum number of reports")
	if err := flags.Parse(args); err != nil {
		return err
	}

	reports, err := c.apiClient.ListHatchReports(ctx, *river, *days, *limit)
	if err != nil {
		return fmt.Errorf("failed to list hatch reports: %w", err)
	}

	c.io.Println("=== Hatch Reports ===")
	c.io.Println()

	if len(reports) == 0 {
		c.io.Println("No reports for this period.")
		return nil
	}

	for i := range reports {
		r := &reports[i]
		c.io.Printf("%s: %s", r.RiverName, r.HatchType)
		if r.HatchIntensity != "" {
			c.io.Printf(" (%s)", r.HatchIntensity)
		}
		if r.Author != "" {
			c.io.Printf(" by %s", r.Author)
		}
		c.io.Printf(", %s\n", r.ReportedAt.Format("2006-01-02 15:04"))
		if r.FliesWorking != "" {
			c.io.Printf("    Flies working: %s\n", r.FliesWorking)
		}
		if r.Notes != "" {
			c.io.Printf("    %s\n", r.Notes)
		}
	}

	return nil
}
