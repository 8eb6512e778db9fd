package cli

import (
	"context"
	"flag"
	"fmt"
)

// Денвер, то же умолчание использует сервер
const (
	defaultLat = 39.7392
	defaultLon = -104.9903
)

func (c *Cli) runConditions(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("conditions", flag.ContinueOnError)
	lat := flags.Float64("lat", defaultLat, "latitude")
	lon := flags.Float64("lon", defaultLon, "longitude")
	site := flags.String("site", "", "USGS site id for river flow data")
	if err := flags.Parse(args); err != nil {
		return err
	}

	resp, err := c.apiClient.GetConditions(ctx, *lat, *lon, *site)
	if err != nil {
		return fmt.Errorf("failed to get conditions: %w", err)
	}

	c.io.Println("=== Fishing Conditions ===")
	c.io.Println()
	c.io.Printf("Rating: %s (%d/100)\n", resp.Rating, resp.Score)
	c.io.Printf("%s\n", resp.Summary)
	c.io.Println()

	w := resp.Weather
	c.io.Printf("Weather: %s, %.0f°F (feels like %.0f°F)\n", w.Description, w.Temperature, w.FeelsLike)
	c.io.Printf("Wind: %.0f mph %s, pressure %d mb, clouds %d%%\n", w.WindSpeed, w.WindDirection, w.Pressure, w.Clouds)
	if w.Sunrise != "" && w.Sunset != "" {
		c.io.Printf("Sun: rise %s, set %s\n", w.Sunrise, w.Sunset)
	}
	c.io.Printf("Moon: %s %s (%s)\n", resp.Moon.Icon, resp.Moon.Name, resp.Moon.Fishing)

	if r := resp.River; r != nil {
		c.io.Println()
		c.io.Printf("River: %s (site %s)\n", r.SiteName, r.SiteID)
		c.io.Printf("Flow: %s", r.FlowStatus)
		if r.FlowDisplay != "" {
			c.io.Printf(" (%s)", r.FlowDisplay)
		}
		c.io.Println()
		if r.WaterTempF != nil {
			c.io.Printf("Water temp: %.1f°F\n", *r.WaterTempF)
		}
	}

	if len(resp.Factors) > 0 {
		c.io.Println()
		c.io.Println("Factors:")
		for _, f := range resp.Factors {
			marker := " "
			switch {
			case f.Good != nil && *f.Good:
				marker = "+"
			case f.Good != nil && !*f.Good:
				marker = "-"
			}
			c.io.Printf("  %s %s: %s", marker, f.Name, f.Value)
			if f.Note != "" {
				c.io.Printf(" (%s)", f.Note)
			}
			c.io.Println()
		}
	}

	if len(resp.BestTimes) > 0 {
		c.io.Println()
		c.io.Println("Best times:")
		for _, bt := range resp.BestTimes {
			c.io.Printf("  %s %s [%s]", bt.Period, bt.Time, bt.Quality)
			if bt.Note != "" {
				c.io.Printf(": %s", bt.Note)
			}
			c.io.Println()
		}
	}

	return nil
}
