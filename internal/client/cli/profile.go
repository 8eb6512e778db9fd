package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/iudanet/riffle/pkg/api"
)

func (c *Cli) runProfile(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "set" {
		return c.runProfileSet(ctx, args[1:])
	}
	return c.runProfileShow(ctx)
}

func (c *Cli) runProfileShow(ctx context.Context) error {
	accessToken, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	profile, err := c.apiClient.Me(ctx, accessToken)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	c.io.Println("=== Profile ===")
	c.io.Println()
	c.printProfile(profile)

	return nil
}

func (c *Cli) runProfileSet(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("profile set", flag.ContinueOnError)
	name := flags.String("name", "", "display name")
	homeRiver := flags.String("home-river", "", "home river name")
	lat := flags.Float64("lat", 0, "home latitude")
	lon := flags.Float64("lon", 0, "home longitude")
	if err := flags.Parse(args); err != nil {
		return err
	}

	// Только явно переданные флаги попадают в запрос
	req := api.UpdateProfileRequest{}
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			req.Name = name
		case "home-river":
			req.HomeRiver = homeRiver
		case "lat":
			req.HomeLat = lat
		case "lon":
			req.HomeLon = lon
		}
	})

	if req.Name == nil && req.HomeRiver == nil && req.HomeLat == nil && req.HomeLon == nil {
		return fmt.Errorf("nothing to update. Pass at least one of --name, --home-river, --lat, --lon")
	}

	accessToken, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	profile, err := c.apiClient.UpdateProfile(ctx, accessToken, req)
	if err != nil {
		return err
	}

	c.io.Println("✓ Profile updated!")
	c.io.Println()
	c.printProfile(profile)

	return nil
}

func (c *Cli) printProfile(p *api.UserProfile) {
	c.io.Printf("Email: %s\n", p.Email)
	c.io.Printf("Name: %s\n", p.Name)
	c.io.Printf("Subscription: %s\n", p.Subscription)
	if p.HomeRiver != "" {
		c.io.Printf("Home river: %s\n", p.HomeRiver)
	}
	if p.HomeLat != nil && p.HomeLon != nil {
		c.io.Printf("Home waters: %.4f, %.4f\n", *p.HomeLat, *p.HomeLon)
	}
}
