package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/riffle/internal/client/storage"
	"github.com/iudanet/riffle/pkg/api"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	result, err := c.apiClient.Login(ctx, api.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	session := &storage.Session{
		Email:        email,
		UserID:       result.UserID,
		Name:         result.Name,
		Subscription: result.Subscription,
		AccessToken:  result.AccessToken,
		ExpiresAt:    time.Now().Unix() + result.ExpiresIn,
	}

	if err := c.authStore.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Email: %s\n", email)
	c.io.Printf("Subscription: %s\n", result.Subscription)
	c.io.Printf("Access token expires in: %d seconds\n", result.ExpiresIn)

	return nil
}
