package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/jubeesync/internal/client/auth"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.io.ReadPassword("Password (min 12 chars): ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if password != confirm {
		return errors.New("passwords do not match")
	}

	result, err := c.authService.Register(ctx, username, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Success("Registration successful!")
	c.io.Printf("User ID:  %s\n", result.UserID)
	c.io.Printf("Username: %s\n", result.Username)
	c.io.Println()
	c.io.Println("Please run 'jubee login' to sign in on this device.")

	return nil
}

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	session, err := c.authService.Login(ctx, username, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Success("Login successful!")
	c.io.Printf("Username: %s\n", session.Username)
	c.io.Printf("Session expires at: %s\n", time.Unix(session.ExpiresAt, 0).Format(time.RFC3339))

	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.authService.Logout(ctx); err != nil {
		return err
	}

	c.io.Success("Logged out. Local records and pending conflicts are kept on this device.")
	return nil
}

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	session, err := c.authService.Session(ctx)
	switch {
	case errors.Is(err, auth.ErrNotAuthenticated):
		c.io.Warning("Not logged in: remote sync is paused")
	case err != nil:
		return err
	default:
		c.io.Success("Logged in as %s", session.Username)
		c.io.Printf("Session expires at: %s\n", time.Unix(session.ExpiresAt, 0).Format(time.RFC3339))
	}

	pending, err := c.outbox.ListPendingRemote(ctx)
	if err != nil {
		return fmt.Errorf("failed to read outbox: %w", err)
	}

	c.io.Printf("Pending conflicts:      %d\n", len(c.syncService.GetConflicts()))
	c.io.Printf("Awaiting server upload: %d\n", len(pending))

	return nil
}
