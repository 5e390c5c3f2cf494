package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/jubeesync/internal/client/auth"
)

// runSync сначала досылает outbox, затем сканирует сервер.
// Если outbox отправить не удалось, скан все равно выполняется.
func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()

	if err := c.runRetry(ctx); err != nil {
		if errors.Is(err, auth.ErrNotAuthenticated) {
			return fmt.Errorf("%w: please run 'jubee login' first", err)
		}
		c.io.Warning("Could not upload pending records: %v", err)
	}

	result, err := c.syncPass.Scan(ctx)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	c.io.Printf("%-16s %7s %8s %9s %10s %10s %7s %5s\n",
		"COLLECTION", "PULLED", "CREATED", "CONFLICTS", "UNCHANGED", "MALFORMED", "PUSHED", "HELD")
	for _, scan := range result.Collections {
		if scan.Err != nil {
			c.io.Printf("%-16s %s\n", scan.Collection, "error: "+scan.Err.Error())
			continue
		}
		c.io.Printf("%-16s %7d %8d %9d %10d %10d %7d %5d\n",
			scan.Collection, scan.Pulled, scan.Created, scan.Detected, scan.Unchanged, scan.Malformed, scan.Pushed, scan.Held)
	}
	c.io.Println()

	if err := result.Err(); err != nil {
		c.io.Warning("Some collections were not synchronized")
		c.logger.Warn("Sync pass finished with errors", "error", err)
	} else {
		c.io.Success("Synchronization completed")
	}

	if n := result.Held(); n > 0 {
		c.io.Printf("%d local change(s) wait for a conflict decision before upload.\n", n)
	}
	if result.Pending > 0 {
		c.io.Printf("%d conflict(s) need a decision. Run 'jubee conflicts' to review them.\n", result.Pending)
	}

	return result.Err()
}

func (c *Cli) runRetry(ctx context.Context) error {
	result, err := c.retrier.RetryPending(ctx)
	if err != nil {
		return err
	}

	if result.Synced == 0 && result.Failed == 0 {
		c.io.Println("Nothing waiting for upload.")
		return nil
	}

	if result.Synced > 0 {
		c.io.Success("Uploaded %d pending record(s)", result.Synced)
	}
	if result.Failed > 0 {
		for _, err := range result.Errors {
			c.io.Warning("%v", err)
		}
		return fmt.Errorf("%d record(s) still waiting for upload", result.Failed)
	}
	return nil
}
