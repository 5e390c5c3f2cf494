package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/jubeesync/internal/client/sync"
	"github.com/iudanet/jubeesync/internal/models"
)

func (c *Cli) runResolve(ctx context.Context, choiceArg string, ids []string) error {
	choice, err := models.ParseChoice(choiceArg)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return errors.New("at least one conflict id is required")
	}

	var summary *sync.PersistSummary
	if len(ids) == 1 {
		summary, err = c.syncService.ResolveConflict(ctx, ids[0], choice)
	} else {
		summary, err = c.syncService.ResolveBatch(ctx, ids, choice)
	}

	return c.report(summary, err)
}

func (c *Cli) runResolveAll(ctx context.Context, choiceArg string) error {
	choice, err := models.ParseChoice(choiceArg)
	if err != nil {
		return err
	}

	return c.report(c.syncService.ResolveAll(ctx, choice))
}

func (c *Cli) runResolveStore(ctx context.Context, collectionArg, choiceArg string) error {
	collection, err := models.ParseCollection(collectionArg)
	if err != nil {
		return err
	}
	choice, err := models.ParseChoice(choiceArg)
	if err != nil {
		return err
	}

	return c.report(c.syncService.ResolveByStore(ctx, collection, choice))
}

func (c *Cli) runAcceptDiagnosis(ctx context.Context) error {
	return c.report(c.syncService.AcceptDiagnosis(ctx))
}

// report печатает итог сохранения. Ошибка возвращается, если часть записей
// не сохранена локально или часть id не найдена; неудачная отправка на сервер
// ошибкой не считается: запись уже в outbox.
func (c *Cli) report(summary *sync.PersistSummary, err error) error {
	if summary == nil {
		return err
	}

	if len(summary.Results) == 0 && err == nil {
		c.io.Println("Nothing to resolve.")
		return nil
	}

	for _, r := range summary.Results {
		switch {
		case r.LocalErr != nil:
			c.io.Warning("%s: not saved, conflict stays pending (%v)", r.Key, r.LocalErr)
		case r.RemoteErr != nil:
			c.io.Warning("%s: saved locally, upload postponed (%v)", r.Key, r.RemoteErr)
		}
	}

	if summary.Persisted > 0 {
		c.io.Success("Resolved %d record(s): %d uploaded, %d waiting for upload",
			summary.Persisted, summary.RemoteSynced, summary.RemotePending)
	}

	if summary.Failed > 0 {
		err = errors.Join(err, fmt.Errorf("%w: %d record(s)", sync.ErrLocalWriteFailed, summary.Failed))
	}
	return err
}
