package sync

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/iudanet/jubeesync/internal/client/storage"
	"github.com/iudanet/jubeesync/internal/conflict"
)

// Journal переносит очередь конфликтов движка между запусками клиента.
// Движок держит очередь в памяти, а каждая команда CLI - отдельный процесс.
type Journal struct {
	engine *conflict.Engine
	store  storage.ConflictStorage
	logger *slog.Logger
}

// NewJournal creates a journal for engine backed by store.
func NewJournal(engine *conflict.Engine, store storage.ConflictStorage, logger *slog.Logger) *Journal {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Journal{
		engine: engine,
		store:  store,
		logger: logger,
	}
}

// Restore loads the saved pending set into the engine and returns how many groups were added.
// Группы, уже обнаруженные заново в этом процессе, не перезаписываются.
func (j *Journal) Restore(ctx context.Context) (int, error) {
	groups, err := j.store.LoadConflicts(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load pending conflicts: %w", err)
	}

	added := j.engine.Requeue(groups...)
	j.logger.Debug("Pending conflicts restored", "saved", len(groups), "added", added)

	return added, nil
}

// Save writes the current pending set of the engine.
func (j *Journal) Save(ctx context.Context) error {
	groups := j.engine.GetConflicts()
	if err := j.store.SaveConflicts(ctx, groups); err != nil {
		return fmt.Errorf("failed to save pending conflicts: %w", err)
	}

	j.logger.Debug("Pending conflicts saved", "count", len(groups))
	return nil
}
