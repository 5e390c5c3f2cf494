package storage

import (
	"context"

	"github.com/iudanet/jubeesync/internal/models"
)

//go:generate moq -out conflictstorage_mock.go . ConflictStorage

// ConflictStorage сохраняет очередь ожидающих конфликтов между запусками клиента
type ConflictStorage interface {
	// SaveConflicts replaces the stored pending set with groups, keeping their order
	SaveConflicts(ctx context.Context, groups []models.ConflictGroup) error

	// LoadConflicts returns the pending set saved by SaveConflicts.
	// Returns an empty slice if nothing was saved.
	LoadConflicts(ctx context.Context) ([]models.ConflictGroup, error)
}
