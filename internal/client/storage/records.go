package storage

import (
	"context"

	"github.com/iudanet/jubeesync/internal/models"
)

//go:generate moq -out recordstorage_mock.go . RecordStorage

// RecordStorage defines the local record store used by the sync engine.
// Каждая коллекция хранится в отдельном bucket (см. models.Spec).
type RecordStorage interface {
	// Get returns the record stored under id in collection.
	// Returns ErrRecordNotFound if the record doesn't exist
	Get(ctx context.Context, collection models.Collection, id string) (*models.Record, error)

	// Put stores or replaces a single record
	Put(ctx context.Context, record *models.Record) error

	// PutBulk stores every record of one collection in a single transaction.
	// Either all records are written or none.
	PutBulk(ctx context.Context, collection models.Collection, records []*models.Record) error

	// List returns all records of a collection ordered by id
	List(ctx context.Context, collection models.Collection) ([]*models.Record, error)

	// Clear removes all records of a collection
	// Used for testing and full re-sync
	Clear(ctx context.Context, collection models.Collection) error
}
