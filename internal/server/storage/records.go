package storage

import (
	"context"

	"github.com/iudanet/jubeesync/internal/models"
)

//go:generate moq -out records_mock.go . RecordStorage

// RecordStorage хранит каноническую копию записей каждого пользователя.
// Каждая запись получает ревизию из монотонного счетчика пользователя,
// по ней клиенты забирают изменения.
type RecordStorage interface {
	// UpsertRecord creates or replaces the record, idempotent by (collection, id).
	// Returns the revision assigned to the write.
	UpsertRecord(ctx context.Context, userID string, record *models.Record) (int64, error)

	// UpsertRecordIfUnchanged writes the record only when its stored revision is not
	// newer than baseRevision. Otherwise it returns ErrRevisionConflict together with
	// the stored record. A record that does not exist yet is always written.
	UpsertRecordIfUnchanged(ctx context.Context, userID string, record *models.Record, baseRevision int64) (int64, *models.Record, error)

	// ListRecordsSince returns records of one collection with revision > since,
	// ordered by revision, and the user's current revision
	ListRecordsSince(ctx context.Context, userID string, collection models.Collection, since int64) ([]*models.Record, int64, error)
}
