package storage

import (
	"context"

	"github.com/iudanet/jubeesync/internal/models"
)

//go:generate moq -out outboxstorage_mock.go . OutboxStorage
//go:generate moq -out localeditstorage_mock.go . LocalEditStorage

// PendingRemote - запись, уже сохраненная локально, но еще не отправленная на сервер.
// Либо разрешенный конфликт (Choice задан), либо локальная правка (Choice пуст).
type PendingRemote struct {
	Record    *models.Record          `json:"record"`
	Choice    models.ResolutionChoice `json:"choice,omitempty"`
	LastError string                  `json:"last_error,omitempty"`
	QueuedAt  int64                   `json:"queued_at"`
	Attempts  int                     `json:"attempts"`
	// Seq назначается хранилищем при постановке в очередь и меняется
	// при каждой замене записи.
	Seq uint64 `json:"seq"`
}

// Key returns the key of the queued record.
func (p *PendingRemote) Key() models.RecordKey {
	return p.Record.Key()
}

// IsLocalEdit reports whether the entry is a local edit rather than a resolved conflict.
// Local edits are pushed with a revision check during a scan.
func (p *PendingRemote) IsLocalEdit() bool {
	return p.Choice == ""
}

// OutboxStorage keeps records that are saved locally but pending remote sync.
type OutboxStorage interface {
	// AddPendingRemote queues a record for a later remote upsert.
	// A newer entry for the same record replaces the older one.
	// The stored entry gets a fresh Seq, which is written back to item.
	AddPendingRemote(ctx context.Context, item *PendingRemote) error

	// ListPendingRemote returns every queued entry ordered by key
	ListPendingRemote(ctx context.Context) ([]*PendingRemote, error)

	// UpdatePendingRemote stores the retry bookkeeping of item only while the queued entry
	// still has item.Seq. It reports false when the entry was replaced or removed.
	UpdatePendingRemote(ctx context.Context, item *PendingRemote) (bool, error)

	// CompletePendingRemote removes the entry only while it still has item.Seq.
	// It reports false when a newer entry was queued in the meantime.
	CompletePendingRemote(ctx context.Context, item *PendingRemote) (bool, error)

	// RemovePendingRemote drops the entry regardless of its Seq.
	// Removing a missing entry is not an error.
	RemovePendingRemote(ctx context.Context, key models.RecordKey) error
}

// LocalEditStorage saves a local edit and queues it for the next push in one step.
type LocalEditStorage interface {
	// SaveLocalEdit stores record and queues it as a local edit.
	// A queued resolution for the same record is replaced: the edit already carries it.
	SaveLocalEdit(ctx context.Context, record *models.Record, queuedAt int64) error
}
