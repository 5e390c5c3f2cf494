package sync

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/jubeesync/internal/client/auth"
	"github.com/iudanet/jubeesync/internal/models"
)

//go:generate moq -out remote_mock.go . RemoteStore SessionProvider

// RemoteStore is the canonical server-side store as seen by the client.
type RemoteStore interface {
	// UpsertRecord writes the record, idempotent by id, and returns the assigned revision
	UpsertRecord(ctx context.Context, accessToken string, record *models.Record) (int64, error)

	// PushRecord writes the record only if the server copy has not changed after baseRevision.
	// A rejected push returns *RemoteChangedError with the server copy.
	PushRecord(ctx context.Context, accessToken string, record *models.Record, baseRevision int64) (int64, error)

	// ListRecords returns records changed after revision since and the current revision
	ListRecords(ctx context.Context, accessToken string, collection models.Collection, since int64) ([]*models.Record, int64, error)
}

// SessionProvider supplies the signed-in user.
// auth.ErrNotAuthenticated means "no user": remote work is skipped.
type SessionProvider interface {
	Session(ctx context.Context) (*auth.Session, error)
}

// ErrRemoteChanged matches a push rejected because the server copy changed after the base revision.
var ErrRemoteChanged = errors.New("record changed on server")

// RemoteChangedError carries the server copy of a rejected push.
type RemoteChangedError struct {
	Remote *models.Record
}

func (e *RemoteChangedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrRemoteChanged, e.Remote.Key())
}

func (e *RemoteChangedError) Unwrap() error {
	return ErrRemoteChanged
}
