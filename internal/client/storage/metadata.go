package storage

import (
	"context"

	"github.com/iudanet/jubeesync/internal/models"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveLastSyncRevision saves the server revision reached by the last successful sync of a collection
	SaveLastSyncRevision(ctx context.Context, collection models.Collection, revision int64) error

	// GetLastSyncRevision retrieves the revision saved by SaveLastSyncRevision
	// Returns 0 if the collection has never been synced
	GetLastSyncRevision(ctx context.Context, collection models.Collection) (int64, error)

	// GetDeviceID returns the id of this installation, generating it on first use
	GetDeviceID(ctx context.Context) (string, error)
}
