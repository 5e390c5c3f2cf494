package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/iudanet/jubeesync/internal/client/storage"
	"github.com/iudanet/jubeesync/internal/models"
)

const (
	keyLastSyncRevisionPrefix = "last_sync_revision:"
	keyDeviceID               = "device_id"
)

// SaveLastSyncRevision saves the server revision reached by the last sync of a collection
func (s *Storage) SaveLastSyncRevision(ctx context.Context, collection models.Collection, revision int64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Конвертируем int64 в bytes
		revisionBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(revisionBytes, uint64(revision))

		if err := bucket.Put(revisionKey(collection), revisionBytes); err != nil {
			return fmt.Errorf("failed to save last sync revision: %w", err)
		}

		return nil
	})
}

// GetLastSyncRevision retrieves the revision of the last successful sync of a collection
// Returns 0 if no sync has been performed yet
func (s *Storage) GetLastSyncRevision(ctx context.Context, collection models.Collection) (int64, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var revision int64

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		revisionBytes := bucket.Get(revisionKey(collection))
		if revisionBytes == nil {
			// первая синхронизация
			return nil
		}

		revision = int64(binary.BigEndian.Uint64(revisionBytes))
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to get last sync revision: %w", err)
	}

	return revision, nil
}

// GetDeviceID returns the installation id, creating it on first call
func (s *Storage) GetDeviceID(ctx context.Context) (string, error) {
	if s.db == nil {
		return "", storage.ErrStorageClosed
	}

	var deviceID string

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if existing := bucket.Get([]byte(keyDeviceID)); existing != nil {
			deviceID = string(existing)
			return nil
		}

		deviceID = uuid.New().String()
		return bucket.Put([]byte(keyDeviceID), []byte(deviceID))
	})

	if err != nil {
		return "", fmt.Errorf("failed to get device id: %w", err)
	}

	return deviceID, nil
}

func revisionKey(collection models.Collection) []byte {
	return []byte(keyLastSyncRevisionPrefix + string(collection))
}
