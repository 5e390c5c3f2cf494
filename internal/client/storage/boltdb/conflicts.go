package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/jubeesync/internal/client/storage"
	"github.com/iudanet/jubeesync/internal/models"
)

// keyPendingConflicts весь набор хранится одним значением: он всегда перезаписывается целиком
var keyPendingConflicts = []byte("pending")

// SaveConflicts replaces the stored pending set
func (s *Storage) SaveConflicts(ctx context.Context, groups []models.ConflictGroup) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	if groups == nil {
		groups = []models.ConflictGroup{}
	}
	data, err := json.Marshal(groups)
	if err != nil {
		return fmt.Errorf("failed to marshal conflicts: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketConflicts)
		if bucket == nil {
			return fmt.Errorf("conflicts bucket not found")
		}

		if err := bucket.Put(keyPendingConflicts, data); err != nil {
			return fmt.Errorf("failed to save conflicts: %w", err)
		}

		return nil
	})
}

// LoadConflicts returns the stored pending set
func (s *Storage) LoadConflicts(ctx context.Context) ([]models.ConflictGroup, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	groups := []models.ConflictGroup{}

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketConflicts)
		if bucket == nil {
			return fmt.Errorf("conflicts bucket not found")
		}

		data := bucket.Get(keyPendingConflicts)
		if data == nil {
			return nil
		}

		if err := json.Unmarshal(data, &groups); err != nil {
			return fmt.Errorf("failed to unmarshal conflicts: %w", err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return groups, nil
}
