package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/jubeesync/internal/client/storage"
	"github.com/iudanet/jubeesync/internal/models"
	"github.com/iudanet/jubeesync/internal/validation"
)

// Get retrieves a record by collection and id
func (s *Storage) Get(ctx context.Context, collection models.Collection, id string) (*models.Record, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	spec := models.MustSpec(collection)
	var record *models.Record

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(spec.Bucket)
		if bucket == nil {
			return fmt.Errorf("%s bucket not found", spec.Bucket)
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrRecordNotFound
		}

		record = &models.Record{}
		if err := json.Unmarshal(data, record); err != nil {
			return fmt.Errorf("failed to unmarshal record: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return record, nil
}

// Put stores or replaces a single record
func (s *Storage) Put(ctx context.Context, record *models.Record) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if err := validation.ValidateSnapshot(record); err != nil {
		return err
	}

	spec := models.MustSpec(record.Collection)

	return s.db.Update(func(tx *bbolt.Tx) error {
		return putRecord(tx.Bucket(spec.Bucket), record)
	})
}

// PutBulk stores all records of one collection in a single transaction.
// Одна некорректная запись откатывает всю транзакцию.
func (s *Storage) PutBulk(ctx context.Context, collection models.Collection, records []*models.Record) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	spec := models.MustSpec(collection)

	for _, record := range records {
		if err := validation.ValidateSnapshot(record); err != nil {
			return err
		}
		if record.Collection != collection {
			return fmt.Errorf("record %s belongs to %s, not %s", record.ID, record.Collection, collection)
		}
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(spec.Bucket)
		for _, record := range records {
			if err := putRecord(bucket, record); err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return fmt.Errorf("bulk write to %s failed: %w", collection, err)
	}

	return nil
}

// List returns all records of a collection ordered by id
func (s *Storage) List(ctx context.Context, collection models.Collection) ([]*models.Record, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	spec := models.MustSpec(collection)
	var records []*models.Record

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(spec.Bucket)
		if bucket == nil {
			return fmt.Errorf("%s bucket not found", spec.Bucket)
		}

		return bucket.ForEach(func(k, v []byte) error {
			record := &models.Record{}
			if err := json.Unmarshal(v, record); err != nil {
				return fmt.Errorf("failed to unmarshal record %s: %w", k, err)
			}
			records = append(records, record)
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return records, nil
}

// Clear removes all records of a collection
func (s *Storage) Clear(ctx context.Context, collection models.Collection) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	spec := models.MustSpec(collection)

	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(spec.Bucket); err != nil && err != bbolt.ErrBucketNotFound {
			return fmt.Errorf("failed to delete %s bucket: %w", spec.Bucket, err)
		}
		if _, err := tx.CreateBucket(spec.Bucket); err != nil {
			return fmt.Errorf("failed to recreate %s bucket: %w", spec.Bucket, err)
		}
		return nil
	})
}

func putRecord(bucket *bbolt.Bucket, record *models.Record) error {
	if bucket == nil {
		return fmt.Errorf("bucket for %s not found", record.Collection)
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record %s: %w", record.ID, err)
	}

	if err := bucket.Put([]byte(record.ID), data); err != nil {
		return fmt.Errorf("failed to save record %s: %w", record.ID, err)
	}

	return nil
}
