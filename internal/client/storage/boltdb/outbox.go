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

// AddPendingRemote queues a locally saved record for a later remote upsert
func (s *Storage) AddPendingRemote(ctx context.Context, item *storage.PendingRemote) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if item == nil || item.Record == nil {
		return fmt.Errorf("pending item has no record")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		return queuePending(tx, item)
	})
}

// SaveLocalEdit stores the record and queues it as a local edit in one transaction
func (s *Storage) SaveLocalEdit(ctx context.Context, record *models.Record, queuedAt int64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if err := validation.ValidateSnapshot(record); err != nil {
		return err
	}

	spec := models.MustSpec(record.Collection)
	item := &storage.PendingRemote{Record: record, QueuedAt: queuedAt}

	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := putRecord(tx.Bucket(spec.Bucket), record); err != nil {
			return err
		}
		return queuePending(tx, item)
	})
}

// ListPendingRemote returns every queued entry ordered by key
func (s *Storage) ListPendingRemote(ctx context.Context) ([]*storage.PendingRemote, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var items []*storage.PendingRemote

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOutbox)
		if bucket == nil {
			return fmt.Errorf("outbox bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			item := &storage.PendingRemote{}
			if err := json.Unmarshal(v, item); err != nil {
				return fmt.Errorf("failed to unmarshal pending item %s: %w", k, err)
			}
			items = append(items, item)
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return items, nil
}

// UpdatePendingRemote rewrites the entry if it was not replaced since item was listed
func (s *Storage) UpdatePendingRemote(ctx context.Context, item *storage.PendingRemote) (bool, error) {
	if s.db == nil {
		return false, storage.ErrStorageClosed
	}
	if item == nil || item.Record == nil {
		return false, fmt.Errorf("pending item has no record")
	}

	data, err := json.Marshal(item)
	if err != nil {
		return false, fmt.Errorf("failed to marshal pending item: %w", err)
	}

	updated := false
	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket, current, err := loadPending(tx, item.Key())
		if err != nil || current == nil || current.Seq != item.Seq {
			return err
		}

		if err := bucket.Put([]byte(item.Key().String()), data); err != nil {
			return fmt.Errorf("failed to save pending item: %w", err)
		}
		updated = true
		return nil
	})

	return updated, err
}

// CompletePendingRemote drops the entry if it was not replaced since item was listed
func (s *Storage) CompletePendingRemote(ctx context.Context, item *storage.PendingRemote) (bool, error) {
	if s.db == nil {
		return false, storage.ErrStorageClosed
	}
	if item == nil || item.Record == nil {
		return false, fmt.Errorf("pending item has no record")
	}

	removed := false
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, current, err := loadPending(tx, item.Key())
		if err != nil || current == nil || current.Seq != item.Seq {
			return err
		}

		if err := bucket.Delete([]byte(item.Key().String())); err != nil {
			return fmt.Errorf("failed to delete pending item: %w", err)
		}
		removed = true
		return nil
	})

	return removed, err
}

// RemovePendingRemote drops a queued entry
func (s *Storage) RemovePendingRemote(ctx context.Context, key models.RecordKey) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOutbox)
		if bucket == nil {
			return fmt.Errorf("outbox bucket not found")
		}

		if err := bucket.Delete([]byte(key.String())); err != nil {
			return fmt.Errorf("failed to delete pending item: %w", err)
		}

		return nil
	})
}

// queuePending назначает элементу новый Seq и сохраняет его.
// Ключ collection/id: для одной записи хранится только последний элемент.
func queuePending(tx *bbolt.Tx, item *storage.PendingRemote) error {
	bucket := tx.Bucket(bucketOutbox)
	if bucket == nil {
		return fmt.Errorf("outbox bucket not found")
	}

	seq, err := bucket.NextSequence()
	if err != nil {
		return fmt.Errorf("failed to allocate outbox sequence: %w", err)
	}
	item.Seq = seq

	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal pending item: %w", err)
	}

	if err := bucket.Put([]byte(item.Key().String()), data); err != nil {
		return fmt.Errorf("failed to save pending item: %w", err)
	}

	return nil
}

func loadPending(tx *bbolt.Tx, key models.RecordKey) (*bbolt.Bucket, *storage.PendingRemote, error) {
	bucket := tx.Bucket(bucketOutbox)
	if bucket == nil {
		return nil, nil, fmt.Errorf("outbox bucket not found")
	}

	data := bucket.Get([]byte(key.String()))
	if data == nil {
		return bucket, nil, nil
	}

	current := &storage.PendingRemote{}
	if err := json.Unmarshal(data, current); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal pending item %s: %w", key, err)
	}

	return bucket, current, nil
}
