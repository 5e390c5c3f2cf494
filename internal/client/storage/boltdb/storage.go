package boltdb

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/jubeesync/internal/client/storage"
	"github.com/iudanet/jubeesync/internal/models"
)

var (
	// BoltDB bucket names
	bucketAuth      = []byte("auth")
	bucketMetadata  = []byte("metadata")
	bucketOutbox    = []byte("outbox")
	bucketConflicts = []byte("conflicts")
)

// Проверка реализации интерфейсов на этапе компиляции
var (
	_ storage.RecordStorage    = (*Storage)(nil)
	_ storage.OutboxStorage    = (*Storage)(nil)
	_ storage.LocalEditStorage = (*Storage)(nil)
	_ storage.MetadataStorage  = (*Storage)(nil)
	_ storage.AuthStorage      = (*Storage)(nil)
	_ storage.ConflictStorage  = (*Storage)(nil)
)

// openTimeout ограничивает ожидание файловой блокировки, если база открыта другим процессом
const openTimeout = time.Second

// Storage represents BoltDB storage implementation for client
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	// Инициализируем buckets
	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketAuth, bucketMetadata, bucketOutbox, bucketConflicts} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}

		// По одному bucket на каждую коллекцию
		for _, c := range models.AllCollections() {
			spec := models.MustSpec(c)
			if _, err := tx.CreateBucketIfNotExists(spec.Bucket); err != nil {
				return fmt.Errorf("failed to create bucket for %s: %w", c, err)
			}
		}

		return nil
	})
}
