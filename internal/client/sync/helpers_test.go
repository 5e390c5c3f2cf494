package sync

import (
	"context"
	"fmt"
	"sort"
	stdsync "sync"

	"github.com/iudanet/jubeesync/internal/client/auth"
	"github.com/iudanet/jubeesync/internal/client/storage"
	"github.com/iudanet/jubeesync/internal/models"
)

// memoryRecords - потокобезопасное хранилище записей в памяти поверх RecordStorageMock
type memoryRecords struct {
	data map[models.RecordKey]*models.Record
	// failPut возвращает ошибку записи для конкретной записи
	failPut func(*models.Record) error
	mu      stdsync.Mutex
}

func newMemoryRecords() *memoryRecords {
	return &memoryRecords{data: make(map[models.RecordKey]*models.Record)}
}

func (m *memoryRecords) mock() *storage.RecordStorageMock {
	return &storage.RecordStorageMock{
		GetFunc: func(ctx context.Context, collection models.Collection, id string) (*models.Record, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			rec, ok := m.data[models.RecordKey{Collection: collection, ID: id}]
			if !ok {
				return nil, storage.ErrRecordNotFound
			}
			return rec.Clone(), nil
		},
		PutFunc: func(ctx context.Context, record *models.Record) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			if m.failPut != nil {
				if err := m.failPut(record); err != nil {
					return err
				}
			}
			m.data[record.Key()] = record.Clone()
			return nil
		},
		PutBulkFunc: func(ctx context.Context, collection models.Collection, records []*models.Record) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			// атомарно: сначала проверяем все записи
			if m.failPut != nil {
				for _, r := range records {
					if err := m.failPut(r); err != nil {
						return fmt.Errorf("bulk: %w", err)
					}
				}
			}
			for _, r := range records {
				m.data[r.Key()] = r.Clone()
			}
			return nil
		},
		ListFunc: func(ctx context.Context, collection models.Collection) ([]*models.Record, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			var out []*models.Record
			for key, rec := range m.data {
				if key.Collection == collection {
					out = append(out, rec.Clone())
				}
			}
			sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
			return out, nil
		},
	}
}

func (m *memoryRecords) get(collection models.Collection, id string) (*models.Record, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.data[models.RecordKey{Collection: collection, ID: id}]
	return rec, ok
}

// memoryOutbox - outbox в памяти; Seq назначается как в bbolt
type memoryOutbox struct {
	items map[models.RecordKey]*storage.PendingRemote
	seq   uint64
	mu    stdsync.Mutex
}

func newMemoryOutbox() *memoryOutbox {
	return &memoryOutbox{items: make(map[models.RecordKey]*storage.PendingRemote)}
}

func (m *memoryOutbox) mock() *storage.OutboxStorageMock {
	return &storage.OutboxStorageMock{
		AddPendingRemoteFunc: func(ctx context.Context, item *storage.PendingRemote) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			m.seq++
			item.Seq = m.seq
			copied := *item
			m.items[item.Key()] = &copied
			return nil
		},
		UpdatePendingRemoteFunc: func(ctx context.Context, item *storage.PendingRemote) (bool, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			current, ok := m.items[item.Key()]
			if !ok || current.Seq != item.Seq {
				return false, nil
			}
			copied := *item
			m.items[item.Key()] = &copied
			return true, nil
		},
		CompletePendingRemoteFunc: func(ctx context.Context, item *storage.PendingRemote) (bool, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			current, ok := m.items[item.Key()]
			if !ok || current.Seq != item.Seq {
				return false, nil
			}
			delete(m.items, item.Key())
			return true, nil
		},
		ListPendingRemoteFunc: func(ctx context.Context) ([]*storage.PendingRemote, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			out := make([]*storage.PendingRemote, 0, len(m.items))
			for _, item := range m.items {
				copied := *item
				out = append(out, &copied)
			}
			sort.Slice(out, func(i, j int) bool { return out[i].Key().String() < out[j].Key().String() })
			return out, nil
		},
		RemovePendingRemoteFunc: func(ctx context.Context, key models.RecordKey) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			delete(m.items, key)
			return nil
		},
	}
}

// edit ставит локальную правку в очередь так же, как SaveLocalEdit
func (m *memoryOutbox) edit(rec *models.Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	m.items[rec.Key()] = &storage.PendingRemote{Record: rec.Clone(), QueuedAt: rec.UpdatedAt, Seq: m.seq}
}

func (m *memoryOutbox) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

func (m *memoryOutbox) get(key models.RecordKey) (*storage.PendingRemote, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[key]
	return item, ok
}

func signedIn() *SessionProviderMock {
	return &SessionProviderMock{
		SessionFunc: func(ctx context.Context) (*auth.Session, error) {
			return &auth.Session{UserID: "user-1", Username: "parent01", AccessToken: "token"}, nil
		},
	}
}

func signedOut() *SessionProviderMock {
	return &SessionProviderMock{
		SessionFunc: func(ctx context.Context) (*auth.Session, error) {
			return nil, auth.ErrNotAuthenticated
		},
	}
}

func acceptingRemote() *RemoteStoreMock {
	return &RemoteStoreMock{
		UpsertRecordFunc: func(ctx context.Context, accessToken string, record *models.Record) (int64, error) {
			return 1, nil
		},
	}
}

func record(collection models.Collection, id string, updatedAt int64, fields map[string]any) *models.Record {
	return &models.Record{ID: id, Collection: collection, UpdatedAt: updatedAt, Fields: fields}
}

func resolvedRecord(collection models.Collection, id string, choice models.ResolutionChoice) models.ResolvedConflict {
	label := models.MustSpec(collection).LabelField
	return models.ResolvedConflict{
		ID:         id,
		Collection: collection,
		Choice:     choice,
		Data:       record(collection, id, 1000, map[string]any{label: "x-" + id}),
	}
}
