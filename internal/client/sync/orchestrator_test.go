package sync

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/jubeesync/internal/client/auth"
	"github.com/iudanet/jubeesync/internal/client/storage"
	"github.com/iudanet/jubeesync/internal/models"
)

func upsertedIDs(remote *RemoteStoreMock) []string {
	var ids []string
	for _, call := range remote.UpsertRecordCalls() {
		ids = append(ids, call.Record.ID)
	}
	sort.Strings(ids)
	return ids
}

func TestOrchestrator_Persist_GroupsByCollection(t *testing.T) {
	mem := newMemoryRecords()
	records := mem.mock()
	outbox := newMemoryOutbox()
	outboxMock := outbox.mock()
	remote := acceptingRemote()

	o := NewOrchestrator(records, outboxMock, remote, signedIn(), OrchestratorConfig{}, nil)

	summary := o.Persist(context.Background(), []models.ResolvedConflict{
		resolvedRecord(models.CollectionGameProgress, "gp-1", models.ChoiceLocal),
		resolvedRecord(models.CollectionGameProgress, "gp-2", models.ChoiceServer),
		resolvedRecord(models.CollectionDrawing, "d-1", models.ChoiceMerge),
	})

	require.NoError(t, summary.Err())
	assert.Equal(t, 3, summary.Persisted)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, 2, summary.RemoteSynced)
	assert.Equal(t, 0, summary.RemotePending)

	// одна пакетная запись на коллекцию, поштучных записей нет
	calls := records.PutBulkCalls()
	require.Len(t, calls, 2)
	sizes := map[models.Collection]int{}
	for _, call := range calls {
		sizes[call.Collection] = len(call.Records)
	}
	assert.Equal(t, map[models.Collection]int{
		models.CollectionGameProgress: 2,
		models.CollectionDrawing:      1,
	}, sizes)
	assert.Empty(t, records.PutCalls())

	// серверная версия на сервер не отправляется
	assert.Equal(t, []string{"d-1", "gp-1"}, upsertedIDs(remote))

	require.Len(t, summary.Results, 3)
	assert.Equal(t, "gp-1", summary.Results[0].Key.ID)
	assert.Equal(t, RemoteSynced, summary.Results[0].Remote)
	assert.Equal(t, RemoteNotNeeded, summary.Results[1].Remote)
	assert.Equal(t, RemoteSynced, summary.Results[2].Remote)

	for _, id := range []string{"gp-1", "gp-2"} {
		_, ok := mem.get(models.CollectionGameProgress, id)
		assert.True(t, ok, id)
	}
	_, ok := mem.get(models.CollectionDrawing, "d-1")
	assert.True(t, ok)
	assert.Equal(t, 0, outbox.len())
}

func TestOrchestrator_Persist_Empty(t *testing.T) {
	records := newMemoryRecords().mock()
	remote := acceptingRemote()
	o := NewOrchestrator(records, newMemoryOutbox().mock(), remote, signedIn(), OrchestratorConfig{}, nil)

	summary := o.Persist(context.Background(), nil)

	assert.Empty(t, summary.Results)
	assert.NoError(t, summary.Err())
	assert.Empty(t, records.PutBulkCalls())
	assert.Empty(t, remote.UpsertRecordCalls())
}

func TestOrchestrator_Persist_IsolatesFailedRecord(t *testing.T) {
	mem := newMemoryRecords()
	mem.failPut = func(r *models.Record) error {
		if r.ID == "gp-bad" {
			return errors.New("disk full")
		}
		return nil
	}
	records := mem.mock()
	remote := acceptingRemote()

	o := NewOrchestrator(records, newMemoryOutbox().mock(), remote, signedIn(), OrchestratorConfig{}, nil)

	summary := o.Persist(context.Background(), []models.ResolvedConflict{
		resolvedRecord(models.CollectionGameProgress, "gp-1", models.ChoiceLocal),
		resolvedRecord(models.CollectionGameProgress, "gp-bad", models.ChoiceLocal),
		resolvedRecord(models.CollectionDrawing, "d-1", models.ChoiceLocal),
	})

	assert.Equal(t, 2, summary.Persisted)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 2, summary.RemoteSynced)

	bad := summary.Results[1]
	assert.False(t, bad.Persisted())
	assert.ErrorIs(t, bad.LocalErr, ErrLocalWriteFailed)
	assert.Contains(t, bad.LocalErr.Error(), "disk full")
	assert.Equal(t, RemoteSkipped, bad.Remote)

	assert.Equal(t, []models.RecordKey{{Collection: models.CollectionGameProgress, ID: "gp-bad"}}, summary.FailedKeys())
	assert.ErrorIs(t, summary.Err(), ErrLocalWriteFailed)

	// пакет game-progress отклонен, записи повторены по одной
	assert.Len(t, records.PutCalls(), 2)
	assert.Equal(t, []string{"d-1", "gp-1"}, upsertedIDs(remote))

	_, ok := mem.get(models.CollectionGameProgress, "gp-1")
	assert.True(t, ok)
	_, ok = mem.get(models.CollectionGameProgress, "gp-bad")
	assert.False(t, ok)
}

func TestOrchestrator_Persist_UnknownCollection(t *testing.T) {
	records := newMemoryRecords().mock()
	remote := acceptingRemote()
	o := NewOrchestrator(records, newMemoryOutbox().mock(), remote, signedIn(), OrchestratorConfig{}, nil)

	summary := o.Persist(context.Background(), []models.ResolvedConflict{
		{
			ID:         "t-1",
			Collection: models.Collection("toys"),
			Choice:     models.ChoiceLocal,
			Data:       record(models.Collection("toys"), "t-1", 1, map[string]any{"name": "ball"}),
		},
		resolvedRecord(models.CollectionAchievement, "a-1", models.ChoiceLocal),
	})

	assert.Equal(t, 1, summary.Failed)
	assert.ErrorIs(t, summary.Results[0].LocalErr, ErrLocalWriteFailed)
	assert.ErrorIs(t, summary.Results[0].LocalErr, models.ErrUnknownCollection)
	assert.True(t, summary.Results[1].Persisted())
	require.Len(t, records.PutBulkCalls(), 1)
	assert.Equal(t, []string{"a-1"}, upsertedIDs(remote))
}

func TestOrchestrator_Persist_RemoteFailureQueues(t *testing.T) {
	mem := newMemoryRecords()
	outbox := newMemoryOutbox()
	remote := &RemoteStoreMock{
		UpsertRecordFunc: func(ctx context.Context, accessToken string, record *models.Record) (int64, error) {
			if record.ID == "d-1" {
				return 0, errors.New("connection refused")
			}
			return 3, nil
		},
	}

	o := NewOrchestrator(mem.mock(), outbox.mock(), remote, signedIn(), OrchestratorConfig{}, nil)

	summary := o.Persist(context.Background(), []models.ResolvedConflict{
		resolvedRecord(models.CollectionGameProgress, "gp-1", models.ChoiceMerge),
		resolvedRecord(models.CollectionDrawing, "d-1", models.ChoiceLocal),
	})

	// локально сохранено все, удаленная ошибка не откатывает запись
	assert.Equal(t, 2, summary.Persisted)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, 1, summary.RemoteSynced)
	assert.Equal(t, 1, summary.RemotePending)

	failed := summary.Results[1]
	assert.True(t, failed.Persisted())
	assert.ErrorIs(t, failed.RemoteErr, ErrRemoteSyncFailed)
	assert.Equal(t, RemoteQueued, failed.Remote)
	assert.Empty(t, summary.FailedKeys())

	item, ok := outbox.get(models.RecordKey{Collection: models.CollectionDrawing, ID: "d-1"})
	require.True(t, ok)
	assert.Equal(t, models.ChoiceLocal, item.Choice)
	assert.Equal(t, "connection refused", item.LastError)
	assert.Equal(t, "d-1", item.Record.ID)
	assert.Equal(t, 1, outbox.len())
}

func TestOrchestrator_Persist_NoSessionDefersRemote(t *testing.T) {
	mem := newMemoryRecords()
	outbox := newMemoryOutbox()
	remote := acceptingRemote()

	o := NewOrchestrator(mem.mock(), outbox.mock(), remote, signedOut(), OrchestratorConfig{}, nil)

	summary := o.Persist(context.Background(), []models.ResolvedConflict{
		resolvedRecord(models.CollectionGameProgress, "gp-1", models.ChoiceLocal),
		resolvedRecord(models.CollectionChildProfile, "c-1", models.ChoiceMerge),
		resolvedRecord(models.CollectionStickerUnlock, "s-1", models.ChoiceServer),
	})

	assert.NoError(t, summary.Err())
	assert.Equal(t, 3, summary.Persisted)
	assert.Equal(t, 0, summary.RemoteSynced)
	assert.Equal(t, 2, summary.RemotePending)
	assert.Empty(t, remote.UpsertRecordCalls())
	assert.Equal(t, 2, outbox.len())
	assert.Equal(t, RemoteNotNeeded, summary.Results[2].Remote)
}

func TestOrchestrator_Persist_ServerChoiceDropsStaleOutboxEntry(t *testing.T) {
	outbox := newMemoryOutbox()
	stale := &storage.PendingRemote{
		Record: record(models.CollectionGameProgress, "gp-1", 1, map[string]any{"game": "dance", "level": 1}),
		Choice: models.ChoiceLocal,
	}
	require.NoError(t, outbox.mock().AddPendingRemote(context.Background(), stale))

	remote := acceptingRemote()
	o := NewOrchestrator(newMemoryRecords().mock(), outbox.mock(), remote, signedIn(), OrchestratorConfig{}, nil)

	summary := o.Persist(context.Background(), []models.ResolvedConflict{
		resolvedRecord(models.CollectionGameProgress, "gp-1", models.ChoiceServer),
	})

	assert.Equal(t, 1, summary.Persisted)
	assert.Empty(t, remote.UpsertRecordCalls())
	assert.Equal(t, 0, outbox.len())
}

func TestOrchestrator_Persist_RemoteTimeout(t *testing.T) {
	outbox := newMemoryOutbox()
	remote := &RemoteStoreMock{
		UpsertRecordFunc: func(ctx context.Context, accessToken string, record *models.Record) (int64, error) {
			<-ctx.Done()
			return 0, ctx.Err()
		},
	}

	o := NewOrchestrator(newMemoryRecords().mock(), outbox.mock(), remote, signedIn(),
		OrchestratorConfig{RemoteTimeout: 20 * time.Millisecond}, nil)

	start := time.Now()
	summary := o.Persist(context.Background(), []models.ResolvedConflict{
		resolvedRecord(models.CollectionDrawing, "d-1", models.ChoiceLocal),
		resolvedRecord(models.CollectionDrawing, "d-2", models.ChoiceLocal),
	})
	elapsed := time.Since(start)

	assert.Less(t, elapsed, time.Second)
	assert.Equal(t, 2, summary.Persisted)
	assert.Equal(t, 2, summary.RemotePending)
	for _, res := range summary.Results {
		assert.ErrorIs(t, res.RemoteErr, ErrRemoteSyncFailed)
		assert.ErrorIs(t, res.RemoteErr, context.DeadlineExceeded)
	}
	assert.Equal(t, 2, outbox.len())
}

func TestOrchestrator_Persist_RunsConcurrently(t *testing.T) {
	const (
		perCollection = 10
		delay         = 10 * time.Millisecond
	)

	records := newMemoryRecords().mock()
	putBulk := records.PutBulkFunc
	records.PutBulkFunc = func(ctx context.Context, collection models.Collection, recs []*models.Record) error {
		time.Sleep(delay)
		return putBulk(ctx, collection, recs)
	}

	var inFlight, peak atomic.Int32
	remote := &RemoteStoreMock{
		UpsertRecordFunc: func(ctx context.Context, accessToken string, record *models.Record) (int64, error) {
			n := inFlight.Add(1)
			defer inFlight.Add(-1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(delay)
			return 1, nil
		},
	}

	var resolved []models.ResolvedConflict
	for _, collection := range models.AllCollections() {
		for i := range perCollection {
			resolved = append(resolved, resolvedRecord(collection, fmt.Sprintf("%s-%d", collection, i), models.ChoiceLocal))
		}
	}
	require.Len(t, resolved, 50)

	o := NewOrchestrator(records, newMemoryOutbox().mock(), remote, signedIn(), OrchestratorConfig{}, nil)

	start := time.Now()
	summary := o.Persist(context.Background(), resolved)
	elapsed := time.Since(start)

	assert.Equal(t, 50, summary.Persisted)
	assert.Equal(t, 50, summary.RemoteSynced)
	assert.Len(t, records.PutBulkCalls(), 5)

	// последовательно это заняло бы 50*10ms + 5*10ms
	assert.Less(t, elapsed, 300*time.Millisecond)
	assert.Greater(t, peak.Load(), int32(1))
	assert.LessOrEqual(t, peak.Load(), int32(DefaultMaxParallel))
}

func TestOrchestrator_Persist_RespectsMaxParallel(t *testing.T) {
	var inFlight, peak atomic.Int32
	remote := &RemoteStoreMock{
		UpsertRecordFunc: func(ctx context.Context, accessToken string, record *models.Record) (int64, error) {
			n := inFlight.Add(1)
			defer inFlight.Add(-1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			return 1, nil
		},
	}

	var resolved []models.ResolvedConflict
	for i := range 10 {
		resolved = append(resolved, resolvedRecord(models.CollectionAchievement, fmt.Sprintf("a-%d", i), models.ChoiceMerge))
	}

	o := NewOrchestrator(newMemoryRecords().mock(), newMemoryOutbox().mock(), remote, signedIn(),
		OrchestratorConfig{MaxParallel: 2}, nil)

	summary := o.Persist(context.Background(), resolved)

	assert.Equal(t, 10, summary.RemoteSynced)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestOrchestrator_RetryPending(t *testing.T) {
	ctx := context.Background()
	outbox := newMemoryOutbox()
	seed := outbox.mock()
	require.NoError(t, seed.AddPendingRemote(ctx, &storage.PendingRemote{
		Record: record(models.CollectionDrawing, "d-1", 10, map[string]any{"title": "Sun"}),
		Choice: models.ChoiceLocal,
	}))
	require.NoError(t, seed.AddPendingRemote(ctx, &storage.PendingRemote{
		Record:   record(models.CollectionGameProgress, "gp-1", 10, map[string]any{"game": "dance", "level": 2}),
		Choice:   models.ChoiceMerge,
		Attempts: 2,
	}))

	remote := &RemoteStoreMock{
		UpsertRecordFunc: func(ctx context.Context, accessToken string, record *models.Record) (int64, error) {
			assert.Equal(t, "token", accessToken)
			if record.ID == "gp-1" {
				return 0, errors.New("service unavailable")
			}
			return 7, nil
		},
	}

	o := NewOrchestrator(newMemoryRecords().mock(), outbox.mock(), remote, signedIn(), OrchestratorConfig{}, nil)

	result, err := o.RetryPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Synced)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.ErrorIs(t, result.Errors[0], ErrRemoteSyncFailed)

	assert.Equal(t, 1, outbox.len())
	item, ok := outbox.get(models.RecordKey{Collection: models.CollectionGameProgress, ID: "gp-1"})
	require.True(t, ok)
	assert.Equal(t, 3, item.Attempts)
	assert.Equal(t, "service unavailable", item.LastError)
}

func TestOrchestrator_RetryPending_KeepsEntryReplacedDuringRetry(t *testing.T) {
	ctx := context.Background()
	outbox := newMemoryOutbox()
	seed := outbox.mock()

	failing := models.RecordKey{Collection: models.CollectionGameProgress, ID: "gp-1"}
	passing := models.RecordKey{Collection: models.CollectionDrawing, ID: "d-1"}
	require.NoError(t, seed.AddPendingRemote(ctx, &storage.PendingRemote{
		Record: record(failing.Collection, failing.ID, 10, map[string]any{"game": "dance", "level": 2}),
		Choice: models.ChoiceLocal,
	}))
	require.NoError(t, seed.AddPendingRemote(ctx, &storage.PendingRemote{
		Record: record(passing.Collection, passing.ID, 10, map[string]any{"title": "Sun"}),
		Choice: models.ChoiceLocal,
	}))

	// пока идет отправка, пользователь заново разрешает обе записи
	requeue := func(rec *models.Record) {
		newer := rec.Clone()
		newer.UpdatedAt = 99
		require.NoError(t, seed.AddPendingRemote(ctx, &storage.PendingRemote{Record: newer, Choice: models.ChoiceMerge}))
	}
	remote := &RemoteStoreMock{
		UpsertRecordFunc: func(ctx context.Context, accessToken string, record *models.Record) (int64, error) {
			if record.UpdatedAt == 99 {
				return 8, nil
			}
			requeue(record)
			if record.Key() == failing {
				return 0, errors.New("service unavailable")
			}
			return 7, nil
		},
	}

	o := NewOrchestrator(newMemoryRecords().mock(), outbox.mock(), remote, signedIn(), OrchestratorConfig{}, nil)

	result, err := o.RetryPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Synced)
	assert.Equal(t, 1, result.Failed)

	// обе новые записи остались в очереди нетронутыми
	require.Equal(t, 2, outbox.len())
	for _, key := range []models.RecordKey{failing, passing} {
		item, ok := outbox.get(key)
		require.True(t, ok, key)
		assert.Equal(t, models.ChoiceMerge, item.Choice, key)
		assert.Equal(t, int64(99), item.Record.UpdatedAt, key)
		assert.Zero(t, item.Attempts, key)
		assert.Empty(t, item.LastError, key)
	}

	// следующий повтор отправляет уже новые версии
	result, err = o.RetryPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Synced)
	assert.Equal(t, 0, outbox.len())
}

func TestOrchestrator_RetryPending_SkipsLocalEdits(t *testing.T) {
	outbox := newMemoryOutbox()
	outbox.edit(record(models.CollectionDrawing, "d-offline", 10, map[string]any{"title": "Rocket"}))

	remote := acceptingRemote()
	o := NewOrchestrator(newMemoryRecords().mock(), outbox.mock(), remote, signedIn(), OrchestratorConfig{}, nil)

	result, err := o.RetryPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &RetryResult{}, result)
	assert.Empty(t, remote.UpsertRecordCalls(), "edits are pushed by the scanner with a revision check")
	assert.Equal(t, 1, outbox.len())
}

func TestOrchestrator_RetryPending_EmptyOutbox(t *testing.T) {
	remote := acceptingRemote()
	o := NewOrchestrator(newMemoryRecords().mock(), newMemoryOutbox().mock(), remote, signedIn(), OrchestratorConfig{}, nil)

	result, err := o.RetryPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &RetryResult{}, result)
	assert.Empty(t, remote.UpsertRecordCalls())
}

func TestOrchestrator_RetryPending_NotAuthenticated(t *testing.T) {
	outbox := newMemoryOutbox().mock()
	o := NewOrchestrator(newMemoryRecords().mock(), outbox, acceptingRemote(), signedOut(), OrchestratorConfig{}, nil)

	result, err := o.RetryPending(context.Background())
	assert.Nil(t, result)
	assert.ErrorIs(t, err, auth.ErrNotAuthenticated)
	assert.Empty(t, outbox.ListPendingRemoteCalls())
}
