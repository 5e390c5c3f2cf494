package conflict

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/jubeesync/internal/models"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	e := NewEngine(WithClock(func() time.Time { return fixed }), WithEpsilon(0))
	t.Cleanup(e.Close)
	return e
}

// mixedPairs возвращает пары для трех коллекций, одна из которых без расхождений
func mixedPairs() []SnapshotPair {
	return []SnapshotPair{
		scorePair("gp-1"),
		scorePair("gp-2"),
		{
			Local:  newRecord("d-1", models.CollectionDrawing, 50, map[string]any{"title": "Sun", "favorite": true}),
			Remote: newRecord("d-1", models.CollectionDrawing, 20, map[string]any{"title": "Sun", "favorite": false}),
		},
		{
			Local:  newRecord("a-1", models.CollectionAchievement, 10, map[string]any{"title": "First steps"}),
			Remote: newRecord("a-1", models.CollectionAchievement, 40, map[string]any{"title": "First steps"}),
		},
	}
}

func TestEngine_Ingest(t *testing.T) {
	e := newTestEngine(t)

	pairs := mixedPairs()
	pairs = append(pairs, SnapshotPair{
		Local:  newRecord("", models.CollectionDrawing, 10, nil),
		Remote: newRecord("d-9", models.CollectionDrawing, 10, nil),
	})

	result := e.Ingest(pairs)
	assert.Equal(t, 3, result.Detected)
	assert.Equal(t, 1, result.Unchanged)
	assert.Equal(t, 1, result.Malformed)
	require.Len(t, result.Errors, 1)
	assert.ErrorIs(t, result.Errors[0], ErrMalformedSnapshot)

	conflicts := e.GetConflicts()
	require.Len(t, conflicts, 3)
	assert.Equal(t, "gp-1", conflicts[0].ID)
	assert.Equal(t, "gp-2", conflicts[1].ID)
	assert.Equal(t, "d-1", conflicts[2].ID)
	assert.Equal(t, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), conflicts[0].DetectedAt)
}

func TestEngine_IngestReplacesExistingGroup(t *testing.T) {
	e := newTestEngine(t)
	e.Ingest(mixedPairs())

	updated := scorePair("gp-1")
	updated.Remote.Fields["level"] = 3
	e.Ingest([]SnapshotPair{updated})

	conflicts := e.GetConflicts()
	require.Len(t, conflicts, 3)
	assert.Equal(t, "gp-1", conflicts[0].ID, "replaced group keeps its position")
	assert.Equal(t, []string{"level", "score"}, conflicts[0].FieldNames())
}

func TestEngine_IngestRejectsIDReusedAcrossCollections(t *testing.T) {
	e := newTestEngine(t)

	drawing := SnapshotPair{
		Local:  newRecord("x-1", models.CollectionDrawing, 50, map[string]any{"title": "Sun"}),
		Remote: newRecord("x-1", models.CollectionDrawing, 20, map[string]any{"title": "Moon"}),
	}

	result := e.Ingest([]SnapshotPair{scorePair("x-1"), drawing})
	assert.Equal(t, 1, result.Detected)
	assert.Equal(t, 1, result.Malformed)
	require.Len(t, result.Errors, 1)
	assert.ErrorIs(t, result.Errors[0], ErrIDCollision)
	assert.ErrorIs(t, result.Errors[0], ErrMalformedSnapshot)

	// первая группа не затерта
	group, ok := e.Get("x-1")
	require.True(t, ok)
	assert.Equal(t, models.CollectionGameProgress, group.Collection)
	assert.Equal(t, []string{"score"}, group.FieldNames())

	// Requeue тоже не подменяет группу другой коллекции
	assert.Equal(t, 0, e.Requeue(models.ConflictGroup{
		ID:         "x-1",
		Collection: models.CollectionDrawing,
		Conflicts:  []models.ConflictField{{Field: "title", LocalValue: "Sun", ServerValue: "Moon"}},
	}))
	assert.Equal(t, 1, e.Len())

	// после разрешения id свободен для другой коллекции
	_, err := e.ResolveConflict("x-1", models.ChoiceServer)
	require.NoError(t, err)

	result = e.Ingest([]SnapshotPair{drawing})
	assert.Equal(t, 1, result.Detected)
	group, ok = e.Get("x-1")
	require.True(t, ok)
	assert.Equal(t, models.CollectionDrawing, group.Collection)
}

func TestEngine_GetConflictsReturnsCopies(t *testing.T) {
	e := newTestEngine(t)
	e.Ingest([]SnapshotPair{scorePair("gp-1")})

	conflicts := e.GetConflicts()
	conflicts[0].Local.Fields["score"] = 0
	conflicts[0].Conflicts[0].Field = "changed"

	group, ok := e.Get("gp-1")
	require.True(t, ok)
	assert.Equal(t, 10, group.Local.Fields["score"])
	assert.Equal(t, "score", group.Conflicts[0].Field)
}

func TestEngine_ResolveConflict(t *testing.T) {
	e := newTestEngine(t)
	e.Ingest(mixedPairs())

	resolved, err := e.ResolveConflict("gp-1", models.ChoiceLocal)
	require.NoError(t, err)
	assert.Equal(t, 10, resolved.Data.Fields["score"])
	assert.Equal(t, 2, e.Len())

	_, ok := e.Get("gp-1")
	assert.False(t, ok)

	// повторное разрешение того же id
	_, err = e.ResolveConflict("gp-1", models.ChoiceLocal)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 2, e.Len())
}

func TestEngine_InvalidChoiceDoesNotMutate(t *testing.T) {
	e := newTestEngine(t)
	e.Ingest(mixedPairs())

	_, err := e.ResolveConflict("gp-1", models.ResolutionChoice("newest"))
	assert.ErrorIs(t, err, ErrInvalidChoice)

	_, err = e.ResolveAll(models.ResolutionChoice(""))
	assert.ErrorIs(t, err, ErrInvalidChoice)

	_, err = e.ResolveBatch([]string{"gp-1"}, models.ResolutionChoice("both"))
	assert.ErrorIs(t, err, ErrInvalidChoice)

	assert.Equal(t, 3, e.Len())
}

func TestEngine_ResolveAll(t *testing.T) {
	e := newTestEngine(t)
	e.Ingest(mixedPairs())

	resolved, err := e.ResolveAll(models.ChoiceServer)
	require.NoError(t, err)
	require.Len(t, resolved, 3)
	assert.Equal(t, "gp-1", resolved[0].ID)
	assert.Equal(t, 20, resolved[0].Data.Fields["score"])
	assert.Equal(t, false, resolved[2].Data.Fields["favorite"])
	assert.Zero(t, e.Len())

	resolved, err = e.ResolveAll(models.ChoiceServer)
	require.NoError(t, err)
	assert.Empty(t, resolved)
}

func TestEngine_ResolveByStore(t *testing.T) {
	e := newTestEngine(t)
	e.Ingest(mixedPairs())

	resolved, err := e.ResolveByStore(models.CollectionGameProgress, models.ChoiceMerge)
	require.NoError(t, err)
	require.Len(t, resolved, 2)
	for _, rc := range resolved {
		assert.Equal(t, models.CollectionGameProgress, rc.Collection)
		assert.Equal(t, 20, rc.Data.Fields["score"])
	}

	conflicts := e.GetConflicts()
	require.Len(t, conflicts, 1)
	assert.Equal(t, models.CollectionDrawing, conflicts[0].Collection)

	// в коллекции нет конфликтов
	resolved, err = e.ResolveByStore(models.CollectionChildProfile, models.ChoiceMerge)
	require.NoError(t, err)
	assert.Empty(t, resolved)

	assert.Panics(t, func() {
		_, _ = e.ResolveByStore(models.Collection("homework"), models.ChoiceMerge)
	})
}

func TestEngine_ResolveBatch(t *testing.T) {
	e := newTestEngine(t)
	e.Ingest(mixedPairs())

	resolved, err := e.ResolveBatch([]string{"d-1", "missing", "gp-2", "d-1"}, models.ChoiceLocal)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "missing")

	require.Len(t, resolved, 2)
	assert.Equal(t, "d-1", resolved[0].ID)
	assert.Equal(t, "gp-2", resolved[1].ID)

	conflicts := e.GetConflicts()
	require.Len(t, conflicts, 1)
	assert.Equal(t, "gp-1", conflicts[0].ID)
}

func TestEngine_BatchEquivalentToIndividual(t *testing.T) {
	for _, choice := range []models.ResolutionChoice{models.ChoiceLocal, models.ChoiceServer, models.ChoiceMerge} {
		t.Run(string(choice), func(t *testing.T) {
			batch := newTestEngine(t)
			single := newTestEngine(t)
			batch.Ingest(mixedPairs())
			single.Ingest(mixedPairs())

			ids := []string{"gp-1", "d-1"}

			batched, err := batch.ResolveBatch(ids, choice)
			require.NoError(t, err)

			individual := make([]models.ResolvedConflict, 0, len(ids))
			for _, id := range ids {
				rc, err := single.ResolveConflict(id, choice)
				require.NoError(t, err)
				individual = append(individual, rc)
			}

			assert.Equal(t, individual, batched)
			assert.Equal(t, single.GetConflicts(), batch.GetConflicts())
		})
	}
}

func TestEngine_GetDiagnosis(t *testing.T) {
	e := newTestEngine(t)
	e.Ingest(mixedPairs())

	diagnosis := e.GetDiagnosis()
	assert.Equal(t, map[string]models.ResolutionChoice{
		"gp-1": models.ChoiceServer,
		"gp-2": models.ChoiceServer,
		"d-1":  models.ChoiceLocal,
	}, diagnosis)

	// рекомендация не меняет состояние
	assert.Equal(t, 3, e.Len())
	assert.Equal(t, diagnosis, e.GetDiagnosis())
}

func TestEngine_Requeue(t *testing.T) {
	e := newTestEngine(t)
	e.Ingest(mixedPairs())

	group, ok := e.Get("gp-1")
	require.True(t, ok)
	_, err := e.ResolveConflict("gp-1", models.ChoiceLocal)
	require.NoError(t, err)

	assert.Equal(t, 1, e.Requeue(group))
	assert.Equal(t, 0, e.Requeue(group), "already pending")
	assert.Equal(t, 0, e.Requeue(models.ConflictGroup{ID: "empty"}))

	_, ok = e.Get("gp-1")
	assert.True(t, ok)
	assert.Equal(t, 3, e.Len())
}

func TestEngine_ConcurrentResolveSameID(t *testing.T) {
	e := newTestEngine(t)
	e.Ingest([]SnapshotPair{scorePair("gp-1")})

	const workers = 16
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		notFound  atomic.Int32
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.ResolveConflict("gp-1", models.ChoiceMerge)
			switch {
			case err == nil:
				succeeded.Add(1)
			case assert.ErrorIs(t, err, ErrNotFound):
				notFound.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(workers-1), notFound.Load())
}

func TestEngine_SubscribeReceivesUpdates(t *testing.T) {
	e := newTestEngine(t)

	var (
		mu   sync.Mutex
		last []models.ConflictGroup
		seen int
	)
	unsubscribe := e.Subscribe(func(conflicts []models.ConflictGroup) {
		mu.Lock()
		defer mu.Unlock()
		last = conflicts
		seen++
	})
	defer unsubscribe()

	// начальное состояние приходит сразу
	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return seen >= 1 && len(last) == 0
	}, time.Second, 5*time.Millisecond)

	e.Ingest(mixedPairs())
	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(last) == 3
	}, time.Second, 5*time.Millisecond)

	_, err := e.ResolveAll(models.ChoiceServer)
	require.NoError(t, err)
	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(last) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestEngine_IngestManyRecords(t *testing.T) {
	e := newTestEngine(t)

	pairs := make([]SnapshotPair, 0, 200)
	for i := 0; i < 200; i++ {
		pairs = append(pairs, scorePair(fmt.Sprintf("gp-%03d", i)))
	}
	result := e.Ingest(pairs)
	assert.Equal(t, 200, result.Detected)

	conflicts := e.GetConflicts()
	require.Len(t, conflicts, 200)
	for i, g := range conflicts {
		assert.Equal(t, fmt.Sprintf("gp-%03d", i), g.ID)
	}
}
