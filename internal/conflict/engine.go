package conflict

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/iudanet/jubeesync/internal/models"
)

// DefaultEpsilon timestamps closer than this are treated as concurrent by the diagnosis.
const DefaultEpsilon = time.Second

// SnapshotPair - локальный и удаленный снимок одной записи, полученные во время синхронизации
type SnapshotPair struct {
	Local  *models.Record
	Remote *models.Record
}

// IngestResult summarizes one Ingest call.
type IngestResult struct {
	Errors    []error // Errors причины отклонения некорректных пар
	Detected  int     // Detected количество пар с расхождениями
	Unchanged int     // Unchanged количество пар без расхождений
	Malformed int     // Malformed количество отклоненных пар
}

// Engine владеет множеством ожидающих разрешения конфликтов.
// Изменяется только через Ingest, Requeue и методы Resolve*.
// Очередь хранится по ключу (collection, id); индекс ids гарантирует,
// что голый id однозначно указывает на одну группу.
type Engine struct {
	now     func() time.Time
	bus     *Bus
	logger  *slog.Logger
	pending map[models.RecordKey]pendingEntry
	ids     map[string]models.RecordKey
	epsilon time.Duration
	seq     uint64
	mu      sync.Mutex
}

type pendingEntry struct {
	group models.ConflictGroup
	seq   uint64
}

// Option configures an Engine.
type Option func(*Engine)

// WithEpsilon sets the tolerance used by the diagnosis heuristic.
func WithEpsilon(epsilon time.Duration) Option {
	return func(e *Engine) {
		e.epsilon = epsilon
	}
}

// WithClock overrides the clock used to stamp DetectedAt.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithLogger sets the engine logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates an engine with an empty pending set.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		now:     time.Now,
		bus:     NewBus(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		pending: make(map[models.RecordKey]pendingEntry),
		ids:     make(map[string]models.RecordKey),
		epsilon: DefaultEpsilon,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Close stops delivery to every subscriber.
func (e *Engine) Close() {
	e.bus.Close()
}

// Ingest runs detection on every pair and adds the resulting groups to the pending set.
// A group for a record that is already pending replaces the old one.
// Malformed pairs are logged and skipped, and so are groups whose id is already
// pending in another collection (ErrIDCollision).
func (e *Engine) Ingest(pairs []SnapshotPair) IngestResult {
	var result IngestResult
	detected := make([]*models.ConflictGroup, 0, len(pairs))

	for _, pair := range pairs {
		group, err := Detect(pair.Local, pair.Remote)
		if err != nil {
			result.Malformed++
			result.Errors = append(result.Errors, err)
			e.logger.Warn("Rejected malformed snapshot pair", "error", err)
			continue
		}
		if group == nil {
			result.Unchanged++
			continue
		}
		detected = append(detected, group)
	}

	if len(detected) == 0 {
		return result
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	for _, group := range detected {
		key := group.Key()
		if owner, taken := e.ids[group.ID]; taken && owner != key {
			err := fmt.Errorf("%w: %s collides with pending %s", ErrIDCollision, key, owner)
			result.Malformed++
			result.Errors = append(result.Errors, err)
			e.logger.Error("Rejected conflict with a reused id", "key", key.String(), "pending", owner.String())
			continue
		}

		group.DetectedAt = now

		seq := e.nextSeq()
		if existing, ok := e.pending[key]; ok {
			// сохраняем позицию в списке, меняем только содержимое
			seq = existing.seq
		}
		e.addLocked(*group, seq)
		result.Detected++

		e.logger.Debug("Conflict detected",
			"id", group.ID,
			"collection", group.Collection,
			"fields", group.FieldNames())
	}

	if result.Detected > 0 {
		e.publishLocked()
	}

	e.logger.Info("Ingested snapshot pairs",
		"detected", result.Detected,
		"unchanged", result.Unchanged,
		"malformed", result.Malformed,
		"pending", len(e.pending))

	return result
}

// GetConflicts returns the pending groups in detection order.
func (e *Engine) GetConflicts() []models.ConflictGroup {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// Get returns the pending group for id.
func (e *Engine) Get(id string) (models.ConflictGroup, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	entry, ok := e.lookupLocked(id)
	if !ok {
		return models.ConflictGroup{}, false
	}
	return cloneGroup(entry.group), true
}

// Len returns the number of pending conflicts.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.pending)
}

// GetDiagnosis returns one recommendation per pending group.
func (e *Engine) GetDiagnosis() map[string]models.ResolutionChoice {
	e.mu.Lock()
	defer e.mu.Unlock()

	diagnosis := make(map[string]models.ResolutionChoice, len(e.pending))
	for _, entry := range e.pending {
		diagnosis[entry.group.ID] = Diagnose(&entry.group, e.epsilon)
	}
	return diagnosis
}

// Subscribe registers fn; it receives the current list immediately and after every change.
func (e *Engine) Subscribe(fn Listener) (unsubscribe func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.bus.Subscribe(fn, e.snapshotLocked())
}

// ResolveConflict resolves the pending group for id and removes it from the pending set.
// A second call for the same id returns ErrNotFound.
func (e *Engine) ResolveConflict(id string, choice models.ResolutionChoice) (models.ResolvedConflict, error) {
	if err := e.checkChoice(choice); err != nil {
		return models.ResolvedConflict{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	entry, ok := e.lookupLocked(id)
	if !ok {
		return models.ResolvedConflict{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	resolved, err := Resolve(&entry.group, choice)
	if err != nil {
		return models.ResolvedConflict{}, fmt.Errorf("failed to resolve %s: %w", id, err)
	}

	e.removeLocked(entry.group.Key())
	e.publishLocked()

	e.logger.Info("Conflict resolved", "id", id, "collection", entry.group.Collection, "choice", choice)

	return resolved, nil
}

// ResolveAll applies choice to every pending group across all collections.
func (e *Engine) ResolveAll(choice models.ResolutionChoice) ([]models.ResolvedConflict, error) {
	if err := e.checkChoice(choice); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return e.resolveLocked(e.orderedKeysLocked(func(models.ConflictGroup) bool { return true }), choice)
}

// ResolveByStore applies choice to every pending group of one collection.
// Коллекция вне закрытого набора - ошибка программиста.
func (e *Engine) ResolveByStore(collection models.Collection, choice models.ResolutionChoice) ([]models.ResolvedConflict, error) {
	models.MustSpec(collection)

	if err := e.checkChoice(choice); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	keys := e.orderedKeysLocked(func(g models.ConflictGroup) bool {
		return g.Collection == collection
	})
	return e.resolveLocked(keys, choice)
}

// ResolveBatch applies choice to exactly the named ids.
// Known ids are resolved even when some ids are unknown; the unknown ones are reported
// through an error that matches ErrNotFound.
func (e *Engine) ResolveBatch(ids []string, choice models.ResolutionChoice) ([]models.ResolvedConflict, error) {
	if err := e.checkChoice(choice); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	var missing []error
	known := make([]models.RecordKey, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))

	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		entry, ok := e.lookupLocked(id)
		if !ok {
			missing = append(missing, fmt.Errorf("%w: %s", ErrNotFound, id))
			continue
		}
		known = append(known, entry.group.Key())
	}

	resolved, err := e.resolveLocked(known, choice)
	if err != nil {
		missing = append(missing, err)
	}

	return resolved, errors.Join(missing...)
}

// Requeue returns groups to the pending set after their resolution could not be persisted.
// A group is skipped when its record was detected again in the meantime, or when
// its id is now pending in another collection.
func (e *Engine) Requeue(groups ...models.ConflictGroup) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	added := 0
	for _, group := range groups {
		if len(group.Conflicts) == 0 {
			continue
		}
		key := group.Key()
		if owner, taken := e.ids[group.ID]; taken {
			if owner != key {
				e.logger.Error("Cannot requeue conflict with a reused id",
					"key", key.String(), "pending", owner.String())
			}
			continue
		}
		e.addLocked(group, e.nextSeq())
		added++
	}

	if added > 0 {
		e.publishLocked()
		e.logger.Info("Conflicts returned to pending set", "count", added)
	}

	return added
}

// resolveLocked разрешает группы по списку ключей. Группа, которую не удалось разрешить,
// остается в очереди. Вызывается под e.mu.
func (e *Engine) resolveLocked(keys []models.RecordKey, choice models.ResolutionChoice) ([]models.ResolvedConflict, error) {
	resolved := make([]models.ResolvedConflict, 0, len(keys))
	var errs []error

	for _, key := range keys {
		entry := e.pending[key]
		rc, err := Resolve(&entry.group, choice)
		if err != nil {
			e.logger.Error("Failed to resolve conflict", "key", key.String(), "error", err)
			errs = append(errs, fmt.Errorf("failed to resolve %s: %w", key, err))
			continue
		}
		e.removeLocked(key)
		resolved = append(resolved, rc)
	}

	if len(resolved) > 0 {
		e.publishLocked()
		e.logger.Info("Conflicts resolved", "count", len(resolved), "choice", choice, "pending", len(e.pending))
	}

	return resolved, errors.Join(errs...)
}

// checkChoice отклоняет значения вне перечисления до любых изменений состояния
func (e *Engine) checkChoice(choice models.ResolutionChoice) error {
	if err := choice.Validate(); err != nil {
		e.logger.Error("Invalid resolution choice", "choice", string(choice), "error", err)
		return err
	}
	return nil
}

// lookupLocked находит группу по голому id через индекс
func (e *Engine) lookupLocked(id string) (pendingEntry, bool) {
	key, ok := e.ids[id]
	if !ok {
		return pendingEntry{}, false
	}
	entry, ok := e.pending[key]
	return entry, ok
}

func (e *Engine) addLocked(group models.ConflictGroup, seq uint64) {
	key := group.Key()
	e.pending[key] = pendingEntry{group: group, seq: seq}
	e.ids[group.ID] = key
}

func (e *Engine) removeLocked(key models.RecordKey) {
	delete(e.pending, key)
	if e.ids[key.ID] == key {
		delete(e.ids, key.ID)
	}
}

func (e *Engine) orderedKeysLocked(keep func(models.ConflictGroup) bool) []models.RecordKey {
	entries := make([]pendingEntry, 0, len(e.pending))
	for _, entry := range e.pending {
		if keep(entry.group) {
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	keys := make([]models.RecordKey, 0, len(entries))
	for _, entry := range entries {
		keys = append(keys, entry.group.Key())
	}
	return keys
}

func (e *Engine) snapshotLocked() []models.ConflictGroup {
	keys := e.orderedKeysLocked(func(models.ConflictGroup) bool { return true })
	out := make([]models.ConflictGroup, 0, len(keys))
	for _, key := range keys {
		out = append(out, cloneGroup(e.pending[key].group))
	}
	return out
}

// publishLocked отправляет подписчикам новое состояние. Bus.Publish не блокируется,
// поэтому вызов под e.mu сохраняет порядок публикаций.
func (e *Engine) publishLocked() {
	e.bus.Publish(e.snapshotLocked())
}

func (e *Engine) nextSeq() uint64 {
	e.seq++
	return e.seq
}

// cloneGroup отдает наружу копию, чтобы подписчики не могли изменить группу в очереди
func cloneGroup(g models.ConflictGroup) models.ConflictGroup {
	out := g
	out.Conflicts = make([]models.ConflictField, len(g.Conflicts))
	copy(out.Conflicts, g.Conflicts)
	out.Local = g.Local.Clone()
	out.Remote = g.Remote.Clone()
	return out
}
