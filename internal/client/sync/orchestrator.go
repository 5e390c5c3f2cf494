package sync

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iudanet/jubeesync/internal/client/auth"
	"github.com/iudanet/jubeesync/internal/client/storage"
	"github.com/iudanet/jubeesync/internal/models"
)

const (
	// DefaultRemoteTimeout ограничивает один вызов UpsertRecord
	DefaultRemoteTimeout = 5 * time.Second
	// DefaultMaxParallel ограничивает число одновременных запросов к серверу
	DefaultMaxParallel = 16
)

// RemoteStatus describes what happened to the remote copy of a resolved record.
type RemoteStatus string

const (
	RemoteNotNeeded RemoteStatus = "not-needed" // server: сервер уже хранит это значение
	RemoteSynced    RemoteStatus = "synced"     // upsert выполнен
	RemoteQueued    RemoteStatus = "queued"     // сохранено локально, ждет отправки в outbox
	RemoteSkipped   RemoteStatus = "skipped"    // локальная запись не удалась, на сервер не отправляли
)

// RecordResult is the outcome for one resolved record.
type RecordResult struct {
	LocalErr  error // LocalErr оборачивает ErrLocalWriteFailed
	RemoteErr error // RemoteErr оборачивает ErrRemoteSyncFailed
	Key       models.RecordKey
	Choice    models.ResolutionChoice
	Remote    RemoteStatus
}

// Persisted reports whether the record was durably written locally.
func (r RecordResult) Persisted() bool {
	return r.LocalErr == nil
}

// PersistSummary is the partial-success report of one Persist call.
// Результаты идут в порядке входного списка.
type PersistSummary struct {
	Results       []RecordResult
	Persisted     int // сохранено локально
	Failed        int // локальная запись не удалась
	RemoteSynced  int // отправлено на сервер
	RemotePending int // ждет отправки (нет сети или пользователя)
}

// FailedKeys returns the records whose local write failed.
func (s *PersistSummary) FailedKeys() []models.RecordKey {
	var keys []models.RecordKey
	for _, r := range s.Results {
		if !r.Persisted() {
			keys = append(keys, r.Key)
		}
	}
	return keys
}

// Err joins every per-record error, local and remote.
func (s *PersistSummary) Err() error {
	var errs []error
	for _, r := range s.Results {
		if r.LocalErr != nil {
			errs = append(errs, r.LocalErr)
		}
		if r.RemoteErr != nil {
			errs = append(errs, r.RemoteErr)
		}
	}
	return errors.Join(errs...)
}

// merge складывает счетчики и результаты другого отчета
func (s *PersistSummary) merge(other *PersistSummary) {
	s.Results = append(s.Results, other.Results...)
	s.Persisted += other.Persisted
	s.Failed += other.Failed
	s.RemoteSynced += other.RemoteSynced
	s.RemotePending += other.RemotePending
}

// OrchestratorConfig tunes remote fan-out.
type OrchestratorConfig struct {
	RemoteTimeout time.Duration
	MaxParallel   int
}

// Orchestrator делает разрешенные конфликты долговечными: одна пакетная локальная
// запись на коллекцию и параллельные upsert на сервер для стратегий local и merge.
type Orchestrator struct {
	records  storage.RecordStorage
	outbox   storage.OutboxStorage
	remote   RemoteStore
	sessions SessionProvider
	logger   *slog.Logger
	now      func() time.Time
	cfg      OrchestratorConfig
}

// NewOrchestrator creates an orchestrator. Zero config values fall back to defaults.
func NewOrchestrator(
	records storage.RecordStorage,
	outbox storage.OutboxStorage,
	remote RemoteStore,
	sessions SessionProvider,
	cfg OrchestratorConfig,
	logger *slog.Logger,
) *Orchestrator {
	if cfg.RemoteTimeout <= 0 {
		cfg.RemoteTimeout = DefaultRemoteTimeout
	}
	if cfg.MaxParallel <= 0 {
		cfg.MaxParallel = DefaultMaxParallel
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Orchestrator{
		records:  records,
		outbox:   outbox,
		remote:   remote,
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// Persist writes resolved records locally and, where the choice requires it, remotely.
// It never fails as a whole: per-record problems are reported in the summary.
func (o *Orchestrator) Persist(ctx context.Context, resolved []models.ResolvedConflict) *PersistSummary {
	summary := &PersistSummary{Results: make([]RecordResult, len(resolved))}
	if len(resolved) == 0 {
		return summary
	}

	for i, rc := range resolved {
		summary.Results[i] = RecordResult{
			Key:    models.RecordKey{Collection: rc.Collection, ID: rc.ID},
			Choice: rc.Choice,
			Remote: RemoteNotNeeded,
		}
	}

	// 1. Локальные записи: по одной транзакции на коллекцию, коллекции параллельно
	o.writeLocal(ctx, resolved, summary)

	// 2. Удаленные записи только для успешно сохраненных локально
	var remoteIdx []int
	for i, rc := range resolved {
		res := &summary.Results[i]
		switch {
		case !res.Persisted():
			if rc.Choice.NeedsRemoteWrite() {
				res.Remote = RemoteSkipped
			}
		case rc.Choice.NeedsRemoteWrite():
			remoteIdx = append(remoteIdx, i)
		default:
			// серверная версия: устаревшая запись в outbox больше не нужна
			o.dropPending(ctx, res.Key)
		}
	}

	if len(remoteIdx) > 0 {
		o.writeRemote(ctx, resolved, remoteIdx, summary)
	}

	for _, res := range summary.Results {
		if res.Persisted() {
			summary.Persisted++
		} else {
			summary.Failed++
		}
		switch res.Remote {
		case RemoteSynced:
			summary.RemoteSynced++
		case RemoteQueued:
			summary.RemotePending++
		}
	}

	o.logger.Info("Persisted resolutions",
		"total", len(resolved),
		"persisted", summary.Persisted,
		"failed", summary.Failed,
		"remote_synced", summary.RemoteSynced,
		"remote_pending", summary.RemotePending)

	return summary
}

// writeLocal группирует записи по коллекциям и пишет каждую группу одним PutBulk.
// Если пакет отклонен, записи пишутся по одной, чтобы найти и изолировать плохую.
func (o *Orchestrator) writeLocal(ctx context.Context, resolved []models.ResolvedConflict, summary *PersistSummary) {
	groups := make(map[models.Collection][]int)
	for i, rc := range resolved {
		groups[rc.Collection] = append(groups[rc.Collection], i)
	}

	var g errgroup.Group
	for _, collection := range models.AllCollections() {
		idx, ok := groups[collection]
		if !ok {
			continue
		}
		delete(groups, collection)

		g.Go(func() error {
			o.writeCollection(ctx, collection, idx, resolved, summary)
			return nil
		})
	}

	// Коллекции вне закрытого набора не пишутся вовсе
	for collection, idx := range groups {
		for _, i := range idx {
			summary.Results[i].LocalErr = fmt.Errorf("%w: %s: %w",
				ErrLocalWriteFailed, summary.Results[i].Key, models.ErrUnknownCollection)
		}
		o.logger.Error("Resolved records with unknown collection", "collection", string(collection), "count", len(idx))
	}

	_ = g.Wait()
}

// writeCollection пишет индексы idx одной коллекции. Каждая горутина трогает только свои
// элементы summary.Results, поэтому синхронизация не нужна.
func (o *Orchestrator) writeCollection(ctx context.Context, collection models.Collection, idx []int, resolved []models.ResolvedConflict, summary *PersistSummary) {
	batch := make([]*models.Record, 0, len(idx))
	for _, i := range idx {
		batch = append(batch, resolved[i].Data)
	}

	err := o.records.PutBulk(ctx, collection, batch)
	if err == nil {
		o.logger.Debug("Bulk write completed", "collection", collection, "count", len(batch))
		return
	}

	o.logger.Warn("Bulk write failed, falling back to per-record writes",
		"collection", collection, "count", len(batch), "error", err)

	for _, i := range idx {
		res := &summary.Results[i]
		if err := o.records.Put(ctx, resolved[i].Data); err != nil {
			res.LocalErr = fmt.Errorf("%w: %s: %w", ErrLocalWriteFailed, res.Key, err)
			o.logger.Error("Local write failed", "key", res.Key.String(), "error", err)
		}
	}
}

// writeRemote отправляет записи на сервер параллельно, каждую со своим таймаутом.
// Без пользователя или при ошибке запись остается в outbox.
func (o *Orchestrator) writeRemote(ctx context.Context, resolved []models.ResolvedConflict, idx []int, summary *PersistSummary) {
	session, err := o.sessions.Session(ctx)
	if err != nil {
		if !errors.Is(err, auth.ErrNotAuthenticated) {
			o.logger.Warn("Failed to load session, deferring remote sync", "error", err)
		} else {
			o.logger.Info("No authenticated user, remote sync deferred", "count", len(idx))
		}
		for _, i := range idx {
			o.queue(ctx, resolved[i], &summary.Results[i], "")
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(o.cfg.MaxParallel)

	for _, i := range idx {
		g.Go(func() error {
			rc := resolved[i]
			res := &summary.Results[i]

			if err := o.upsert(ctx, session.AccessToken, rc.Data); err != nil {
				res.RemoteErr = fmt.Errorf("%w: %s: %w", ErrRemoteSyncFailed, res.Key, err)
				o.logger.Warn("Remote sync failed, record kept locally", "key", res.Key.String(), "error", err)
				o.queue(ctx, rc, res, err.Error())
				return nil
			}

			res.Remote = RemoteSynced
			o.dropPending(ctx, res.Key)
			return nil
		})
	}

	_ = g.Wait()
}

// upsert выполняет один удаленный вызов с ограничением по времени
func (o *Orchestrator) upsert(ctx context.Context, accessToken string, record *models.Record) error {
	ctx, cancel := context.WithTimeout(ctx, o.cfg.RemoteTimeout)
	defer cancel()

	_, err := o.remote.UpsertRecord(ctx, accessToken, record)
	return err
}

func (o *Orchestrator) queue(ctx context.Context, rc models.ResolvedConflict, res *RecordResult, lastErr string) {
	res.Remote = RemoteQueued

	item := &storage.PendingRemote{
		Record:    rc.Data,
		Choice:    rc.Choice,
		QueuedAt:  o.now().UnixMilli(),
		LastError: lastErr,
	}
	if err := o.outbox.AddPendingRemote(ctx, item); err != nil {
		// запись уже сохранена локально; без outbox ее подхватит только следующий скан
		o.logger.Error("Failed to queue record for remote sync", "key", res.Key.String(), "error", err)
	}
}

func (o *Orchestrator) dropPending(ctx context.Context, key models.RecordKey) {
	if err := o.outbox.RemovePendingRemote(ctx, key); err != nil {
		o.logger.Warn("Failed to drop outbox entry", "key", key.String(), "error", err)
	}
}

// RetryResult summarizes one RetryPending call.
type RetryResult struct {
	Errors []error
	Synced int
	Failed int
}

// RetryPending pushes records that were resolved locally but never reached the server.
// Local edits are skipped: the scanner pushes them with a revision check.
// An entry replaced while its retry was in flight is left to the newer entry.
func (o *Orchestrator) RetryPending(ctx context.Context) (*RetryResult, error) {
	session, err := o.sessions.Session(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot retry remote sync: %w", err)
	}

	queued, err := o.outbox.ListPendingRemote(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending records: %w", err)
	}

	items := make([]*storage.PendingRemote, 0, len(queued))
	for _, item := range queued {
		if !item.IsLocalEdit() {
			items = append(items, item)
		}
	}

	result := &RetryResult{}
	if len(items) == 0 {
		return result, nil
	}

	errs := make([]error, len(items))

	var g errgroup.Group
	g.SetLimit(o.cfg.MaxParallel)

	for i, item := range items {
		g.Go(func() error {
			key := item.Key()
			if err := o.upsert(ctx, session.AccessToken, item.Record); err != nil {
				errs[i] = fmt.Errorf("%w: %s: %w", ErrRemoteSyncFailed, key, err)

				item.Attempts++
				item.LastError = err.Error()
				updated, err := o.outbox.UpdatePendingRemote(ctx, item)
				switch {
				case err != nil:
					o.logger.Error("Failed to update outbox entry", "key", key.String(), "error", err)
				case !updated:
					o.logger.Debug("Outbox entry replaced during retry", "key", key.String())
				}
				return nil
			}

			removed, err := o.outbox.CompletePendingRemote(ctx, item)
			switch {
			case err != nil:
				o.logger.Warn("Failed to drop outbox entry", "key", key.String(), "error", err)
			case !removed:
				o.logger.Debug("Outbox entry replaced during retry", "key", key.String())
			}
			return nil
		})
	}

	_ = g.Wait()

	for _, err := range errs {
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, err)
		}
	}
	result.Synced = len(items) - result.Failed

	o.logger.Info("Retried pending remote sync", "synced", result.Synced, "failed", result.Failed)

	return result, nil
}
