package sync

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/iudanet/jubeesync/internal/client/storage"
	"github.com/iudanet/jubeesync/internal/conflict"
	"github.com/iudanet/jubeesync/internal/models"
)

// CollectionScan contains the results of scanning one collection.
type CollectionScan struct {
	Err        error
	Collection models.Collection
	Pulled     int   // записей получено с сервера
	Created    int   // записей есть только на сервере, сохранены локально
	Detected   int   // новых конфликтов
	Unchanged  int   // пары без расхождений
	Malformed  int   // отклоненные снимки
	Pushed     int   // локальных правок принято сервером
	Held       int   // локальных правок ждут разрешения конфликта
	Revision   int64 // ревизия сервера после скана
}

// ScanResult contains sync pass results
type ScanResult struct {
	Collections []CollectionScan
	Pending     int // конфликтов в очереди после скана
}

// Detected returns the number of conflicts found across collections.
func (r *ScanResult) Detected() int {
	total := 0
	for _, c := range r.Collections {
		total += c.Detected
	}
	return total
}

// Pushed returns the number of local edits the server accepted.
func (r *ScanResult) Pushed() int {
	total := 0
	for _, c := range r.Collections {
		total += c.Pushed
	}
	return total
}

// Held returns the number of local edits waiting for a conflict decision.
func (r *ScanResult) Held() int {
	total := 0
	for _, c := range r.Collections {
		total += c.Held
	}
	return total
}

// Err joins per-collection errors.
func (r *ScanResult) Err() error {
	var errs []error
	for _, c := range r.Collections {
		if c.Err != nil {
			errs = append(errs, c.Err)
		}
	}
	return errors.Join(errs...)
}

// Scanner выполняет проход синхронизации: получает изменения с сервера,
// сопоставляет их с локальными записями и передает пары снимков в движок конфликтов,
// затем отправляет на сервер локальные правки из outbox.
type Scanner struct {
	records  storage.RecordStorage
	metadata storage.MetadataStorage
	outbox   storage.OutboxStorage
	remote   RemoteStore
	sessions SessionProvider
	engine   *conflict.Engine
	logger   *slog.Logger
}

// NewScanner creates a new sync pass scanner
func NewScanner(
	records storage.RecordStorage,
	metadata storage.MetadataStorage,
	outbox storage.OutboxStorage,
	remote RemoteStore,
	sessions SessionProvider,
	engine *conflict.Engine,
	logger *slog.Logger,
) *Scanner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Scanner{
		records:  records,
		metadata: metadata,
		outbox:   outbox,
		remote:   remote,
		sessions: sessions,
		engine:   engine,
		logger:   logger,
	}
}

// Scan runs one sync pass over every collection: pull remote changes, then push local edits.
// Ошибка одной коллекции не прерывает скан остальных.
func (s *Scanner) Scan(ctx context.Context) (*ScanResult, error) {
	session, err := s.sessions.Session(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot scan remote changes: %w", err)
	}

	s.logger.Info("Starting sync pass", "user_id", session.UserID)

	edits, editsErr := s.localEdits(ctx)
	if editsErr != nil {
		s.logger.Error("Failed to list local edits", "error", editsErr)
	}

	result := &ScanResult{}
	for _, collection := range models.AllCollections() {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		scan := s.scanCollection(ctx, session.AccessToken, collection)
		switch {
		case editsErr != nil:
			scan.Err = errors.Join(scan.Err, fmt.Errorf("%s: list local edits: %w", collection, editsErr))
		case scan.Err == nil:
			// без полного pull правки не отправляем: непрочитанная удаленная версия была бы затерта
			s.pushLocalEdits(ctx, session.AccessToken, &scan, edits[collection])
		}
		result.Collections = append(result.Collections, scan)
	}
	result.Pending = s.engine.Len()

	s.logger.Info("Sync pass completed",
		"detected", result.Detected(),
		"pushed", result.Pushed(),
		"pending", result.Pending)

	return result, nil
}

func (s *Scanner) scanCollection(ctx context.Context, accessToken string, collection models.Collection) CollectionScan {
	scan := CollectionScan{Collection: collection}

	// Получаем ревизию последней синхронизации коллекции
	since, err := s.metadata.GetLastSyncRevision(ctx, collection)
	if err != nil {
		s.logger.Warn("Failed to get last sync revision, using 0", "collection", collection, "error", err)
		since = 0
	}

	remoteRecords, revision, err := s.remote.ListRecords(ctx, accessToken, collection, since)
	if err != nil {
		scan.Err = fmt.Errorf("%s: %w", collection, err)
		s.logger.Error("Failed to list remote records", "collection", collection, "error", err)
		return scan
	}
	scan.Pulled = len(remoteRecords)
	scan.Revision = revision

	var (
		created []*models.Record
		rebased []*models.Record
		pairs   []conflict.SnapshotPair
	)
	for _, remote := range remoteRecords {
		local, err := s.records.Get(ctx, collection, remote.ID)
		switch {
		case errors.Is(err, storage.ErrRecordNotFound):
			// записи нет на устройстве: конфликта нет, просто сохраняем
			created = append(created, remote)
		case err != nil:
			scan.Err = errors.Join(scan.Err, fmt.Errorf("%s: read %s: %w", collection, remote.ID, err))
		case remote.Revision != 0 && local.Revision >= remote.Revision:
			// собственная отправленная правка вернулась с сервера
			scan.Unchanged++
		case sameFields(local, remote):
			scan.Unchanged++
			if local.Revision < remote.Revision {
				rec := local.Clone()
				rec.Revision = remote.Revision
				rebased = append(rebased, rec)
			}
		default:
			pairs = append(pairs, conflict.SnapshotPair{Local: local, Remote: remote})
		}
	}

	if len(created) > 0 {
		if err := s.records.PutBulk(ctx, collection, created); err != nil {
			scan.Err = errors.Join(scan.Err, fmt.Errorf("%s: store remote-only records: %w", collection, err))
		} else {
			scan.Created = len(created)
		}
	}

	// совпадающие записи запоминают новую ревизию: от нее считается следующая отправка
	if len(rebased) > 0 {
		if err := s.records.PutBulk(ctx, collection, rebased); err != nil {
			scan.Err = errors.Join(scan.Err, fmt.Errorf("%s: store revisions: %w", collection, err))
		}
	}

	if len(pairs) > 0 {
		ingest := s.engine.Ingest(pairs)
		scan.Detected = ingest.Detected
		scan.Unchanged += ingest.Unchanged
		scan.Malformed = ingest.Malformed

		// запись, чей id занят конфликтом другой коллекции, вернется на следующем скане
		for _, err := range ingest.Errors {
			if errors.Is(err, conflict.ErrIDCollision) {
				scan.Err = errors.Join(scan.Err, fmt.Errorf("%s: %w", collection, err))
			}
		}
	}

	// Ревизию сохраняем только если все изменения учтены, иначе следующий скан повторит их
	if scan.Err == nil {
		if err := s.metadata.SaveLastSyncRevision(ctx, collection, revision); err != nil {
			s.logger.Warn("Failed to save last sync revision", "collection", collection, "error", err)
		}
	}

	s.logger.Debug("Collection scanned",
		"collection", collection,
		"pulled", scan.Pulled,
		"created", scan.Created,
		"detected", scan.Detected,
		"unchanged", scan.Unchanged,
		"malformed", scan.Malformed)

	return scan
}

// localEdits группирует локальные правки из outbox по коллекциям
func (s *Scanner) localEdits(ctx context.Context) (map[models.Collection][]*storage.PendingRemote, error) {
	items, err := s.outbox.ListPendingRemote(ctx)
	if err != nil {
		return nil, err
	}

	edits := make(map[models.Collection][]*storage.PendingRemote)
	for _, item := range items {
		if item.Record == nil || !item.IsLocalEdit() {
			continue
		}
		edits[item.Record.Collection] = append(edits[item.Record.Collection], item)
	}
	return edits, nil
}

// pushLocalEdits отправляет правки коллекции с проверкой ревизии.
// Правка записи, по которой ждет конфликт, остается в очереди до его разрешения.
func (s *Scanner) pushLocalEdits(ctx context.Context, accessToken string, scan *CollectionScan, edits []*storage.PendingRemote) {
	for _, item := range edits {
		if err := ctx.Err(); err != nil {
			scan.Err = errors.Join(scan.Err, err)
			return
		}

		key := item.Key()
		if group, ok := s.engine.Get(key.ID); ok && group.Collection == key.Collection {
			scan.Held++
			s.logger.Debug("Local edit waits for conflict resolution", "key", key.String())
			continue
		}

		if err := s.pushLocalEdit(ctx, accessToken, scan, item); err != nil {
			scan.Err = errors.Join(scan.Err, fmt.Errorf("%s: push %s: %w", scan.Collection, key.ID, err))
			s.logger.Error("Failed to push local edit", "key", key.String(), "error", err)
			s.retryLater(ctx, item, err)
		}
	}
}

func (s *Scanner) pushLocalEdit(ctx context.Context, accessToken string, scan *CollectionScan, item *storage.PendingRemote) error {
	key := item.Key()

	// отправляется текущая версия записи, Revision в ней - база проверки
	local, err := s.records.Get(ctx, key.Collection, key.ID)
	if errors.Is(err, storage.ErrRecordNotFound) {
		s.logger.Warn("Local edit has no record, dropping", "key", key.String())
		s.complete(ctx, item)
		return nil
	}
	if err != nil {
		return fmt.Errorf("read local record: %w", err)
	}

	revision, err := s.remote.PushRecord(ctx, accessToken, local, local.Revision)
	var changed *RemoteChangedError
	if errors.As(err, &changed) {
		return s.ingestRejected(ctx, scan, item, local, changed.Remote)
	}
	if err != nil {
		return err
	}

	scan.Pushed++
	s.rebase(ctx, key, revision)
	s.complete(ctx, item)

	s.logger.Info("Local edit pushed", "key", key.String(), "base_revision", local.Revision, "revision", revision)
	return nil
}

// ingestRejected передает в движок пару из отклоненной правки и текущей серверной копии
func (s *Scanner) ingestRejected(ctx context.Context, scan *CollectionScan, item *storage.PendingRemote, local, remote *models.Record) error {
	ingest := s.engine.Ingest([]conflict.SnapshotPair{{Local: local, Remote: remote}})
	scan.Detected += ingest.Detected
	scan.Unchanged += ingest.Unchanged
	scan.Malformed += ingest.Malformed
	if len(ingest.Errors) > 0 {
		return errors.Join(ingest.Errors...)
	}

	if ingest.Unchanged > 0 {
		// на сервере уже то же самое
		s.rebase(ctx, item.Key(), remote.Revision)
	}
	s.complete(ctx, item)

	s.logger.Info("Local edit rejected, server copy changed",
		"key", item.Key().String(),
		"base_revision", local.Revision,
		"revision", remote.Revision,
		"conflict", ingest.Detected > 0)
	return nil
}

// rebase запоминает ревизию сервера, от которой теперь происходит локальная запись
func (s *Scanner) rebase(ctx context.Context, key models.RecordKey, revision int64) {
	rec, err := s.records.Get(ctx, key.Collection, key.ID)
	if err != nil {
		s.logger.Warn("Failed to read record for revision update", "key", key.String(), "error", err)
		return
	}
	if rec.Revision >= revision {
		return
	}

	rec.Revision = revision
	if err := s.records.Put(ctx, rec); err != nil {
		s.logger.Warn("Failed to store record revision", "key", key.String(), "error", err)
	}
}

// complete снимает правку с очереди, если ее не заменила более новая
func (s *Scanner) complete(ctx context.Context, item *storage.PendingRemote) {
	removed, err := s.outbox.CompletePendingRemote(ctx, item)
	if err != nil {
		s.logger.Warn("Failed to remove pushed edit from outbox", "key", item.Key().String(), "error", err)
		return
	}
	if !removed {
		s.logger.Debug("Newer local edit queued meanwhile", "key", item.Key().String())
	}
}

// retryLater записывает неудачную попытку, если элемент очереди не заменен
func (s *Scanner) retryLater(ctx context.Context, item *storage.PendingRemote, cause error) {
	item.Attempts++
	item.LastError = cause.Error()

	updated, err := s.outbox.UpdatePendingRemote(ctx, item)
	if err != nil {
		s.logger.Warn("Failed to update outbox entry", "key", item.Key().String(), "error", err)
		return
	}
	if !updated {
		s.logger.Debug("Outbox entry replaced meanwhile", "key", item.Key().String())
	}
}

// sameFields сообщает, что снимки совпадают по полям (детектор не нашел бы конфликта)
func sameFields(local, remote *models.Record) bool {
	group, err := conflict.Detect(local, remote)
	return err == nil && group == nil
}
