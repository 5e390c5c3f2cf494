package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iudanet/jubeesync/internal/models"
	"github.com/iudanet/jubeesync/internal/server/storage"
)

// recordData - содержимое колонки data
type recordData struct {
	Fields          map[string]any   `json:"fields"`
	FieldTimestamps map[string]int64 `json:"field_timestamps,omitempty"`
}

// UpsertRecord creates or replaces the record and assigns the next revision of the user.
func (s *Storage) UpsertRecord(ctx context.Context, userID string, record *models.Record) (int64, error) {
	revision, _, err := s.upsert(ctx, userID, record, nil)
	return revision, err
}

// UpsertRecordIfUnchanged writes the record unless it changed after baseRevision.
func (s *Storage) UpsertRecordIfUnchanged(ctx context.Context, userID string, record *models.Record, baseRevision int64) (int64, *models.Record, error) {
	return s.upsert(ctx, userID, record, &baseRevision)
}

// upsert проверяет ревизию (если задана base), выделяет новую и пишет запись в одной транзакции
func (s *Storage) upsert(ctx context.Context, userID string, record *models.Record, base *int64) (int64, *models.Record, error) {
	if record == nil || record.ID == "" || !record.Collection.Valid() {
		return 0, nil, fmt.Errorf("%w: record must have an id and a known collection", storage.ErrInvalidRecord)
	}

	data, err := json.Marshal(recordData{Fields: record.Fields, FieldTimestamps: record.FieldTimestamps})
	if err != nil {
		return 0, nil, fmt.Errorf("failed to marshal record data: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if base != nil {
		current, err := loadRecord(ctx, tx, userID, record.Collection, record.ID)
		if err != nil {
			return 0, nil, err
		}
		if current != nil && current.Revision > *base {
			return 0, current, fmt.Errorf("%w: %s has revision %d, base %d",
				storage.ErrRevisionConflict, record.Key(), current.Revision, *base)
		}
	}

	var revision int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO user_revisions (user_id, revision) VALUES (?, 1)
		ON CONFLICT (user_id) DO UPDATE SET revision = revision + 1
		RETURNING revision
	`, userID).Scan(&revision)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to allocate revision: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO records (user_id, collection, id, data, updated_at, revision)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, collection, id) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at,
			revision = excluded.revision
	`, userID, string(record.Collection), record.ID, string(data), record.UpdatedAt, revision)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to upsert record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, nil, fmt.Errorf("failed to commit record: %w", err)
	}

	return revision, nil, nil
}

// loadRecord читает запись вместе с ревизией; отсутствие записи - не ошибка
func loadRecord(ctx context.Context, tx *sql.Tx, userID string, collection models.Collection, id string) (*models.Record, error) {
	var (
		raw string
		rec = &models.Record{ID: id, Collection: collection}
	)
	err := tx.QueryRowContext(ctx, `
		SELECT data, updated_at, revision
		FROM records
		WHERE user_id = ? AND collection = ? AND id = ?
	`, userID, string(collection), id).Scan(&raw, &rec.UpdatedAt, &rec.Revision)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load record: %w", err)
	}

	if err := decodeRecordData(raw, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func decodeRecordData(raw string, rec *models.Record) error {
	var data recordData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return fmt.Errorf("failed to unmarshal record %s: %w", rec.ID, err)
	}

	rec.Fields = data.Fields
	rec.FieldTimestamps = data.FieldTimestamps
	if rec.Fields == nil {
		rec.Fields = map[string]any{}
	}
	return nil
}

// ListRecordsSince returns records of one collection changed after since.
// Ревизия читается до записей: запись, пришедшая между запросами, вернется повторно, но не потеряется.
func (s *Storage) ListRecordsSince(ctx context.Context, userID string, collection models.Collection, since int64) ([]*models.Record, int64, error) {
	var current int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE((SELECT revision FROM user_revisions WHERE user_id = ?), 0)`, userID,
	).Scan(&current)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get current revision: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, data, updated_at, revision
		FROM records
		WHERE user_id = ? AND collection = ? AND revision > ?
		ORDER BY revision
	`, userID, string(collection), since)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	records := make([]*models.Record, 0)
	for rows.Next() {
		var (
			raw string
			rec = &models.Record{Collection: collection}
		)
		if err := rows.Scan(&rec.ID, &raw, &rec.UpdatedAt, &rec.Revision); err != nil {
			return nil, 0, fmt.Errorf("failed to scan record: %w", err)
		}
		if err := decodeRecordData(raw, rec); err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate records: %w", err)
	}

	return records, current, nil
}
