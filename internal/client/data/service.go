package data

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/jubeesync/internal/client/storage"
	"github.com/iudanet/jubeesync/internal/conflict"
	"github.com/iudanet/jubeesync/internal/models"
	"github.com/iudanet/jubeesync/internal/validation"
)

//go:generate moq -out service_mock.go . Service

// Service изменяет локальные записи так же, как это делает приложение на устройстве:
// каждое измененное поле получает свою временную метку
type Service interface {
	// Put applies a field patch to the record and stores it locally.
	// A nil value removes the field. Empty id creates a record with a generated id.
	Put(ctx context.Context, collection models.Collection, id string, patch map[string]any) (*models.Record, error)

	// Get returns a local record.
	Get(ctx context.Context, collection models.Collection, id string) (*models.Record, error)

	// List returns all local records of a collection.
	List(ctx context.Context, collection models.Collection) ([]*models.Record, error)
}

// ErrEmptyPatch is returned by Put when a new record gets no fields.
var ErrEmptyPatch = errors.New("no fields to write")

type service struct {
	records storage.RecordStorage
	edits   storage.LocalEditStorage
	now     func() time.Time
	logger  *slog.Logger
}

// NewService creates a local record editor.
// Saved edits are queued in edits and pushed to the server by the next sync pass.
func NewService(records storage.RecordStorage, edits storage.LocalEditStorage, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &service{
		records: records,
		edits:   edits,
		now:     time.Now,
		logger:  logger,
	}
}

func (s *service) Put(ctx context.Context, collection models.Collection, id string, patch map[string]any) (*models.Record, error) {
	if !collection.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownCollection, string(collection))
	}

	current, err := s.load(ctx, collection, id)
	if err != nil {
		return nil, err
	}

	var rec *models.Record
	if current == nil {
		if id == "" {
			id = uuid.New().String()
		}
		rec = &models.Record{
			ID:              id,
			Collection:      collection,
			Fields:          make(map[string]any, len(patch)),
			FieldTimestamps: make(map[string]int64, len(patch)),
		}
	} else {
		rec = current.Clone()
		if rec.FieldTimestamps == nil {
			rec.FieldTimestamps = make(map[string]int64, len(patch))
		}
	}

	// Метка записи строго растет: иначе правка в ту же миллисекунду
	// неотличима от прежней версии
	now := s.now().UnixMilli()
	if current != nil && now <= current.UpdatedAt {
		now = current.UpdatedAt + 1
	}

	changed := 0
	for field, value := range patch {
		old, exists := rec.Fields[field]
		switch {
		case value == nil && !exists:
			continue
		case value == nil:
			delete(rec.Fields, field)
		case exists && conflict.ValuesEqual(old, value):
			continue
		default:
			rec.Fields[field] = value
		}
		rec.FieldTimestamps[field] = now
		changed++
	}

	if changed == 0 {
		if current == nil {
			return nil, ErrEmptyPatch
		}
		s.logger.Debug("Local record unchanged", "key", rec.Key())
		return current, nil
	}
	rec.UpdatedAt = now

	if err := validation.ValidateFields(rec); err != nil {
		return nil, err
	}
	// Revision остается от исходной записи: это база для проверки при отправке
	if err := s.edits.SaveLocalEdit(ctx, rec, s.now().UnixMilli()); err != nil {
		return nil, fmt.Errorf("failed to save record %s: %w", rec.Key(), err)
	}

	s.logger.Info("Local record saved", "key", rec.Key(), "changed_fields", changed, "base_revision", rec.Revision)
	return rec, nil
}

// load возвращает nil без ошибки, если записи еще нет
func (s *service) load(ctx context.Context, collection models.Collection, id string) (*models.Record, error) {
	if id == "" {
		return nil, nil
	}
	rec, err := s.records.Get(ctx, collection, id)
	if errors.Is(err, storage.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load record %s/%s: %w", collection, id, err)
	}
	return rec, nil
}

func (s *service) Get(ctx context.Context, collection models.Collection, id string) (*models.Record, error) {
	if !collection.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownCollection, string(collection))
	}
	rec, err := s.records.Get(ctx, collection, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get record %s/%s: %w", collection, id, err)
	}
	return rec, nil
}

func (s *service) List(ctx context.Context, collection models.Collection) ([]*models.Record, error) {
	if !collection.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownCollection, string(collection))
	}
	records, err := s.records.List(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", collection, err)
	}
	return records, nil
}

// ParsePatch converts "field=value" pairs into a patch.
// Значение разбирается как JSON; все, что не является JSON, сохраняется строкой.
// "field=" без значения удаляет поле.
func ParsePatch(pairs []string) (map[string]any, error) {
	patch := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		field, raw, ok := cutPair(pair)
		if !ok {
			return nil, fmt.Errorf("invalid field %q: expected field=value", pair)
		}
		if _, dup := patch[field]; dup {
			return nil, fmt.Errorf("field %q given twice", field)
		}
		patch[field] = parseValue(raw)
	}
	return patch, nil
}
