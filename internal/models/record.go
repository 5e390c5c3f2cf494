package models

import (
	"fmt"
	"time"
)

// Record представляет снимок одной записи с одной стороны (локальной или удаленной).
// Снимок неизменяем после захвата: все преобразования работают с копией (Clone).
type Record struct {
	Fields          map[string]any   `json:"fields"`                     // Fields доменные поля записи
	FieldTimestamps map[string]int64 `json:"field_timestamps,omitempty"` // FieldTimestamps опциональные временные метки по полям (unix ms)
	ID              string           `json:"id"`                         // ID стабильный идентификатор записи
	Collection      Collection       `json:"collection"`                 // Collection логический тип записи
	UpdatedAt       int64            `json:"updated_at"`                 // UpdatedAt время последнего изменения записи (unix ms)
	Revision        int64            `json:"revision,omitempty"`         // Revision ревизия сервера, от которой происходит снимок; 0 - сервер запись не видел
}

// RecordKey addresses a record across collections.
type RecordKey struct {
	Collection Collection `json:"collection"`
	ID         string     `json:"id"`
}

func (k RecordKey) String() string {
	return fmt.Sprintf("%s/%s", k.Collection, k.ID)
}

// Key returns the collection-qualified key of the record.
func (r *Record) Key() RecordKey {
	return RecordKey{Collection: r.Collection, ID: r.ID}
}

// UpdatedTime returns UpdatedAt as time.Time.
func (r *Record) UpdatedTime() time.Time {
	return time.UnixMilli(r.UpdatedAt)
}

// FieldTimestamp returns the timestamp attributed to field.
// Per-field timestamps take precedence over the record-level one.
func (r *Record) FieldTimestamp(field string) int64 {
	if ts, ok := r.FieldTimestamps[field]; ok {
		return ts
	}
	return r.UpdatedAt
}

// Label returns a human readable name taken from the collection's label field.
func (r *Record) Label() string {
	spec, ok := Spec(r.Collection)
	if !ok {
		return ""
	}
	if v, ok := r.Fields[spec.LabelField]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Clone создает глубокую копию записи
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}

	fields := make(map[string]any, len(r.Fields))
	for k, v := range r.Fields {
		fields[k] = cloneValue(v)
	}

	var timestamps map[string]int64
	if r.FieldTimestamps != nil {
		timestamps = make(map[string]int64, len(r.FieldTimestamps))
		for k, v := range r.FieldTimestamps {
			timestamps[k] = v
		}
	}

	return &Record{
		ID:              r.ID,
		Collection:      r.Collection,
		UpdatedAt:       r.UpdatedAt,
		Revision:        r.Revision,
		Fields:          fields,
		FieldTimestamps: timestamps,
	}
}

// cloneValue копирует вложенные map/slice, скаляры возвращает как есть
func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			out[k] = cloneValue(inner)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = cloneValue(inner)
		}
		return out
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	case []byte:
		out := make([]byte, len(val))
		copy(out, val)
		return out
	default:
		return v
	}
}
