package api

// Record представляет запись коллекции на проводе
type Record struct {
	Fields          map[string]any   `json:"fields"`
	FieldTimestamps map[string]int64 `json:"field_timestamps,omitempty"`
	ID              string           `json:"id" validate:"required"`
	Collection      string           `json:"collection" validate:"required"`
	UpdatedAt       int64            `json:"updated_at" validate:"gt=0"` // unix ms
	Revision        int64            `json:"revision,omitempty"`         // ревизия сервера, присваивается при записи
}

// UpsertRecordRequest тело PUT /api/v1/collections/{collection}/records/{id}
// С base_revision запись принимается, только если на сервере она не менялась
// после этой ревизии; иначе ответ 409 с текущей версией записи.
type UpsertRecordRequest struct {
	BaseRevision *int64 `json:"base_revision,omitempty" validate:"omitempty,gte=0"`
	Record       Record `json:"record"`
}

// RecordConflictResponse ответ 409: запись изменилась на сервере
type RecordConflictResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Record  Record `json:"record"`
}

// UpsertRecordResponse возвращает ревизию, присвоенную записи
type UpsertRecordResponse struct {
	ID       string `json:"id"`
	Revision int64  `json:"revision"`
}

// ListRecordsResponse ответ GET /api/v1/collections/{collection}/records?since=N
type ListRecordsResponse struct {
	Records  []Record `json:"records"`  // записи с ревизией больше since
	Revision int64    `json:"revision"` // текущая ревизия пользователя
}

// HealthResponse ответ GET /api/v1/health
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
