package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/iudanet/jubeesync/internal/models"
	"github.com/iudanet/jubeesync/internal/server/storage"
	"github.com/iudanet/jubeesync/internal/validation"
	"github.com/iudanet/jubeesync/pkg/api"
)

// maxRecordBody ограничивает размер тела PUT
const maxRecordBody = 1 << 20

// RecordsHandler обслуживает каноническое хранилище записей
type RecordsHandler struct {
	logger   *slog.Logger
	storage  storage.RecordStorage
	validate *validator.Validate
}

// NewRecordsHandler creates a new records handler
func NewRecordsHandler(logger *slog.Logger, recordStorage storage.RecordStorage) *RecordsHandler {
	return &RecordsHandler{
		logger:   logger,
		storage:  recordStorage,
		validate: validator.New(),
	}
}

// Upsert обрабатывает PUT /api/v1/collections/{collection}/records/{id}
// Повтор того же запроса перезаписывает запись и присваивает новую ревизию.
func (h *RecordsHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.ErrorContext(ctx, "user id not found in context")
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	collection, ok := h.collection(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	var req api.UpsertRecordRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRecordBody)).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode upsert request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Record.ID != id || req.Record.Collection != string(collection) {
		sendError(h.logger, w, "record id and collection must match the path", http.StatusBadRequest)
		return
	}

	record := recordFromDTO(req.Record)
	if err := validation.ValidateSnapshot(record); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	var (
		revision int64
		current  *models.Record
		err      error
	)
	if req.BaseRevision != nil {
		revision, current, err = h.storage.UpsertRecordIfUnchanged(ctx, userID, record, *req.BaseRevision)
	} else {
		revision, err = h.storage.UpsertRecord(ctx, userID, record)
	}
	if err != nil {
		if errors.Is(err, storage.ErrInvalidRecord) {
			sendError(h.logger, w, err.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, storage.ErrRevisionConflict) && current != nil {
			h.logger.InfoContext(ctx, "record upsert rejected, changed on server",
				slog.String("user_id", userID),
				slog.String("key", record.Key().String()),
				slog.Int64("base_revision", *req.BaseRevision))
			sendJSON(h.logger, w, api.RecordConflictResponse{
				Error:   http.StatusText(http.StatusConflict),
				Message: "record changed on server",
				Record:  recordToDTO(current),
			}, http.StatusConflict)
			return
		}
		h.logger.ErrorContext(ctx, "failed to upsert record",
			slog.String("user_id", userID),
			slog.String("key", record.Key().String()),
			slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.DebugContext(ctx, "record upserted",
		slog.String("user_id", userID),
		slog.String("key", record.Key().String()),
		slog.Int64("revision", revision))

	sendJSON(h.logger, w, api.UpsertRecordResponse{ID: record.ID, Revision: revision}, http.StatusOK)
}

// List обрабатывает GET /api/v1/collections/{collection}/records?since=N
func (h *RecordsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.ErrorContext(ctx, "user id not found in context")
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	collection, ok := h.collection(w, r)
	if !ok {
		return
	}

	var since int64
	if raw := r.URL.Query().Get("since"); raw != "" {
		var err error
		since, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || since < 0 {
			h.logger.WarnContext(ctx, "invalid since parameter", slog.String("since", raw))
			sendError(h.logger, w, "invalid since parameter", http.StatusBadRequest)
			return
		}
	}

	records, revision, err := h.storage.ListRecordsSince(ctx, userID, collection, since)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list records",
			slog.String("user_id", userID),
			slog.String("collection", string(collection)),
			slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.ListRecordsResponse{
		Records:  make([]api.Record, 0, len(records)),
		Revision: revision,
	}
	for _, rec := range records {
		resp.Records = append(resp.Records, recordToDTO(rec))
	}

	h.logger.DebugContext(ctx, "records listed",
		slog.String("user_id", userID),
		slog.String("collection", string(collection)),
		slog.Int64("since", since),
		slog.Int("count", len(records)))

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// collection разбирает {collection} из пути; коллекция вне набора - 404
func (h *RecordsHandler) collection(w http.ResponseWriter, r *http.Request) (models.Collection, bool) {
	collection, err := models.ParseCollection(chi.URLParam(r, "collection"))
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusNotFound)
		return "", false
	}
	return collection, true
}

func recordFromDTO(dto api.Record) *models.Record {
	fields := dto.Fields
	if fields == nil {
		fields = map[string]any{}
	}
	return &models.Record{
		ID:              dto.ID,
		Collection:      models.Collection(dto.Collection),
		UpdatedAt:       dto.UpdatedAt,
		Fields:          fields,
		FieldTimestamps: dto.FieldTimestamps,
	}
}

func recordToDTO(r *models.Record) api.Record {
	return api.Record{
		ID:              r.ID,
		Collection:      string(r.Collection),
		UpdatedAt:       r.UpdatedAt,
		Revision:        r.Revision,
		Fields:          r.Fields,
		FieldTimestamps: r.FieldTimestamps,
	}
}
