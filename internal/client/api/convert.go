package api

import (
	"github.com/iudanet/jubeesync/internal/models"
	"github.com/iudanet/jubeesync/pkg/api"
)

// ToDTO converts a record into its wire form.
func ToDTO(r *models.Record) api.Record {
	return api.Record{
		ID:              r.ID,
		Collection:      string(r.Collection),
		UpdatedAt:       r.UpdatedAt,
		Fields:          r.Fields,
		FieldTimestamps: r.FieldTimestamps,
	}
}

// FromDTO converts a wire record into a snapshot.
// Коллекция не проверяется: некорректный снимок отсеет детектор.
func FromDTO(dto api.Record) *models.Record {
	fields := dto.Fields
	if fields == nil {
		fields = make(map[string]any)
	}
	return &models.Record{
		ID:              dto.ID,
		Collection:      models.Collection(dto.Collection),
		UpdatedAt:       dto.UpdatedAt,
		Revision:        dto.Revision,
		Fields:          fields,
		FieldTimestamps: dto.FieldTimestamps,
	}
}
