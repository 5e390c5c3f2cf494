package conflict

import (
	"github.com/iudanet/jubeesync/internal/models"
)

// newRecord создает тестовый снимок
func newRecord(id string, collection models.Collection, updatedAt int64, fields map[string]any) *models.Record {
	return &models.Record{
		ID:         id,
		Collection: collection,
		UpdatedAt:  updatedAt,
		Fields:     fields,
	}
}

// scorePair возвращает пару снимков прогресса: локально score=10 (t=5), на сервере score=20 (t=10)
func scorePair(id string) SnapshotPair {
	return SnapshotPair{
		Local: newRecord(id, models.CollectionGameProgress, 5, map[string]any{
			"game": "dance", "level": 2, "score": 10,
		}),
		Remote: newRecord(id, models.CollectionGameProgress, 10, map[string]any{
			"game": "dance", "level": 2, "score": 20,
		}),
	}
}
