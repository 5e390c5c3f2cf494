package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/iudanet/jubeesync/internal/client/auth"
	"github.com/iudanet/jubeesync/internal/client/data"
	"github.com/iudanet/jubeesync/internal/client/iocli"
	"github.com/iudanet/jubeesync/internal/client/storage"
	"github.com/iudanet/jubeesync/internal/client/sync"
	"github.com/iudanet/jubeesync/internal/models"
)

// testCli собирает Cli с потоками в памяти; незаданные зависимости остаются пустыми моками,
// и неожиданный вызов завершится паникой
type testCli struct {
	auth    *auth.ServiceMock
	sync    *sync.ServiceMock
	records *data.ServiceMock
	pass    *SyncPassMock
	retrier *OutboxRetrierMock
	outbox  *storage.OutboxStorageMock
	out     *bytes.Buffer
	cli     *Cli
}

func newTestCli(t *testing.T, input string) *testCli {
	t.Helper()

	tc := &testCli{
		auth:    &auth.ServiceMock{},
		sync:    &sync.ServiceMock{},
		records: &data.ServiceMock{},
		pass:    &SyncPassMock{},
		retrier: &OutboxRetrierMock{},
		outbox:  &storage.OutboxStorageMock{},
		out:     &bytes.Buffer{},
	}
	tc.cli = New(iocli.NewStreams(strings.NewReader(input), tc.out),
		tc.auth, tc.sync, tc.records, tc.pass, tc.retrier, tc.outbox, nil)

	return tc
}

// drawingConflict конфликт рисунка: заголовок изменен на обеих сторонах
func drawingConflict(id string) models.ConflictGroup {
	return models.ConflictGroup{
		ID:          id,
		Collection:  models.CollectionDrawing,
		RecordLabel: "Sunny day",
		DetectedAt:  time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Local: &models.Record{
			ID: id, Collection: models.CollectionDrawing, UpdatedAt: 20,
			Fields: map[string]any{"title": "Sunny day", "colors": 5},
		},
		Remote: &models.Record{
			ID: id, Collection: models.CollectionDrawing, UpdatedAt: 10,
			Fields: map[string]any{"title": "Rainy day", "colors": 5},
		},
		Conflicts: []models.ConflictField{{
			Field:           "title",
			LocalValue:      "Sunny day",
			ServerValue:     "Rainy day",
			LocalTimestamp:  20,
			ServerTimestamp: 10,
		}},
	}
}
