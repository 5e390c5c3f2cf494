package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/jubeesync/internal/client/storage"
	"github.com/iudanet/jubeesync/internal/models"
)

func TestRunPut(t *testing.T) {
	tc := newTestCli(t, "")
	tc.records.PutFunc = func(ctx context.Context, collection models.Collection, id string, patch map[string]any) (*models.Record, error) {
		return &models.Record{ID: "d-1", Collection: collection, UpdatedAt: 1000, Fields: patch}, nil
	}

	err := tc.cli.runPut(t.Context(), "drawing", "d-1", []string{"title=Sunny day", "favorite=true"})

	require.NoError(t, err)
	require.Len(t, tc.records.PutCalls(), 1)
	call := tc.records.PutCalls()[0]
	assert.Equal(t, models.CollectionDrawing, call.Collection)
	assert.Equal(t, "d-1", call.ID)
	assert.Equal(t, map[string]any{"title": "Sunny day", "favorite": true}, call.Patch)
	assert.Contains(t, tc.out.String(), "Saved drawing/d-1")
}

func TestRunPut_NewID(t *testing.T) {
	tc := newTestCli(t, "")
	tc.records.PutFunc = func(ctx context.Context, collection models.Collection, id string, patch map[string]any) (*models.Record, error) {
		return &models.Record{ID: "generated", Collection: collection, UpdatedAt: 1000}, nil
	}

	require.NoError(t, tc.cli.runPut(t.Context(), "sticker-unlock", "-", []string{"sticker=bee"}))
	assert.Empty(t, tc.records.PutCalls()[0].ID)
}

func TestRunPut_InvalidInputSkipsWrite(t *testing.T) {
	tests := []struct {
		name       string
		collection string
		pairs      []string
	}{
		{name: "unknown collection", collection: "homework", pairs: []string{"a=1"}},
		{name: "malformed pair", collection: "drawing", pairs: []string{"title"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestCli(t, "")

			err := tc.cli.runPut(t.Context(), tt.collection, "d-1", tt.pairs)

			require.Error(t, err)
			assert.Empty(t, tc.records.PutCalls())
		})
	}
}

func TestRunShow(t *testing.T) {
	tc := newTestCli(t, "")
	tc.records.GetFunc = func(ctx context.Context, collection models.Collection, id string) (*models.Record, error) {
		if id != "d-1" {
			return nil, storage.ErrRecordNotFound
		}
		return &models.Record{ID: id, Collection: collection, UpdatedAt: 10, Fields: map[string]any{"title": "Sunny day"}}, nil
	}

	require.NoError(t, tc.cli.runShow(t.Context(), "drawing", "d-1"))
	assert.Contains(t, tc.out.String(), `"title": "Sunny day"`)

	err := tc.cli.runShow(t.Context(), "drawing", "d-2")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestRunList(t *testing.T) {
	tc := newTestCli(t, "")
	tc.records.ListFunc = func(ctx context.Context, collection models.Collection) ([]*models.Record, error) {
		return []*models.Record{
			{ID: "c-1", Collection: collection, UpdatedAt: 10, Fields: map[string]any{"name": "Mia"}},
			{ID: "c-2", Collection: collection, UpdatedAt: 20, Fields: map[string]any{"name": "Leo"}},
		}, nil
	}

	require.NoError(t, tc.cli.runList(t.Context(), "child-profile"))

	out := tc.out.String()
	assert.Contains(t, out, "c-1")
	assert.Contains(t, out, "Mia")
	assert.Contains(t, out, "Leo")
}

func TestRunList_Empty(t *testing.T) {
	tc := newTestCli(t, "")
	tc.records.ListFunc = func(ctx context.Context, collection models.Collection) ([]*models.Record, error) {
		return nil, nil
	}

	require.NoError(t, tc.cli.runList(t.Context(), "achievement"))
	assert.Contains(t, tc.out.String(), "No records.")
}

func TestRunList_StorageError(t *testing.T) {
	tc := newTestCli(t, "")
	tc.records.ListFunc = func(ctx context.Context, collection models.Collection) ([]*models.Record, error) {
		return nil, errors.New("bucket missing")
	}

	assert.Error(t, tc.cli.runList(t.Context(), "achievement"))
}
