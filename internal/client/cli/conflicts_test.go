package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/jubeesync/internal/models"
)

func TestCli_runConflicts_Empty(t *testing.T) {
	tc := newTestCli(t, "")
	tc.sync.GetConflictsFunc = func() []models.ConflictGroup { return nil }
	tc.sync.GetDiagnosisFunc = func() map[string]models.ResolutionChoice { return nil }

	require.NoError(t, tc.cli.runConflicts(false))
	assert.Contains(t, tc.out.String(), "No pending conflicts")
}

func TestCli_runConflicts_Table(t *testing.T) {
	unsetGroup := drawingConflict("d-2")
	unsetGroup.RecordLabel = ""
	unsetGroup.Conflicts = []models.ConflictField{{
		Field:       "stars",
		LocalUnset:  true,
		ServerValue: 3,
	}}

	tc := newTestCli(t, "")
	tc.sync.GetConflictsFunc = func() []models.ConflictGroup {
		return []models.ConflictGroup{drawingConflict("d-1"), unsetGroup}
	}
	tc.sync.GetDiagnosisFunc = func() map[string]models.ResolutionChoice {
		return map[string]models.ResolutionChoice{"d-1": models.ChoiceLocal, "d-2": models.ChoiceMerge}
	}

	require.NoError(t, tc.cli.runConflicts(false))

	out := tc.out.String()
	assert.Contains(t, out, "2 pending conflict(s)")
	assert.Contains(t, out, "[drawing] Sunny day  (id d-1, detected 2026-03-01 10:00:00)")
	assert.Regexp(t, `title\s+local: "Sunny day"\s+server: "Rainy day"`, out)
	assert.Contains(t, out, "recommended: local")

	// без метки показывается id
	assert.Contains(t, out, "[drawing] d-2  (id d-2")
	assert.Regexp(t, `stars\s+local: <unset>\s+server: 3`, out)
	assert.Contains(t, out, "recommended: merge")

	// порядок очереди сохраняется
	assert.Less(t, strings.Index(out, "id d-1"), strings.Index(out, "id d-2"))
}

func TestCli_runConflicts_JSON(t *testing.T) {
	tc := newTestCli(t, "")
	tc.sync.GetConflictsFunc = func() []models.ConflictGroup {
		return []models.ConflictGroup{drawingConflict("d-1")}
	}
	tc.sync.GetDiagnosisFunc = func() map[string]models.ResolutionChoice {
		return map[string]models.ResolutionChoice{"d-1": models.ChoiceLocal}
	}

	require.NoError(t, tc.cli.runConflicts(true))

	var views []struct {
		ID          string                  `json:"id"`
		Collection  models.Collection       `json:"collection"`
		Recommended models.ResolutionChoice `json:"recommended"`
		Conflicts   []models.ConflictField  `json:"conflicts"`
	}
	require.NoError(t, json.Unmarshal(tc.out.Bytes(), &views))
	require.Len(t, views, 1)
	assert.Equal(t, "d-1", views[0].ID)
	assert.Equal(t, models.CollectionDrawing, views[0].Collection)
	assert.Equal(t, models.ChoiceLocal, views[0].Recommended)
	require.Len(t, views[0].Conflicts, 1)
	assert.Equal(t, "title", views[0].Conflicts[0].Field)
}

func TestCli_runConflicts_JSONEmptyIsArray(t *testing.T) {
	tc := newTestCli(t, "")
	tc.sync.GetConflictsFunc = func() []models.ConflictGroup { return nil }
	tc.sync.GetDiagnosisFunc = func() map[string]models.ResolutionChoice { return nil }

	require.NoError(t, tc.cli.runConflicts(true))
	assert.JSONEq(t, `[]`, tc.out.String())
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value any
		name  string
		want  string
		unset bool
	}{
		{name: "string", value: "Sunny", want: `"Sunny"`},
		{name: "number", value: 42, want: "42"},
		{name: "unset", value: nil, unset: true, want: "<unset>"},
		{name: "null", value: nil, want: "null"},
		{name: "list", value: []any{"a", "b"}, want: `["a","b"]`},
		{name: "long", value: strings.Repeat("ж", 60), want: `"` + strings.Repeat("ж", 36) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatValue(tt.value, tt.unset))
		})
	}
}
