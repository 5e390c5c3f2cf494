package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCollection(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Collection
		wantErr bool
	}{
		{name: "game progress", input: "game-progress", want: CollectionGameProgress},
		{name: "achievement", input: "achievement", want: CollectionAchievement},
		{name: "drawing", input: "drawing", want: CollectionDrawing},
		{name: "sticker unlock", input: "sticker-unlock", want: CollectionStickerUnlock},
		{name: "child profile", input: "child-profile", want: CollectionChildProfile},
		{name: "unknown", input: "secrets", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCollection(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownCollection)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEveryCollectionHasSpec(t *testing.T) {
	buckets := make(map[string]bool)
	for _, c := range AllCollections() {
		spec, ok := Spec(c)
		require.True(t, ok, "collection %s has no spec", c)
		assert.NotEmpty(t, spec.Bucket)
		assert.NotEmpty(t, spec.LabelField)
		assert.False(t, buckets[string(spec.Bucket)], "bucket %s reused", spec.Bucket)
		buckets[string(spec.Bucket)] = true
	}
	assert.Len(t, buckets, 5)
}

func TestMustSpec_PanicsOnUnknownCollection(t *testing.T) {
	assert.Panics(t, func() {
		MustSpec(Collection("homework"))
	})
	assert.NotPanics(t, func() {
		MustSpec(CollectionDrawing)
	})
}

func TestResolutionChoice(t *testing.T) {
	for _, c := range []ResolutionChoice{ChoiceLocal, ChoiceServer, ChoiceMerge} {
		assert.NoError(t, c.Validate())
	}
	assert.ErrorIs(t, ResolutionChoice("newest").Validate(), ErrInvalidChoice)

	assert.True(t, ChoiceLocal.NeedsRemoteWrite())
	assert.True(t, ChoiceMerge.NeedsRemoteWrite())
	assert.False(t, ChoiceServer.NeedsRemoteWrite())

	_, err := ParseChoice("both")
	assert.ErrorIs(t, err, ErrInvalidChoice)
}

func TestRecord_Clone(t *testing.T) {
	original := &Record{
		ID:         "rec-1",
		Collection: CollectionDrawing,
		UpdatedAt:  100,
		Revision:   7,
		Fields: map[string]any{
			"title":   "Sun",
			"palette": []any{"yellow", "orange"},
			"meta":    map[string]any{"width": 320.0},
		},
		FieldTimestamps: map[string]int64{"title": 90},
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	// Изменения копии не должны затрагивать оригинал
	clone.Fields["title"] = "Moon"
	clone.Fields["palette"].([]any)[0] = "blue"
	clone.Fields["meta"].(map[string]any)["width"] = 10.0
	clone.FieldTimestamps["title"] = 1

	assert.Equal(t, "Sun", original.Fields["title"])
	assert.Equal(t, "yellow", original.Fields["palette"].([]any)[0])
	assert.Equal(t, 320.0, original.Fields["meta"].(map[string]any)["width"])
	assert.Equal(t, int64(90), original.FieldTimestamps["title"])

	var nilRecord *Record
	assert.Nil(t, nilRecord.Clone())
}

func TestRecord_FieldTimestamp(t *testing.T) {
	r := &Record{
		UpdatedAt:       500,
		FieldTimestamps: map[string]int64{"score": 300},
	}
	assert.Equal(t, int64(300), r.FieldTimestamp("score"))
	assert.Equal(t, int64(500), r.FieldTimestamp("level"))
}

func TestRecord_Payload(t *testing.T) {
	rec := &Record{
		ID:         "gp-1",
		Collection: CollectionGameProgress,
		UpdatedAt:  1000,
		Fields: map[string]any{
			"game":  "dance",
			"level": float64(3),
			"score": float64(1200),
			"stars": float64(2),
			"mood":  "happy", // поле вне схемы
		},
	}

	payload, err := rec.Payload()
	require.NoError(t, err)
	assert.Equal(t, &GameProgress{Game: "dance", Level: 3, Score: 1200, Stars: 2}, payload)
	assert.Equal(t, "dance", rec.Label())

	rec.Fields["level"] = "third"
	_, err = rec.Payload()
	assert.Error(t, err, "value of the wrong type")

	_, err = (&Record{Collection: "unknown"}).Payload()
	assert.ErrorIs(t, err, ErrUnknownCollection)
}

func TestCollection_NewPayload(t *testing.T) {
	tests := []struct {
		collection Collection
		want       any
	}{
		{collection: CollectionGameProgress, want: &GameProgress{}},
		{collection: CollectionAchievement, want: &Achievement{}},
		{collection: CollectionDrawing, want: &Drawing{}},
		{collection: CollectionStickerUnlock, want: &StickerUnlock{}},
		{collection: CollectionChildProfile, want: &ChildProfile{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.collection), func(t *testing.T) {
			assert.IsType(t, tt.want, tt.collection.NewPayload())
		})
	}
}
