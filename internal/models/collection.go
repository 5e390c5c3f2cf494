package models

import (
	"errors"
	"fmt"
)

// Collection определяет логический тип записи.
// Набор закрытый: новые коллекции добавляются только вместе с записью в collectionSpecs.
type Collection string

const (
	CollectionGameProgress  Collection = "game-progress"
	CollectionAchievement   Collection = "achievement"
	CollectionDrawing       Collection = "drawing"
	CollectionStickerUnlock Collection = "sticker-unlock"
	CollectionChildProfile  Collection = "child-profile"
)

// ErrUnknownCollection is returned by ParseCollection for names outside the closed set.
var ErrUnknownCollection = errors.New("unknown collection")

// CollectionSpec describes how a collection is stored and presented.
type CollectionSpec struct {
	// Bucket имя bucket в локальном хранилище
	Bucket []byte
	// LabelField поле, значение которого показывается пользователю вместо ID
	LabelField string
	// RequiredFields поля, без которых снимок считается неполным
	RequiredFields []string
	// newPayload создает типизированную схему полей коллекции
	newPayload func() any
}

// collectionSpecs - таблица коллекций, заменяет switch по строковым именам.
var collectionSpecs = map[Collection]CollectionSpec{
	CollectionGameProgress: {
		Bucket:         []byte("game_progress"),
		LabelField:     "game",
		RequiredFields: []string{"game", "level"},
		newPayload:     func() any { return &GameProgress{} },
	},
	CollectionAchievement: {
		Bucket:         []byte("achievements"),
		LabelField:     "title",
		RequiredFields: []string{"title"},
		newPayload:     func() any { return &Achievement{} },
	},
	CollectionDrawing: {
		Bucket:         []byte("drawings"),
		LabelField:     "title",
		RequiredFields: []string{"title"},
		newPayload:     func() any { return &Drawing{} },
	},
	CollectionStickerUnlock: {
		Bucket:         []byte("sticker_unlocks"),
		LabelField:     "sticker",
		RequiredFields: []string{"sticker"},
		newPayload:     func() any { return &StickerUnlock{} },
	},
	CollectionChildProfile: {
		Bucket:         []byte("child_profiles"),
		LabelField:     "name",
		RequiredFields: []string{"name"},
		newPayload:     func() any { return &ChildProfile{} },
	},
}

// allCollections fixes iteration order for callers that walk every collection.
var allCollections = []Collection{
	CollectionGameProgress,
	CollectionAchievement,
	CollectionDrawing,
	CollectionStickerUnlock,
	CollectionChildProfile,
}

// AllCollections returns every collection in a stable order.
func AllCollections() []Collection {
	out := make([]Collection, len(allCollections))
	copy(out, allCollections)
	return out
}

// Valid reports whether c belongs to the closed set.
func (c Collection) Valid() bool {
	_, ok := collectionSpecs[c]
	return ok
}

func (c Collection) String() string {
	return string(c)
}

// ParseCollection converts user input into a Collection.
func ParseCollection(s string) (Collection, error) {
	c := Collection(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCollection, s)
	}
	return c, nil
}

// Spec returns the table entry for c.
func Spec(c Collection) (CollectionSpec, bool) {
	spec, ok := collectionSpecs[c]
	return spec, ok
}

// NewPayload returns a pointer to the typed field schema of the collection.
func (c Collection) NewPayload() any {
	return MustSpec(c).newPayload()
}

// MustSpec returns the table entry for c and panics for a collection outside the closed set.
// Неизвестная коллекция здесь - ошибка программиста, а не входных данных.
func MustSpec(c Collection) CollectionSpec {
	spec, ok := collectionSpecs[c]
	if !ok {
		panic(fmt.Sprintf("models: unknown collection %q", string(c)))
	}
	return spec
}
