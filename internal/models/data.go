package models

import (
	"encoding/json"
	"fmt"
)

// GameProgress прогресс ребенка в одной мини-игре
type GameProgress struct {
	Game      string `json:"game"`       // Game идентификатор игры (например, "dance", "memory")
	Level     int    `json:"level"`      // Level текущий уровень
	Score     int    `json:"score"`      // Score лучший счет
	Stars     int    `json:"stars"`      // Stars заработанные звезды
	Completed bool   `json:"completed"`  // Completed игра пройдена полностью
	PlayedSec int    `json:"played_sec"` // PlayedSec суммарное время в игре
}

// Achievement полученная награда
type Achievement struct {
	Title      string `json:"title"`       // Title название награды
	Category   string `json:"category"`    // Category раздел приложения, где получена награда
	UnlockedAt int64  `json:"unlocked_at"` // UnlockedAt время получения (unix ms)
	Seen       bool   `json:"seen"`        // Seen ребенок уже видел анимацию награды
}

// Drawing рисунок из раздела рисования
type Drawing struct {
	Title     string   `json:"title"`     // Title название рисунка
	Strokes   string   `json:"strokes"`   // Strokes сериализованные штрихи холста
	Palette   []string `json:"palette"`   // Palette использованные цвета
	Favorite  bool     `json:"favorite"`  // Favorite рисунок в избранном
	Thumbnail string   `json:"thumbnail"` // Thumbnail base64 превью
}

// StickerUnlock открытая наклейка
type StickerUnlock struct {
	Sticker string `json:"sticker"` // Sticker идентификатор наклейки
	Album   string `json:"album"`   // Album альбом, в который вклеена наклейка
	Count   int    `json:"count"`   // Count количество дубликатов
}

// ChildProfile профиль ребенка
type ChildProfile struct {
	Name          string `json:"name"`            // Name имя ребенка
	Avatar        string `json:"avatar"`          // Avatar выбранный аватар
	AgeGroup      string `json:"age_group"`       // AgeGroup возрастная группа ("3-4", "5-6", ...)
	Voice         string `json:"voice"`           // Voice голос озвучки
	DailyLimitMin int    `json:"daily_limit_min"` // DailyLimitMin лимит времени, установленный родителем
}

// DecodeFields fills a typed payload from the record's fields.
func (r *Record) DecodeFields(payload any) error {
	raw, err := json.Marshal(r.Fields)
	if err != nil {
		return fmt.Errorf("failed to marshal fields: %w", err)
	}
	if err := json.Unmarshal(raw, payload); err != nil {
		return fmt.Errorf("failed to decode fields: %w", err)
	}
	return nil
}

// Payload decodes the fields into the typed schema of the record's collection.
// Поля вне схемы игнорируются: новые версии приложения могут добавлять свои.
func (r *Record) Payload() (any, error) {
	if !r.Collection.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, string(r.Collection))
	}
	payload := r.Collection.NewPayload()
	if err := r.DecodeFields(payload); err != nil {
		return nil, err
	}
	return payload, nil
}
