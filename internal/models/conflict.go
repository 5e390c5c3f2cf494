package models

import (
	"errors"
	"fmt"
	"time"
)

// ResolutionChoice стратегия разрешения конфликта
type ResolutionChoice string

const (
	ChoiceLocal  ResolutionChoice = "local"  // оставить локальную версию
	ChoiceServer ResolutionChoice = "server" // оставить серверную версию
	ChoiceMerge  ResolutionChoice = "merge"  // слияние по полям
)

// ErrInvalidChoice indicates a ResolutionChoice outside the closed set.
var ErrInvalidChoice = errors.New("invalid resolution choice")

// Validate returns ErrInvalidChoice for values outside {local, server, merge}.
func (c ResolutionChoice) Validate() error {
	switch c {
	case ChoiceLocal, ChoiceServer, ChoiceMerge:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidChoice, string(c))
	}
}

// NeedsRemoteWrite reports whether persisting a resolution made with c must update the remote store.
// Серверная версия уже лежит на сервере, повторная запись не нужна.
func (c ResolutionChoice) NeedsRemoteWrite() bool {
	return c == ChoiceLocal || c == ChoiceMerge
}

// ParseChoice converts user input into a ResolutionChoice.
func ParseChoice(s string) (ResolutionChoice, error) {
	c := ResolutionChoice(s)
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

// ConflictField описывает одно расходящееся поле.
// LocalUnset/ServerUnset отмечают сторону, на которой поле отсутствует.
type ConflictField struct {
	LocalValue      any    `json:"local_value"`
	ServerValue     any    `json:"server_value"`
	Field           string `json:"field"`
	LocalTimestamp  int64  `json:"local_timestamp"`
	ServerTimestamp int64  `json:"server_timestamp"`
	LocalUnset      bool   `json:"local_unset,omitempty"`
	ServerUnset     bool   `json:"server_unset,omitempty"`
}

// ConflictGroup содержит все расхождения одной записи.
// Conflicts никогда не пуст; группа не редактируется после публикации.
type ConflictGroup struct {
	DetectedAt  time.Time       `json:"detected_at"`
	Local       *Record         `json:"local"`
	Remote      *Record         `json:"remote"`
	ID          string          `json:"id"`
	Collection  Collection      `json:"collection"`
	RecordLabel string          `json:"record_label,omitempty"`
	Conflicts   []ConflictField `json:"conflicts"`
}

// Key returns the collection-qualified key of the conflicting record.
func (g *ConflictGroup) Key() RecordKey {
	return RecordKey{Collection: g.Collection, ID: g.ID}
}

// FieldNames returns the names of the conflicting fields in group order.
func (g *ConflictGroup) FieldNames() []string {
	names := make([]string, 0, len(g.Conflicts))
	for _, f := range g.Conflicts {
		names = append(names, f.Field)
	}
	return names
}

// ResolvedConflict полная запись, которую нужно сохранить после разрешения конфликта
type ResolvedConflict struct {
	Data       *Record          `json:"data"`
	ID         string           `json:"id"`
	Collection Collection       `json:"collection"`
	Choice     ResolutionChoice `json:"choice"`
}
