package conflict

import (
	"bytes"
	"encoding/json"
	"reflect"
	"sort"

	"github.com/iudanet/jubeesync/internal/models"
	"github.com/iudanet/jubeesync/internal/validation"
)

// Detect сравнивает локальный и удаленный снимки одной записи.
// Возвращает nil, если все поля совпадают. Поле, отсутствующее на одной из сторон,
// тоже считается конфликтом, чтобы удаление было видно и могло быть разрешено.
// Функция чистая: не пишет в хранилища и не читает часы.
func Detect(local, remote *models.Record) (*models.ConflictGroup, error) {
	if err := validation.ValidatePair(local, remote); err != nil {
		return nil, err
	}

	names := fieldNames(local, remote)
	conflicts := make([]models.ConflictField, 0, len(names))

	for _, name := range names {
		localValue, inLocal := local.Fields[name]
		remoteValue, inRemote := remote.Fields[name]

		if inLocal && inRemote && ValuesEqual(localValue, remoteValue) {
			continue
		}

		conflicts = append(conflicts, models.ConflictField{
			Field:           name,
			LocalValue:      localValue,
			ServerValue:     remoteValue,
			LocalTimestamp:  local.FieldTimestamp(name),
			ServerTimestamp: remote.FieldTimestamp(name),
			LocalUnset:      !inLocal,
			ServerUnset:     !inRemote,
		})
	}

	if len(conflicts) == 0 {
		return nil, nil
	}

	label := local.Label()
	if label == "" {
		label = remote.Label()
	}

	return &models.ConflictGroup{
		ID:          local.ID,
		Collection:  local.Collection,
		RecordLabel: label,
		Conflicts:   conflicts,
		Local:       local.Clone(),
		Remote:      remote.Clone(),
	}, nil
}

// ValuesEqual reports deep value equality of two field values.
// Values that differ only in Go representation (10 and 10.0 after a JSON round trip)
// are equal when their JSON encodings match.
func ValuesEqual(a, b any) bool {
	if reflect.DeepEqual(a, b) {
		return true
	}

	ra, err := json.Marshal(a)
	if err != nil {
		return false
	}
	rb, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(ra, rb)
}

// fieldNames возвращает отсортированное объединение имен полей обоих снимков
func fieldNames(local, remote *models.Record) []string {
	seen := make(map[string]struct{}, len(local.Fields)+len(remote.Fields))
	for name := range local.Fields {
		seen[name] = struct{}{}
	}
	for name := range remote.Fields {
		seen[name] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
