package conflict

import (
	"fmt"

	"github.com/iudanet/jubeesync/internal/models"
)

// Resolve computes the record that results from applying choice to group.
// It never touches storage; persistence belongs to the sync orchestrator.
//
//   - local:  the local snapshot as captured
//   - server: the remote snapshot as captured
//   - merge:  per conflicting field the value with the strictly later timestamp,
//     equal timestamps go to the server
//
// The result carries the revision of the remote snapshot: it already accounts for that copy.
func Resolve(group *models.ConflictGroup, choice models.ResolutionChoice) (models.ResolvedConflict, error) {
	if err := choice.Validate(); err != nil {
		return models.ResolvedConflict{}, err
	}
	if group == nil || group.Local == nil || group.Remote == nil {
		return models.ResolvedConflict{}, fmt.Errorf("%w: conflict group has no snapshots", ErrMalformedSnapshot)
	}

	var data *models.Record
	switch choice {
	case models.ChoiceLocal:
		data = group.Local.Clone()
	case models.ChoiceServer:
		data = group.Remote.Clone()
	case models.ChoiceMerge:
		data = merge(group)
	}
	// итог разрешения основан на серверной копии
	data.Revision = group.Remote.Revision

	return models.ResolvedConflict{
		ID:         group.ID,
		Collection: group.Collection,
		Choice:     choice,
		Data:       data,
	}, nil
}

// merge строит запись на основе серверного снимка и переносит в нее выигравшие локальные поля.
// Несовпадающие поля в группе, остальные поля на обеих сторонах равны.
func merge(group *models.ConflictGroup) *models.Record {
	out := group.Remote.Clone()
	local := group.Local.Clone()

	if local.UpdatedAt > out.UpdatedAt {
		out.UpdatedAt = local.UpdatedAt
	}

	for _, f := range group.Conflicts {
		// ничья отдается серверу
		if f.LocalTimestamp <= f.ServerTimestamp {
			continue
		}

		if f.LocalUnset {
			delete(out.Fields, f.Field)
			delete(out.FieldTimestamps, f.Field)
			continue
		}

		out.Fields[f.Field] = local.Fields[f.Field]
		if local.FieldTimestamps != nil || out.FieldTimestamps != nil {
			if out.FieldTimestamps == nil {
				out.FieldTimestamps = make(map[string]int64)
			}
			out.FieldTimestamps[f.Field] = f.LocalTimestamp
		}
	}

	return out
}
