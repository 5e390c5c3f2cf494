package conflict

import (
	"time"

	"github.com/iudanet/jubeesync/internal/models"
)

// Diagnose recommends a resolution for the group without user input.
//
// If every conflicting field is newer locally by more than epsilon it returns local,
// if every field is newer on the server it returns server, otherwise merge.
// The recommendation is advisory and deterministic: it depends only on the group.
func Diagnose(group *models.ConflictGroup, epsilon time.Duration) models.ResolutionChoice {
	if group == nil || len(group.Conflicts) == 0 {
		return models.ChoiceMerge
	}

	eps := epsilon.Milliseconds()
	allLocal, allServer := true, true

	for _, f := range group.Conflicts {
		diff := f.LocalTimestamp - f.ServerTimestamp
		if diff <= eps {
			allLocal = false
		}
		if -diff <= eps {
			allServer = false
		}
	}

	switch {
	case allLocal:
		return models.ChoiceLocal
	case allServer:
		return models.ChoiceServer
	default:
		return models.ChoiceMerge
	}
}
