package conflict

import (
	"errors"
	"fmt"

	"github.com/iudanet/jubeesync/internal/models"
	"github.com/iudanet/jubeesync/internal/validation"
)

var (
	// ErrNotFound indicates that no pending conflict exists for the id
	// (already resolved or never detected).
	ErrNotFound = errors.New("conflict not found")

	// ErrMalformedSnapshot indicates a snapshot without identity fields.
	// Such snapshots never enter the pending set.
	ErrMalformedSnapshot = validation.ErrMalformedSnapshot

	// ErrIDCollision indicates a conflict whose id is already pending in another collection.
	// Resolution addresses conflicts by bare id, so the second group is not admitted
	// until the first one is resolved.
	ErrIDCollision = fmt.Errorf("%w: id is pending in another collection", ErrMalformedSnapshot)

	// ErrInvalidChoice indicates a resolution choice outside {local, server, merge}.
	ErrInvalidChoice = models.ErrInvalidChoice
)
