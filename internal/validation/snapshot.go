package validation

import (
	"errors"
	"fmt"

	"github.com/iudanet/jubeesync/internal/models"
)

// ErrMalformedSnapshot indicates a snapshot without the identity fields every collection shares.
var ErrMalformedSnapshot = errors.New("malformed snapshot")

// ValidateSnapshot checks the identity of a single snapshot.
// Доменные поля не проверяются: расхождение в них и есть конфликт.
func ValidateSnapshot(rec *models.Record) error {
	if rec == nil {
		return fmt.Errorf("%w: snapshot is nil", ErrMalformedSnapshot)
	}
	if rec.ID == "" {
		return fmt.Errorf("%w: missing id", ErrMalformedSnapshot)
	}
	if !rec.Collection.Valid() {
		return fmt.Errorf("%w: record %s has unknown collection %q", ErrMalformedSnapshot, rec.ID, string(rec.Collection))
	}
	if rec.UpdatedAt <= 0 {
		return fmt.Errorf("%w: record %s has no updated_at", ErrMalformedSnapshot, rec.ID)
	}
	return nil
}

// ValidatePair checks both snapshots and that they describe the same logical record.
func ValidatePair(local, remote *models.Record) error {
	if err := ValidateSnapshot(local); err != nil {
		return fmt.Errorf("local: %w", err)
	}
	if err := ValidateSnapshot(remote); err != nil {
		return fmt.Errorf("remote: %w", err)
	}
	if local.ID != remote.ID || local.Collection != remote.Collection {
		return fmt.Errorf("%w: local %s does not match remote %s",
			ErrMalformedSnapshot, local.Key(), remote.Key())
	}
	return nil
}
