package validation

import (
	"errors"
	"fmt"

	"github.com/iudanet/jubeesync/internal/models"
)

// ErrInvalidFields indicates a record whose fields do not match its collection schema.
var ErrInvalidFields = errors.New("invalid record fields")

// ValidateFields checks a record written on this device against its collection schema:
// required fields must be set and every known field must have the schema's type.
// Снимки, пришедшие при синхронизации, этой проверкой не отклоняются.
func ValidateFields(rec *models.Record) error {
	if err := ValidateSnapshot(rec); err != nil {
		return err
	}

	spec := models.MustSpec(rec.Collection)
	for _, field := range spec.RequiredFields {
		if v, ok := rec.Fields[field]; !ok || v == nil {
			return fmt.Errorf("%w: %s requires field %q", ErrInvalidFields, rec.Collection, field)
		}
	}

	if _, err := rec.Payload(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidFields, rec.Key(), err)
	}

	return nil
}
