// internal/core/domain/vaccine.go
package domain

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// MaxBatchIDLength is the longest accepted batch identifier.
const MaxBatchIDLength = 20

// VaccineBatch represents a registered lot of a vaccine
type VaccineBatch struct {
	Name    string `json:"name"`
	BatchID string `json:"batch_id"`
	Expiry  Date   `json:"expiry"`
	Doses   int    `json:"doses"`
}

// Validate performs domain validation on the batch. Checks run in a fixed
// order and the first violated rule is returned. Uniqueness is the
// registry's concern.
func (b *VaccineBatch) Validate() error {
	if err := ValidateName(b.Name); err != nil {
		return err
	}
	if err := ValidateBatchID(b.BatchID); err != nil {
		return err
	}
	if err := b.Expiry.Validate(); err != nil {
		return err
	}
	if b.Doses <= 0 {
		return ErrInvalidQuantity
	}
	return nil
}

// Expired reports whether an inoculation on date would fall after the
// batch's expiry. The expiry date itself is still usable.
func (b *VaccineBatch) Expired(date Date) bool {
	return date.After(b.Expiry)
}

// Inoculation represents a single administration consuming one dose
type Inoculation struct {
	ID         uuid.UUID `json:"id"`
	User       string    `json:"user"`
	BatchID    string    `json:"batch_id"`
	Date       Date      `json:"date"`
	RecordedAt time.Time `json:"recorded_at"`
}

// PrepareForStorage assigns the identifier and recording time if unset.
func (i *Inoculation) PrepareForStorage() {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if i.RecordedAt.IsZero() {
		i.RecordedAt = time.Now()
	}
}

// ValidateName rejects empty names and names containing any whitespace.
func ValidateName(name string) error {
	if name == "" || strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return ErrInvalidName
	}
	return nil
}

// ValidateBatchID accepts 1 to MaxBatchIDLength characters from [0-9A-F].
func ValidateBatchID(id string) error {
	if id == "" || len(id) > MaxBatchIDLength {
		return ErrInvalidBatchID
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		if !(c >= '0' && c <= '9') && !(c >= 'A' && c <= 'F') {
			return ErrInvalidBatchID
		}
	}
	return nil
}

// ValidateUser rejects an empty recipient. Any other text is accepted as is.
func ValidateUser(user string) error {
	if user == "" {
		return ErrInvalidUser
	}
	return nil
}
