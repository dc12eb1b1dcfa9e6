package db

import (
	"fmt"

	"github.com/google/uuid"
)

// TemporaryCandidateNotFoundError indicates the referenced temp record does
// not exist, including when it was already promoted or purged.
type TemporaryCandidateNotFoundError struct {
	TempID uuid.UUID
}

func (e *TemporaryCandidateNotFoundError) Error() string {
	return fmt.Sprintf("temporary candidate not found: %s", e.TempID)
}

// NotFoundError indicates a record of the given kind does not exist.
type NotFoundError struct {
	Kind string
	ID   uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}
