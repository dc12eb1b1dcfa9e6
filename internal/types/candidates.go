package types

import (
	"github.com/go-playground/validator/v10"
)

// EducationEntry mirrors one education record on a candidate profile.
type EducationEntry struct {
	Institution string `json:"institution" validate:"required,min=1"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	Year        int    `json:"year,omitempty"`
}

// UpdateCandidateRequest represents a dashboard edit of a candidate profile.
// Pointer fields distinguish "clear this" from "leave unchanged".
type UpdateCandidateRequest struct {
	Name       *string          `json:"name,omitempty" validate:"omitempty,min=1"`
	Email      *string          `json:"email,omitempty" validate:"omitempty,email"`
	Phone      *string          `json:"phone,omitempty"`
	Skills     []string         `json:"skills,omitempty"`
	Experience *string          `json:"experience,omitempty"`
	Education  []EducationEntry `json:"education,omitempty" validate:"omitempty,dive"`
}

// Validate validates the UpdateCandidateRequest using the validator.
func (r *UpdateCandidateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
