package types

import (
	"github.com/go-playground/validator/v10"
)

// SubmitApplicationRequest represents an application submitted from the
// careers site. When TempID is set the submission promotes a parsed resume;
// otherwise the candidate record is created or reused by email.
type SubmitApplicationRequest struct {
	TempID      string   `json:"temp_id,omitempty" validate:"omitempty,uuid"`
	Name        string   `json:"name" validate:"required,min=1"`
	Email       string   `json:"email" validate:"required,email"`
	Phone       string   `json:"phone,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	Experience  string   `json:"experience,omitempty"`
	PositionID  string   `json:"position_id" validate:"required,uuid"`
	ResumeURL   string   `json:"resume_url,omitempty"`
	CoverLetter string   `json:"cover_letter,omitempty"`
}

// UpdateApplicationRequest represents a dashboard review update. All fields
// are optional; absent fields are left unchanged.
type UpdateApplicationRequest struct {
	Status string  `json:"status,omitempty" validate:"omitempty,oneof=New Reviewed Shortlisted Interviewed Offered Hired Rejected"`
	Notes  *string `json:"notes,omitempty"`
	Rating *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
}

// Validate validates the SubmitApplicationRequest using the validator.
func (r *SubmitApplicationRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateApplicationRequest using the validator.
func (r *UpdateApplicationRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
