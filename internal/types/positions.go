package types

import (
	"github.com/go-playground/validator/v10"
)

// CreatePositionRequest represents the request to open a position that
// applications can be scored against.
type CreatePositionRequest struct {
	Title        string `json:"title" validate:"required,min=1"`
	Department   string `json:"department,omitempty"`
	Location     string `json:"location,omitempty"`
	Type         string `json:"type,omitempty" validate:"omitempty,oneof=Full-time Part-time Contract Internship Remote"`
	Description  string `json:"description,omitempty"`
	Requirements string `json:"requirements,omitempty"`
}

// Validate validates the CreatePositionRequest using the validator.
func (r *CreatePositionRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
