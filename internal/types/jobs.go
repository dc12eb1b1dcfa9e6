package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// SalaryRange represents the advertised compensation band on a listing.
type SalaryRange struct {
	Min       int    `json:"min" validate:"min=0"`
	Max       int    `json:"max" validate:"min=0,gtefield=Min"`
	Currency  string `json:"currency,omitempty"`
	IsVisible bool   `json:"isVisible"`
}

// CreateJobRequest represents the request to create a job listing.
type CreateJobRequest struct {
	Title            string      `json:"title" validate:"required,min=1"`
	Department       string      `json:"department" validate:"required,min=1"`
	Location         string      `json:"location" validate:"required,min=1"`
	Type             string      `json:"type" validate:"required,oneof=Full-time Part-time Contract Internship Remote"`
	Description      string      `json:"description" validate:"required,min=1"`
	Requirements     []string    `json:"requirements,omitempty"`
	Responsibilities []string    `json:"responsibilities,omitempty"`
	Benefits         []string    `json:"benefits,omitempty"`
	Salary           SalaryRange `json:"salary"`
	Status           string      `json:"status,omitempty" validate:"omitempty,oneof=Draft Published Closed"`
	Featured         bool        `json:"featured"`
	ClosingDate      *time.Time  `json:"closingDate,omitempty"`
}

// UpdateJobRequest represents a partial edit of a job listing.
type UpdateJobRequest struct {
	Title            *string      `json:"title,omitempty" validate:"omitempty,min=1"`
	Department       *string      `json:"department,omitempty" validate:"omitempty,min=1"`
	Location         *string      `json:"location,omitempty" validate:"omitempty,min=1"`
	Type             *string      `json:"type,omitempty" validate:"omitempty,oneof=Full-time Part-time Contract Internship Remote"`
	Description      *string      `json:"description,omitempty"`
	Requirements     []string     `json:"requirements,omitempty"`
	Responsibilities []string     `json:"responsibilities,omitempty"`
	Benefits         []string     `json:"benefits,omitempty"`
	Salary           *SalaryRange `json:"salary,omitempty"`
	Status           *string      `json:"status,omitempty" validate:"omitempty,oneof=Draft Published Closed"`
	Featured         *bool        `json:"featured,omitempty"`
	ClosingDate      *time.Time   `json:"closingDate,omitempty"`
}

// Validate validates the CreateJobRequest using the validator.
func (r *CreateJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateJobRequest using the validator.
func (r *UpdateJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
