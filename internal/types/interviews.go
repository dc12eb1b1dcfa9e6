package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// ScheduleInterviewRequest represents the request to schedule an interview
// for an application.
type ScheduleInterviewRequest struct {
	ApplicationID string    `json:"application_id" validate:"required,uuid"`
	CandidateID   string    `json:"candidate_id" validate:"required,uuid"`
	Interviewers  []string  `json:"interviewers" validate:"required,min=1,dive,min=1"`
	ScheduledFor  time.Time `json:"scheduled_for" validate:"required"`
	Duration      int       `json:"duration" validate:"required,min=15,max=480"`
	Type          string    `json:"type" validate:"required,oneof=Phone Video Onsite Technical Behavioral"`
	Location      string    `json:"location,omitempty"`
	MeetingURL    string    `json:"meeting_url,omitempty" validate:"omitempty,url"`
	Notes         string    `json:"notes,omitempty"`
}

// UpdateInterviewRequest represents a partial edit of an interview.
type UpdateInterviewRequest struct {
	Interviewers []string   `json:"interviewers,omitempty" validate:"omitempty,min=1,dive,min=1"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
	Duration     *int       `json:"duration,omitempty" validate:"omitempty,min=15,max=480"`
	Type         *string    `json:"type,omitempty" validate:"omitempty,oneof=Phone Video Onsite Technical Behavioral"`
	Location     *string    `json:"location,omitempty"`
	MeetingURL   *string    `json:"meeting_url,omitempty" validate:"omitempty,url"`
	Status       *string    `json:"status,omitempty" validate:"omitempty,oneof=Scheduled Completed Cancelled No-show"`
	Notes        *string    `json:"notes,omitempty"`
}

// InterviewFeedbackRequest represents one interviewer's submitted feedback.
type InterviewFeedbackRequest struct {
	Interviewer string `json:"interviewer" validate:"required,min=1"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	Comments    string `json:"comments,omitempty"`
}

// Validate validates the ScheduleInterviewRequest using the validator.
func (r *ScheduleInterviewRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateInterviewRequest using the validator.
func (r *UpdateInterviewRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the InterviewFeedbackRequest using the validator.
func (r *InterviewFeedbackRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
