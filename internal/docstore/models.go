package docstore

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Job listing lifecycle states.
const (
	JobStatusDraft     = "Draft"
	JobStatusPublished = "Published"
	JobStatusClosed    = "Closed"
)

// Interview lifecycle states.
const (
	InterviewStatusScheduled = "Scheduled"
	InterviewStatusCompleted = "Completed"
	InterviewStatusCancelled = "Cancelled"
	InterviewStatusNoShow    = "No-show"
)

// SalaryRange is the advertised compensation band on a listing. IsVisible
// controls whether the careers site shows it.
type SalaryRange struct {
	Min       int    `bson:"min" json:"min"`
	Max       int    `bson:"max" json:"max"`
	Currency  string `bson:"currency" json:"currency"`
	IsVisible bool   `bson:"isVisible" json:"isVisible"`
}

// JobListing is a job posting as published on the careers site.
type JobListing struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title            string             `bson:"title" json:"title"`
	Department       string             `bson:"department" json:"department"`
	Location         string             `bson:"location" json:"location"`
	Type             string             `bson:"type" json:"type"`
	Description      string             `bson:"description" json:"description"`
	Requirements     []string           `bson:"requirements" json:"requirements"`
	Responsibilities []string           `bson:"responsibilities" json:"responsibilities"`
	Benefits         []string           `bson:"benefits" json:"benefits"`
	Salary           SalaryRange        `bson:"salary" json:"salary"`
	Status           string             `bson:"status" json:"status"`
	CreatedBy        string             `bson:"createdBy" json:"createdBy"`
	Featured         bool               `bson:"featured" json:"featured"`
	ClosingDate      *time.Time         `bson:"closingDate,omitempty" json:"closingDate,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Feedback is one interviewer's written assessment, rating 1 to 5.
type Feedback struct {
	Interviewer string    `bson:"interviewer" json:"interviewer"`
	Rating      int       `bson:"rating" json:"rating"`
	Comments    string    `bson:"comments" json:"comments"`
	SubmittedAt time.Time `bson:"submittedAt" json:"submittedAt"`
}

// Interview is a scheduled meeting between interviewers and a candidate,
// keyed back to the relational side by application and candidate ids.
type Interview struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ApplicationID string             `bson:"applicationId" json:"applicationId"`
	CandidateID   string             `bson:"candidateId" json:"candidateId"`
	Interviewers  []string           `bson:"interviewers" json:"interviewers"`
	ScheduledFor  time.Time          `bson:"scheduledFor" json:"scheduledFor"`
	Duration      int                `bson:"duration" json:"duration"`
	Type          string             `bson:"type" json:"type"`
	Location      string             `bson:"location,omitempty" json:"location,omitempty"`
	MeetingURL    string             `bson:"meetingUrl,omitempty" json:"meetingUrl,omitempty"`
	Status        string             `bson:"status" json:"status"`
	Feedback      []Feedback         `bson:"feedback" json:"feedback"`
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ValidJobStatus reports whether s is a known listing status.
func ValidJobStatus(s string) bool {
	switch s {
	case JobStatusDraft, JobStatusPublished, JobStatusClosed:
		return true
	}
	return false
}

// ValidInterviewStatus reports whether s is a known interview status.
func ValidInterviewStatus(s string) bool {
	switch s {
	case InterviewStatusScheduled, InterviewStatusCompleted, InterviewStatusCancelled, InterviewStatusNoShow:
		return true
	}
	return false
}
