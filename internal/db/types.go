package db

import (
	"time"

	"github.com/google/uuid"
)

// Application status values. The set is ordered for display but transitions
// are not enforced to be linear.
const (
	StatusNew         = "New"
	StatusReviewed    = "Reviewed"
	StatusShortlisted = "Shortlisted"
	StatusInterviewed = "Interviewed"
	StatusOffered     = "Offered"
	StatusHired       = "Hired"
	StatusRejected    = "Rejected"
)

// ValidStatus reports whether s is one of the known application statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusReviewed, StatusShortlisted, StatusInterviewed,
		StatusOffered, StatusHired, StatusRejected:
		return true
	}
	return false
}

// Position is an open role applications are scored against. Requirements is
// free text; the match calculator treats it as a substring-match target.
type Position struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Department   string     `json:"department"`
	Location     string     `json:"location"`
	Type         string     `json:"type"`
	Description  string     `json:"description"`
	Requirements string     `json:"requirements"`
	CreatedBy    *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TemporaryCandidate is an unconfirmed, time-bounded draft of a candidate
// profile created immediately after a resume upload. Expiry is advisory:
// reads do not check it, and purging is an operator action.
type TemporaryCandidate struct {
	TempID     uuid.UUID `json:"temp_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Skills     []string  `json:"skills"`
	Experience string    `json:"experience"`
	ResumeURL  string    `json:"resume_url"`
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// Education is one entry of a candidate's education history.
type Education struct {
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution"`
	Year        int    `json:"year"`
}

// Candidate is a permanent candidate record. Email serves as a natural dedup
// key for re-applications but is not enforced unique.
type Candidate struct {
	ID         uuid.UUID   `json:"id"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Phone      string      `json:"phone,omitempty"`
	Skills     []string    `json:"skills"`
	Experience string      `json:"experience,omitempty"`
	Education  []Education `json:"education"`
	ResumeURL  string      `json:"resume_url,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// Application links a candidate to a position.
type Application struct {
	ID          uuid.UUID `json:"id"`
	CandidateID uuid.UUID `json:"candidate_id"`
	PositionID  uuid.UUID `json:"position_id"`
	Status      string    `json:"status"`
	MatchScore  int       `json:"match_score"`
	CoverLetter string    `json:"cover_letter,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	Rating      *int      `json:"rating,omitempty"`
	AppliedAt   time.Time `json:"applied_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ApplicationDetail is an application joined with its candidate for dashboard
// listings.
type ApplicationDetail struct {
	Application
	Candidate Candidate `json:"candidate"`
}

// StaffUser is an internal HR user. Accounts are created either through
// registration or provisioned by the identity-provider webhook (in which case
// ExternalID is set and no password exists yet).
type StaffUser struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Title        string    `json:"title,omitempty"`
	Department   string    `json:"department,omitempty"`
	ExternalID   string    `json:"external_id,omitempty"`
	PasswordHash string    `json:"-"`
	PasswordSet  bool      `json:"password_set"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
