package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const candidateColumns = `id, name, email, phone, skills, experience, education, resume_url, created_at, updated_at`

func scanCandidate(row pgx.Row) (*Candidate, error) {
	var c Candidate
	var education []byte
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Skills, &c.Experience,
		&education, &c.ResumeURL, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(education) > 0 {
		if err := json.Unmarshal(education, &c.Education); err != nil {
			return nil, fmt.Errorf("failed to decode education: %w", err)
		}
	}
	if c.Education == nil {
		c.Education = []Education{}
	}
	if c.Skills == nil {
		c.Skills = []string{}
	}
	return &c, nil
}

func marshalEducation(education []Education) ([]byte, error) {
	if education == nil {
		education = []Education{}
	}
	data, err := json.Marshal(education)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal education: %w", err)
	}
	return data, nil
}

// CreateCandidate inserts a permanent candidate record and returns it.
func (db *DB) CreateCandidate(ctx context.Context, c *Candidate) (*Candidate, error) {
	education, err := marshalEducation(c.Education)
	if err != nil {
		return nil, err
	}

	skills := c.Skills
	if skills == nil {
		skills = []string{}
	}

	created, err := scanCandidate(db.pool.QueryRow(ctx,
		`INSERT INTO candidates (name, email, phone, skills, experience, education, resume_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+candidateColumns,
		c.Name, c.Email, c.Phone, skills, c.Experience, education, c.ResumeURL,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}
	return created, nil
}

// UpdateCandidate overwrites mutable candidate fields. Used when the same
// email re-applies.
func (db *DB) UpdateCandidate(ctx context.Context, c *Candidate) (*Candidate, error) {
	education, err := marshalEducation(c.Education)
	if err != nil {
		return nil, err
	}

	skills := c.Skills
	if skills == nil {
		skills = []string{}
	}

	updated, err := scanCandidate(db.pool.QueryRow(ctx,
		`UPDATE candidates
		 SET name = $2, email = $3, phone = $4, skills = $5, experience = $6,
		     education = $7, resume_url = $8, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+candidateColumns,
		c.ID, c.Name, c.Email, c.Phone, skills, c.Experience, education, c.ResumeURL,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Kind: "candidate", ID: c.ID}
		}
		return nil, fmt.Errorf("failed to update candidate: %w", err)
	}
	return updated, nil
}

// GetCandidate retrieves a candidate by ID. Returns nil when absent.
func (db *DB) GetCandidate(ctx context.Context, id uuid.UUID) (*Candidate, error) {
	c, err := scanCandidate(db.pool.QueryRow(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return c, nil
}

// FindCandidateByEmail returns the most recent candidate with the given
// email, or nil. Email is a natural dedup key, not a unique constraint.
func (db *DB) FindCandidateByEmail(ctx context.Context, email string) (*Candidate, error) {
	c, err := scanCandidate(db.pool.QueryRow(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE email = $1
		 ORDER BY created_at DESC LIMIT 1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find candidate by email: %w", err)
	}
	return c, nil
}

// CandidateFilters holds optional filters for listing candidates.
type CandidateFilters struct {
	PositionID uuid.UUID
	Status     string
}

// ListCandidates retrieves candidates, newest first, optionally restricted to
// those with an application for a position and/or at a status.
func (db *DB) ListCandidates(ctx context.Context, filters CandidateFilters) ([]Candidate, error) {
	query := `SELECT DISTINCT c.id, c.name, c.email, c.phone, c.skills, c.experience,
	                 c.education, c.resume_url, c.created_at, c.updated_at
	          FROM candidates c`
	args := []any{}
	argNum := 1

	if filters.PositionID != uuid.Nil || filters.Status != "" {
		query += ` JOIN applications a ON a.candidate_id = c.id WHERE 1=1`
		if filters.PositionID != uuid.Nil {
			query += fmt.Sprintf(" AND a.position_id = $%d", argNum)
			args = append(args, filters.PositionID)
			argNum++
		}
		if filters.Status != "" {
			query += fmt.Sprintf(" AND a.status = $%d", argNum)
			args = append(args, filters.Status)
		}
	}
	query += ` ORDER BY c.created_at DESC`

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, *c)
	}
	return candidates, rows.Err()
}
