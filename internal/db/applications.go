package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const applicationColumns = `id, candidate_id, position_id, status, match_score, cover_letter, notes, rating, applied_at, updated_at`

func scanApplication(row pgx.Row) (*Application, error) {
	var a Application
	err := row.Scan(&a.ID, &a.CandidateID, &a.PositionID, &a.Status, &a.MatchScore,
		&a.CoverLetter, &a.Notes, &a.Rating, &a.AppliedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateApplication inserts an application and returns it. Nothing prevents a
// second application for the same (candidate, position) pair.
func (db *DB) CreateApplication(ctx context.Context, a *Application) (*Application, error) {
	if a.Status == "" {
		a.Status = StatusNew
	}

	created, err := scanApplication(db.pool.QueryRow(ctx,
		`INSERT INTO applications (candidate_id, position_id, status, match_score, cover_letter, notes, rating)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+applicationColumns,
		a.CandidateID, a.PositionID, a.Status, a.MatchScore, a.CoverLetter, a.Notes, a.Rating,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return created, nil
}

// GetApplication retrieves an application with its candidate. Returns nil
// when absent.
func (db *DB) GetApplication(ctx context.Context, id uuid.UUID) (*ApplicationDetail, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT a.id, a.candidate_id, a.position_id, a.status, a.match_score, a.cover_letter,
		        a.notes, a.rating, a.applied_at, a.updated_at,
		        c.id, c.name, c.email, c.phone, c.skills, c.experience, c.education,
		        c.resume_url, c.created_at, c.updated_at
		 FROM applications a
		 JOIN candidates c ON c.id = a.candidate_id
		 WHERE a.id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	defer rows.Close()

	details, err := collectApplicationDetails(rows)
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, nil
	}
	return &details[0], nil
}

// ApplicationFilters holds optional filters for listing applications.
type ApplicationFilters struct {
	PositionID uuid.UUID
	Status     string
	Limit      int
}

// ListApplications retrieves applications joined with their candidates, most
// recently applied first.
func (db *DB) ListApplications(ctx context.Context, filters ApplicationFilters) ([]ApplicationDetail, error) {
	query := `SELECT a.id, a.candidate_id, a.position_id, a.status, a.match_score, a.cover_letter,
	                 a.notes, a.rating, a.applied_at, a.updated_at,
	                 c.id, c.name, c.email, c.phone, c.skills, c.experience, c.education,
	                 c.resume_url, c.created_at, c.updated_at
	          FROM applications a
	          JOIN candidates c ON c.id = a.candidate_id
	          WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.PositionID != uuid.Nil {
		query += fmt.Sprintf(" AND a.position_id = $%d", argNum)
		args = append(args, filters.PositionID)
		argNum++
	}
	if filters.Status != "" {
		query += fmt.Sprintf(" AND a.status = $%d", argNum)
		args = append(args, filters.Status)
		argNum++
	}

	query += " ORDER BY a.applied_at DESC"
	if filters.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argNum)
		args = append(args, filters.Limit)
	}

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	return collectApplicationDetails(rows)
}

func collectApplicationDetails(rows pgx.Rows) ([]ApplicationDetail, error) {
	details := []ApplicationDetail{}
	for rows.Next() {
		var d ApplicationDetail
		var education []byte
		err := rows.Scan(&d.ID, &d.CandidateID, &d.PositionID, &d.Status, &d.MatchScore,
			&d.CoverLetter, &d.Notes, &d.Rating, &d.AppliedAt, &d.UpdatedAt,
			&d.Candidate.ID, &d.Candidate.Name, &d.Candidate.Email, &d.Candidate.Phone,
			&d.Candidate.Skills, &d.Candidate.Experience, &education,
			&d.Candidate.ResumeURL, &d.Candidate.CreatedAt, &d.Candidate.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		if len(education) > 0 {
			if err := json.Unmarshal(education, &d.Candidate.Education); err != nil {
				return nil, fmt.Errorf("failed to decode education: %w", err)
			}
		}
		if d.Candidate.Education == nil {
			d.Candidate.Education = []Education{}
		}
		if d.Candidate.Skills == nil {
			d.Candidate.Skills = []string{}
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

// ApplicationUpdate holds the mutable application fields for a dashboard
// status update. Candidate, position, and applied time are immutable.
type ApplicationUpdate struct {
	Status string  `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
	Rating *int    `json:"rating,omitempty"`
}

// UpdateApplication applies a partial update to an application.
func (db *DB) UpdateApplication(ctx context.Context, id uuid.UUID, update ApplicationUpdate) (*Application, error) {
	a, err := scanApplication(db.pool.QueryRow(ctx,
		`UPDATE applications
		 SET status = COALESCE(NULLIF($2, ''), status),
		     notes = COALESCE($3, notes),
		     rating = COALESCE($4, rating),
		     updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+applicationColumns,
		id, update.Status, update.Notes, update.Rating,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Kind: "application", ID: id}
		}
		return nil, fmt.Errorf("failed to update application: %w", err)
	}
	return a, nil
}

// CountApplications reports the total number of applications.
func (db *DB) CountApplications(ctx context.Context) (int, error) {
	var count int
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM applications`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count applications: %w", err)
	}
	return count, nil
}

// CountApplicationsByStatus reports the number of applications in the given
// status.
func (db *DB) CountApplicationsByStatus(ctx context.Context, status string) (int, error) {
	var count int
	if err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM applications WHERE status = $1`, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count applications by status: %w", err)
	}
	return count, nil
}

// CountCandidates reports the total number of candidates.
func (db *DB) CountCandidates(ctx context.Context) (int, error) {
	var count int
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM candidates`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count candidates: %w", err)
	}
	return count, nil
}
