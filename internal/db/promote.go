package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/marisol/talentdesk/internal/match"
)

// PromoteInput carries the reviewed candidate data for promotion. The field
// values are the recruiter-confirmed versions, which may differ from what was
// parsed into the temporary record.
type PromoteInput struct {
	TempID      uuid.UUID
	Name        string
	Email       string
	Phone       string
	Skills      []string
	Experience  string
	PositionID  uuid.UUID
	CoverLetter string
}

// PromoteTemporaryCandidate converts a temporary candidate into a permanent
// candidate with an application for the given position. The whole operation
// runs in a single transaction: if any step fails, no permanent records are
// left behind and the temporary record survives. Concurrent promotions of the
// same temporary candidate race on the final delete, so exactly one of them
// commits.
func (db *DB) PromoteTemporaryCandidate(ctx context.Context, input PromoteInput) (*Candidate, *Application, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var resumeURL string
	err = tx.QueryRow(ctx,
		`SELECT resume_url FROM temporary_candidates WHERE temp_id = $1`,
		input.TempID).Scan(&resumeURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, &TemporaryCandidateNotFoundError{TempID: input.TempID}
		}
		return nil, nil, fmt.Errorf("failed to load temporary candidate: %w", err)
	}

	skills := input.Skills
	if skills == nil {
		skills = []string{}
	}

	candidate, err := scanCandidate(tx.QueryRow(ctx,
		`INSERT INTO candidates (name, email, phone, skills, experience, education, resume_url)
		 VALUES ($1, $2, $3, $4, $5, '[]', $6)
		 RETURNING `+candidateColumns,
		input.Name, input.Email, input.Phone, skills, input.Experience, resumeURL,
	))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create candidate: %w", err)
	}

	score := match.DefaultScore
	var requirements string
	err = tx.QueryRow(ctx,
		`SELECT requirements FROM positions WHERE id = $1`, input.PositionID).Scan(&requirements)
	if err != nil {
		log.Printf("[PROMOTE] position %s lookup failed, using default match score: %v", input.PositionID, err)
	} else {
		score = match.Score(skills, requirements)
	}

	application, err := scanApplication(tx.QueryRow(ctx,
		`INSERT INTO applications (candidate_id, position_id, status, match_score, cover_letter)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+applicationColumns,
		candidate.ID, input.PositionID, StatusNew, score, input.CoverLetter,
	))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create application: %w", err)
	}

	tag, err := tx.Exec(ctx,
		`DELETE FROM temporary_candidates WHERE temp_id = $1`, input.TempID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to delete temporary candidate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Another promotion deleted the record after we read it.
		return nil, nil, &TemporaryCandidateNotFoundError{TempID: input.TempID}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to commit promotion: %w", err)
	}
	return candidate, application, nil
}
