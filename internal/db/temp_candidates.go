package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/marisol/talentdesk/internal/resume"
)

// TempCandidateTTL is how long an unconfirmed upload stays claimable.
const TempCandidateTTL = 24 * time.Hour

// CreateTemporaryCandidate persists extraction results under a fresh tempId
// and returns the stored record. The applicant-facing form reads it back once
// to pre-fill the application.
func (db *DB) CreateTemporaryCandidate(ctx context.Context, resumeURL string, fields resume.Fields) (*TemporaryCandidate, error) {
	tc := &TemporaryCandidate{
		TempID:     uuid.New(),
		Name:       fields.Name,
		Email:      fields.Email,
		Phone:      fields.Phone,
		Skills:     fields.Skills,
		Experience: fields.Experience,
		ResumeURL:  resumeURL,
		ExpiresAt:  time.Now().Add(TempCandidateTTL),
	}
	if tc.Skills == nil {
		tc.Skills = []string{}
	}

	err := db.pool.QueryRow(ctx,
		`INSERT INTO temporary_candidates (temp_id, name, email, phone, skills, experience, resume_url, expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at`,
		tc.TempID, tc.Name, tc.Email, tc.Phone, tc.Skills, tc.Experience, tc.ResumeURL, tc.ExpiresAt,
	).Scan(&tc.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary candidate: %w", err)
	}
	return tc, nil
}

// GetTemporaryCandidate looks up a temp record by id. Returns nil when absent.
// Expiry is not checked here; expiresAt is advisory.
func (db *DB) GetTemporaryCandidate(ctx context.Context, tempID uuid.UUID) (*TemporaryCandidate, error) {
	var tc TemporaryCandidate
	err := db.pool.QueryRow(ctx,
		`SELECT temp_id, name, email, phone, skills, experience, resume_url, expires_at, created_at
		 FROM temporary_candidates WHERE temp_id = $1`,
		tempID,
	).Scan(&tc.TempID, &tc.Name, &tc.Email, &tc.Phone, &tc.Skills, &tc.Experience,
		&tc.ResumeURL, &tc.ExpiresAt, &tc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get temporary candidate: %w", err)
	}
	return &tc, nil
}

// DeleteTemporaryCandidate removes a temp record. Deleting an absent id is not
// an error at this layer.
func (db *DB) DeleteTemporaryCandidate(ctx context.Context, tempID uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM temporary_candidates WHERE temp_id = $1`, tempID)
	if err != nil {
		return fmt.Errorf("failed to delete temporary candidate: %w", err)
	}
	return nil
}

// PurgeExpiredTemporaryCandidates deletes temp records past their expiresAt.
// Nothing on the read path enforces expiry; this is invoked by the purge-temp
// CLI command.
func (db *DB) PurgeExpiredTemporaryCandidates(ctx context.Context) (int64, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM temporary_candidates WHERE expires_at < NOW()`)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired temporary candidates: %w", err)
	}
	return tag.RowsAffected(), nil
}
