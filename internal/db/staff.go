package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const staffColumns = `id, name, email, phone, title, department, external_id, password_hash, password_set, created_at, updated_at`

func scanStaffUser(row pgx.Row) (*StaffUser, error) {
	var u StaffUser
	var externalID *string
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Title, &u.Department,
		&externalID, &u.PasswordHash, &u.PasswordSet, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if externalID != nil {
		u.ExternalID = *externalID
	}
	return &u, nil
}

// CreateStaffUser inserts a new staff account.
func (db *DB) CreateStaffUser(ctx context.Context, u *StaffUser) (*StaffUser, error) {
	var externalID *string
	if u.ExternalID != "" {
		externalID = &u.ExternalID
	}

	created, err := scanStaffUser(db.pool.QueryRow(ctx,
		`INSERT INTO staff_users (name, email, phone, title, department, external_id, password_hash, password_set)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+staffColumns,
		u.Name, u.Email, u.Phone, u.Title, u.Department, externalID, u.PasswordHash, u.PasswordSet,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create staff user: %w", err)
	}
	return created, nil
}

// GetStaffUser retrieves a staff account by id. Returns nil when absent.
func (db *DB) GetStaffUser(ctx context.Context, id uuid.UUID) (*StaffUser, error) {
	u, err := scanStaffUser(db.pool.QueryRow(ctx,
		`SELECT `+staffColumns+` FROM staff_users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get staff user: %w", err)
	}
	return u, nil
}

// GetStaffUserByEmail retrieves a staff account by email. Returns nil when
// absent.
func (db *DB) GetStaffUserByEmail(ctx context.Context, email string) (*StaffUser, error) {
	u, err := scanStaffUser(db.pool.QueryRow(ctx,
		`SELECT `+staffColumns+` FROM staff_users WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get staff user by email: %w", err)
	}
	return u, nil
}

// CheckEmailExists reports whether a staff account with the given email
// already exists.
func (db *DB) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM staff_users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

// UpdatePassword stores a new password hash for the account and marks the
// password as set.
func (db *DB) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE staff_users SET password_hash = $2, password_set = TRUE, updated_at = NOW() WHERE id = $1`,
		id, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &NotFoundError{Kind: "staff user", ID: id}
	}
	return nil
}

// UpsertStaffUserByExternalID creates or refreshes a staff account keyed by
// the identity provider's user id. Used by the identity webhook, so an
// account provisioned this way has no local password until one is set.
func (db *DB) UpsertStaffUserByExternalID(ctx context.Context, externalID, email, name string) (*StaffUser, error) {
	u, err := scanStaffUser(db.pool.QueryRow(ctx,
		`INSERT INTO staff_users (name, email, external_id)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (external_id)
		 DO UPDATE SET name = EXCLUDED.name, email = EXCLUDED.email, updated_at = NOW()
		 RETURNING `+staffColumns,
		name, email, externalID,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert staff user: %w", err)
	}
	return u, nil
}

// DeleteStaffUserByExternalID removes the staff account provisioned for the
// identity provider's user id. Deleting an unknown id is not an error.
func (db *DB) DeleteStaffUserByExternalID(ctx context.Context, externalID string) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM staff_users WHERE external_id = $1`, externalID)
	if err != nil {
		return fmt.Errorf("failed to delete staff user: %w", err)
	}
	return nil
}
