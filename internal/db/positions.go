package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const positionColumns = `id, title, department, location, type, description, requirements, created_by, created_at, updated_at`

func scanPosition(row pgx.Row) (*Position, error) {
	var p Position
	err := row.Scan(&p.ID, &p.Title, &p.Department, &p.Location, &p.Type,
		&p.Description, &p.Requirements, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreatePosition inserts a new position and returns it.
func (db *DB) CreatePosition(ctx context.Context, p *Position) (*Position, error) {
	created, err := scanPosition(db.pool.QueryRow(ctx,
		`INSERT INTO positions (title, department, location, type, description, requirements, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+positionColumns,
		p.Title, p.Department, p.Location, p.Type, p.Description, p.Requirements, p.CreatedBy,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create position: %w", err)
	}
	return created, nil
}

// GetPosition retrieves a position by ID. Returns nil when absent.
func (db *DB) GetPosition(ctx context.Context, id uuid.UUID) (*Position, error) {
	p, err := scanPosition(db.pool.QueryRow(ctx,
		`SELECT `+positionColumns+` FROM positions WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get position: %w", err)
	}
	return p, nil
}

// ListPositions retrieves all positions, newest first.
func (db *DB) ListPositions(ctx context.Context) ([]Position, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+positionColumns+` FROM positions ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	defer rows.Close()

	var positions []Position
	for rows.Next() {
		p, err := scanPosition(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		positions = append(positions, *p)
	}
	return positions, rows.Err()
}
