package repository

import (
	"context"
	"fmt"

	"prestige/internal/model"
)

// ListHouses returns every house regardless of state, in insertion order.
func (r *PostgresRepository) ListHouses(ctx context.Context) ([]model.House, error) {
	houses := []model.House{}
	query := `
		SELECT id, number, state, type, created_at, updated_at
		FROM houses
		ORDER BY id
	`
	if err := r.db.SelectContext(ctx, &houses, query); err != nil {
		return nil, fmt.Errorf("failed to list houses: %w", err)
	}
	return houses, nil
}

// ListActiveHouses returns only the houses whose state is "actif".
func (r *PostgresRepository) ListActiveHouses(ctx context.Context) ([]model.House, error) {
	houses := []model.House{}
	query := `
		SELECT id, number, state, type, created_at, updated_at
		FROM houses
		WHERE state = $1
		ORDER BY id
	`
	if err := r.db.SelectContext(ctx, &houses, query, model.StateActive); err != nil {
		return nil, fmt.Errorf("failed to list active houses: %w", err)
	}
	return houses, nil
}

// SetHouseState unconditionally updates the state column. A nonexistent id
// affects zero rows and is not an error.
func (r *PostgresRepository) SetHouseState(ctx context.Context, id int64, state string) error {
	query := `UPDATE houses SET state = $1, updated_at = NOW() WHERE id = $2`
	if _, err := r.db.ExecContext(ctx, query, state, id); err != nil {
		return fmt.Errorf("failed to update house state: %w", err)
	}
	return nil
}
