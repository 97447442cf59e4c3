package repository

import (
	"context"
	"fmt"

	"prestige/internal/model"
)

// ListVideos returns the landing-page playlist.
func (r *PostgresRepository) ListVideos(ctx context.Context) ([]model.Video, error) {
	videos := []model.Video{}
	query := `SELECT id, src, title FROM videos ORDER BY id`
	if err := r.db.SelectContext(ctx, &videos, query); err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	return videos, nil
}
