package repository

import (
	"context"
	"fmt"

	"prestige/internal/model"
)

// CreateComment inserts an unseen inquiry. The house reference is not checked
// beforehand; a bad houseId surfaces as ErrIntegrity from the foreign key.
func (r *PostgresRepository) CreateComment(ctx context.Context, req model.CreateCommentRequest) (model.Comment, error) {
	var comment model.Comment
	query := `
		INSERT INTO comments (house_id, name, phone, request, text, date, seen)
		VALUES ($1, $2, $3, $4, $5, $6, false)
		RETURNING id, house_id, name, phone, request, text, date, seen, created_at, updated_at
	`
	err := r.db.GetContext(ctx, &comment, query,
		req.HouseID, req.Name, req.Phone, req.Request, req.Text, req.Date)
	if err != nil {
		return model.Comment{}, fmt.Errorf("failed to create comment: %w", translate(err))
	}
	return comment, nil
}

// ListComments returns all inquiries, newest first.
func (r *PostgresRepository) ListComments(ctx context.Context) ([]model.Comment, error) {
	comments := []model.Comment{}
	query := `
		SELECT id, house_id, name, phone, request, text, date, seen, created_at, updated_at
		FROM comments
		ORDER BY created_at DESC
	`
	if err := r.db.SelectContext(ctx, &comments, query); err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// MarkCommentsSeenForHouse flips seen to true for every inquiry of the given
// house. Idempotent; a house with zero inquiries is a no-op.
func (r *PostgresRepository) MarkCommentsSeenForHouse(ctx context.Context, houseID int64) error {
	query := `UPDATE comments SET seen = true, updated_at = NOW() WHERE house_id = $1`
	if _, err := r.db.ExecContext(ctx, query, houseID); err != nil {
		return fmt.Errorf("failed to mark comments seen: %w", err)
	}
	return nil
}
