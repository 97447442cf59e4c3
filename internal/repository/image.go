package repository

import (
	"context"
	"fmt"

	"prestige/internal/model"
)

// ListHouseImages returns all house images, optionally filtered by the
// associated house. The other three catalogs are not house-scoped.
func (r *PostgresRepository) ListHouseImages(ctx context.Context, houseID *int64) ([]model.HouseImage, error) {
	images := []model.HouseImage{}
	query := `
		SELECT id, src, house_id, created_at, updated_at
		FROM house_images
	`
	args := []interface{}{}
	if houseID != nil {
		query += ` WHERE house_id = $1`
		args = append(args, *houseID)
	}
	query += ` ORDER BY id`

	if err := r.db.SelectContext(ctx, &images, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list house images: %w", err)
	}
	return images, nil
}

// ListRoomImages returns the full rooms carousel.
func (r *PostgresRepository) ListRoomImages(ctx context.Context) ([]model.RoomImage, error) {
	images := []model.RoomImage{}
	query := `SELECT id, src, created_at, updated_at FROM room_images ORDER BY id`
	if err := r.db.SelectContext(ctx, &images, query); err != nil {
		return nil, fmt.Errorf("failed to list room images: %w", err)
	}
	return images, nil
}

// ListGalleryImages returns the full gallery.
func (r *PostgresRepository) ListGalleryImages(ctx context.Context) ([]model.GalleryImage, error) {
	images := []model.GalleryImage{}
	query := `SELECT id, src, created_at, updated_at FROM gallery_images ORDER BY id`
	if err := r.db.SelectContext(ctx, &images, query); err != nil {
		return nil, fmt.Errorf("failed to list gallery images: %w", err)
	}
	return images, nil
}

// ListFloorPlanImages returns all floor-plan renderings.
func (r *PostgresRepository) ListFloorPlanImages(ctx context.Context) ([]model.FloorPlanImage, error) {
	images := []model.FloorPlanImage{}
	query := `SELECT id, src, created_at, updated_at FROM floor_plan_images ORDER BY id`
	if err := r.db.SelectContext(ctx, &images, query); err != nil {
		return nil, fmt.Errorf("failed to list floor plan images: %w", err)
	}
	return images, nil
}
