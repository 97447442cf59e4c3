package model

import "time"

// HouseImage is a media asset attached to at most one house. The association
// is optional and survives house deletion (FK is ON DELETE SET NULL).
type HouseImage struct {
	ID        int64     `json:"id" db:"id"`
	Src       string    `json:"src" db:"src"`
	HouseID   *int64    `json:"house_id,omitempty" db:"house_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// RoomImage belongs to the rooms carousel; not tied to a specific unit.
type RoomImage struct {
	ID        int64     `json:"id" db:"id"`
	Src       string    `json:"src" db:"src"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// GalleryImage belongs to the landing-page gallery.
type GalleryImage struct {
	ID        int64     `json:"id" db:"id"`
	Src       string    `json:"src" db:"src"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// FloorPlanImage is a floor-plan rendering.
type FloorPlanImage struct {
	ID        int64     `json:"id" db:"id"`
	Src       string    `json:"src" db:"src"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
