package model

import "time"

// HouseState is the availability flag of a unit. The column is plain text in
// the database; any value other than StateActive is treated as inactive.
type HouseState string

const (
	StateActive   HouseState = "actif"
	StateInactive HouseState = "inactif"
)

// IsActive reports whether the state marks the unit as available.
func (s HouseState) IsActive() bool {
	return s == StateActive
}

// House represents one unit of the development
type House struct {
	ID        int64      `json:"id" db:"id"`
	Number    string     `json:"number" db:"number"`
	State     HouseState `json:"state" db:"state"`
	Type      string     `json:"type" db:"type"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// UpdateHouseStateRequest is the body of PUT /api/houses/:id
type UpdateHouseStateRequest struct {
	State string `json:"state" binding:"required"`
}
