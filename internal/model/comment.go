package model

import "time"

// Comment is a prospect inquiry about a unit. Deleting the house cascades to
// its comments. Seen starts false and is only ever flipped to true.
type Comment struct {
	ID        int64     `json:"id" db:"id"`
	HouseID   int64     `json:"house_id" db:"house_id"`
	Name      string    `json:"name" db:"name"`
	Phone     string    `json:"phone" db:"phone"`
	Request   string    `json:"request" db:"request"`
	Text      string    `json:"text" db:"text"`
	Date      time.Time `json:"date" db:"date"`
	Seen      bool      `json:"seen" db:"seen"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreateCommentRequest is the body of POST /api/comments. The date is supplied
// by the client and stored as-is.
type CreateCommentRequest struct {
	HouseID int64     `json:"houseId" binding:"required"`
	Name    string    `json:"name" binding:"required"`
	Phone   string    `json:"phone" binding:"required"`
	Request string    `json:"request" binding:"required"`
	Text    string    `json:"text" binding:"required"`
	Date    time.Time `json:"date" binding:"required"`
}
