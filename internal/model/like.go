package model

import (
	"time"
)

// Like is unique per (user, video). Repeated like actions toggle the row's
// existence rather than accumulating.
type Like struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	VideoID   string    `db:"video_id"`
	CreatedAt time.Time `db:"created_at"`
}
