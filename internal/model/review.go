package model

import (
	"time"
)

// Review is unique per (user, video): a second review by the same user
// updates the first in place.
type Review struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	VideoID   string    `db:"video_id"`
	Rating    int       `db:"rating"`
	Text      string    `db:"text"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
