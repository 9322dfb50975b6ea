package model

import (
	"time"
)

type Comment struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	VideoID   string    `db:"video_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	// Denormalized author fields for display (joined from users)
	AuthorUsername   string  `db:"author_username"`
	AuthorAvatarPath *string `db:"author_avatar_path"`
	AuthorAvatarURL  string  `db:"-"`
}
