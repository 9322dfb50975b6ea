package model

import (
	"time"
)

type User struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	AvatarPath   *string   `db:"avatar_path"`
	CreatedAt    time.Time `db:"created_at"`

	// Computed fields (not in database)
	AvatarURL string `db:"-"`
}
