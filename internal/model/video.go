package model

import (
	"time"
)

// Video carries two denormalized counters. likes_count and comments_count
// are caches over the likes/comments tables and are maintained on every
// mutating engagement operation, never recomputed at read time.
type Video struct {
	ID            string    `db:"id"`
	Title         string    `db:"title"`
	URL           string    `db:"url"`
	Thumbnail     string    `db:"thumbnail"`
	Description   string    `db:"description"`
	LikesCount    int       `db:"likes_count"`
	CommentsCount int       `db:"comments_count"`
	CreatedAt     time.Time `db:"created_at"`
}
