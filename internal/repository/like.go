package repository

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type LikeRepository interface {
	Toggle(userID, videoID string) (liked bool, likesCount int, err error)
	Exists(userID, videoID string) (bool, error)
	CountForVideo(videoID string) (int, error)
}

type likeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Toggle flips the like row for (user, video) and adjusts the video's
// likes_count in the same transaction, so racing toggles serialize at the
// store and the counter cannot drift from the rows. The decrement is guarded
// by likes_count > 0 so the counter never goes negative.
func (r *likeRepository) Toggle(userID, videoID string) (bool, int, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return false, 0, fmt.Errorf("failed to begin toggle: %w", err)
	}
	defer tx.Rollback()

	var likeID string
	err = tx.Get(&likeID, `SELECT id FROM likes WHERE user_id = $1 AND video_id = $2`, userID, videoID)

	var liked bool
	switch {
	case err == nil:
		// Like exists: remove it and decrement, floored at zero
		_, err = tx.Exec(`DELETE FROM likes WHERE id = $1`, likeID)
		if err != nil {
			return false, 0, err
		}
		_, err = tx.Exec(`UPDATE videos SET likes_count = likes_count - 1 WHERE id = $1 AND likes_count > 0`, videoID)
		if err != nil {
			return false, 0, err
		}
		liked = false

	case isNoRows(err):
		_, err = tx.Exec(`INSERT INTO likes (id, user_id, video_id, created_at) VALUES ($1, $2, $3, $4)`,
			uuid.New().String(), userID, videoID, time.Now())
		if err != nil {
			return false, 0, err
		}
		_, err = tx.Exec(`UPDATE videos SET likes_count = likes_count + 1 WHERE id = $1`, videoID)
		if err != nil {
			return false, 0, err
		}
		liked = true

	default:
		return false, 0, err
	}

	var likesCount int
	err = tx.Get(&likesCount, `SELECT likes_count FROM videos WHERE id = $1`, videoID)
	if err != nil {
		return false, 0, err
	}

	err = tx.Commit()
	if err != nil {
		return false, 0, fmt.Errorf("failed to commit toggle: %w", err)
	}

	return liked, likesCount, nil
}

func (r *likeRepository) Exists(userID, videoID string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM likes WHERE user_id = $1 AND video_id = $2`

	err := r.db.Get(&count, query, userID, videoID)
	return count > 0, err
}

func (r *likeRepository) CountForVideo(videoID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM likes WHERE video_id = $1`

	err := r.db.Get(&count, query, videoID)
	return count, err
}
