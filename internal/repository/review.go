package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/spendview/spendview/internal/model"
)

var (
	ErrReviewNotFound = errors.New("review not found")
)

type ReviewRepository interface {
	Create(review *model.Review) error
	ByUserAndVideo(userID, videoID string) (*model.Review, error)
	ForVideo(videoID string) ([]*model.Review, error)
	AverageForVideo(videoID string) (avg float64, count int, err error)
	Update(review *model.Review) error
}

type reviewRepository struct {
	db *sqlx.DB
}

func NewReviewRepository(db *sqlx.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *model.Review) error {
	query := `INSERT INTO reviews (id, user_id, video_id, rating, text, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(query,
		review.ID,
		review.UserID,
		review.VideoID,
		review.Rating,
		review.Text,
		review.CreatedAt,
		review.UpdatedAt,
	)

	return err
}

func (r *reviewRepository) ByUserAndVideo(userID, videoID string) (*model.Review, error) {
	review := &model.Review{}
	query := `SELECT * FROM reviews WHERE user_id = $1 AND video_id = $2`

	err := r.db.Get(review, query, userID, videoID)
	if err == sql.ErrNoRows {
		return nil, ErrReviewNotFound
	}

	return review, err
}

func (r *reviewRepository) ForVideo(videoID string) ([]*model.Review, error) {
	var reviews []*model.Review
	query := `SELECT * FROM reviews WHERE video_id = $1 ORDER BY created_at DESC, id DESC`

	err := r.db.Select(&reviews, query, videoID)
	if err != nil {
		return nil, err
	}

	return reviews, nil
}

func (r *reviewRepository) AverageForVideo(videoID string) (float64, int, error) {
	row := struct {
		Avg   sql.NullFloat64 `db:"avg_rating"`
		Count int             `db:"review_count"`
	}{}
	query := `SELECT AVG(rating) AS avg_rating, COUNT(*) AS review_count FROM reviews WHERE video_id = $1`

	err := r.db.Get(&row, query, videoID)
	if err != nil {
		return 0, 0, err
	}

	return row.Avg.Float64, row.Count, nil
}

// Update overwrites rating, text and updated_at in place. Creation time is
// preserved so "reviewed since" stays meaningful after edits.
func (r *reviewRepository) Update(review *model.Review) error {
	query := `UPDATE reviews SET rating = $1, text = $2, updated_at = $3 WHERE id = $4`

	result, err := r.db.Exec(query, review.Rating, review.Text, review.UpdatedAt, review.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrReviewNotFound
	}

	return nil
}
