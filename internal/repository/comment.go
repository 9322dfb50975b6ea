package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/spendview/spendview/internal/model"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
)

type CommentRepository interface {
	Create(comment *model.Comment) error
	ByID(id string) (*model.Comment, error)
	ForVideo(videoID string) ([]*model.Comment, error)
	Update(comment *model.Comment) error
	Delete(id string) error
	RecountForVideo(videoID string) (int, error)
}

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *model.Comment) error {
	query := `INSERT INTO comments (id, user_id, video_id, content, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query,
		comment.ID,
		comment.UserID,
		comment.VideoID,
		comment.Content,
		comment.CreatedAt,
		comment.UpdatedAt,
	)

	return err
}

func (r *commentRepository) ByID(id string) (*model.Comment, error) {
	comment := &model.Comment{}
	query := `SELECT c.*, u.username AS author_username, u.avatar_path AS author_avatar_path
	          FROM comments c JOIN users u ON u.id = c.user_id
	          WHERE c.id = $1`

	err := r.db.Get(comment, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrCommentNotFound
	}

	return comment, err
}

// ForVideo lists a video's comments newest first. This is the one ordering
// contract the API exposes.
func (r *commentRepository) ForVideo(videoID string) ([]*model.Comment, error) {
	var comments []*model.Comment
	query := `SELECT c.*, u.username AS author_username, u.avatar_path AS author_avatar_path
	          FROM comments c JOIN users u ON u.id = c.user_id
	          WHERE c.video_id = $1
	          ORDER BY c.created_at DESC, c.id DESC`

	err := r.db.Select(&comments, query, videoID)
	if err != nil {
		return nil, err
	}

	return comments, nil
}

func (r *commentRepository) Update(comment *model.Comment) error {
	query := `UPDATE comments SET content = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.Exec(query, comment.Content, comment.UpdatedAt, comment.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrCommentNotFound
	}

	return nil
}

func (r *commentRepository) Delete(id string) error {
	query := `DELETE FROM comments WHERE id = $1`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrCommentNotFound
	}

	return nil
}

// RecountForVideo rewrites the video's comments_count from the live rows
// and returns the new value. An authoritative recount is immune to drift,
// unlike increment/decrement bookkeeping.
func (r *commentRepository) RecountForVideo(videoID string) (int, error) {
	query := `UPDATE videos
	          SET comments_count = (SELECT COUNT(*) FROM comments WHERE video_id = $1)
	          WHERE id = $1`

	_, err := r.db.Exec(query, videoID)
	if err != nil {
		return 0, err
	}

	var count int
	err = r.db.Get(&count, `SELECT comments_count FROM videos WHERE id = $1`, videoID)
	return count, err
}
