package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/spendview/spendview/internal/model"
)

var (
	ErrVideoNotFound = errors.New("video not found")
)

type VideoRepository interface {
	Create(video *model.Video) error
	All() ([]*model.Video, error)
	ByID(id string) (*model.Video, error)
}

type videoRepository struct {
	db *sqlx.DB
}

func NewVideoRepository(db *sqlx.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(video *model.Video) error {
	query := `INSERT INTO videos (id, title, url, thumbnail, description, likes_count, comments_count, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(query,
		video.ID,
		video.Title,
		video.URL,
		video.Thumbnail,
		video.Description,
		video.LikesCount,
		video.CommentsCount,
		video.CreatedAt,
	)

	return err
}

func (r *videoRepository) All() ([]*model.Video, error) {
	var videos []*model.Video
	query := `SELECT * FROM videos ORDER BY created_at DESC, id DESC`

	err := r.db.Select(&videos, query)
	if err != nil {
		return nil, err
	}

	return videos, nil
}

func (r *videoRepository) ByID(id string) (*model.Video, error) {
	video := &model.Video{}
	query := `SELECT * FROM videos WHERE id = $1`

	err := r.db.Get(video, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrVideoNotFound
	}

	return video, err
}
