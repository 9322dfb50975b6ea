package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/spendview/spendview/internal/model"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
)

type CategoryRepository interface {
	Create(category *model.Category) error
	All() ([]*model.Category, error)
	ByID(id string) (*model.Category, error)
	ByName(name string) (*model.Category, error)
	Delete(id string) error
}

type categoryRepository struct {
	db *sqlx.DB
}

func NewCategoryRepository(db *sqlx.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *model.Category) error {
	query := `INSERT INTO categories (id, name, color, icon, created_at) VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(query, category.ID, category.Name, category.Color, category.Icon, category.CreatedAt)
	return err
}

func (r *categoryRepository) All() ([]*model.Category, error) {
	var categories []*model.Category
	query := `SELECT * FROM categories ORDER BY name ASC`

	err := r.db.Select(&categories, query)
	if err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *categoryRepository) ByID(id string) (*model.Category, error) {
	category := &model.Category{}
	query := `SELECT * FROM categories WHERE id = $1`

	err := r.db.Get(category, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrCategoryNotFound
	}

	return category, err
}

func (r *categoryRepository) ByName(name string) (*model.Category, error) {
	category := &model.Category{}
	query := `SELECT * FROM categories WHERE LOWER(name) = LOWER($1)`

	err := r.db.Get(category, query, name)
	if err == sql.ErrNoRows {
		return nil, ErrCategoryNotFound
	}

	return category, err
}

func (r *categoryRepository) Delete(id string) error {
	// expenses.category_id is ON DELETE SET NULL, so rows are kept
	query := `DELETE FROM categories WHERE id = $1`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrCategoryNotFound
	}

	return nil
}
