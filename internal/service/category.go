package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/spendview/spendview/internal/model"
	"github.com/spendview/spendview/internal/repository"
)

type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) All() ([]*model.Category, error) {
	return s.categoryRepo.All()
}

func (s *CategoryService) Create(name, color, icon string) (*model.Category, error) {
	category := &model.Category{
		ID:        uuid.New().String(),
		Name:      name,
		Color:     color,
		Icon:      icon,
		CreatedAt: time.Now(),
	}

	err := s.categoryRepo.Create(category)
	if err != nil {
		return nil, err
	}

	return category, nil
}

// Delete removes a category. Expenses referencing it keep their rows with
// category_id nulled by the schema, never a cascading delete.
func (s *CategoryService) Delete(id string) error {
	return s.categoryRepo.Delete(id)
}
