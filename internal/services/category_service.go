package services

import (
	"katalog/internal/models"
	"katalog/internal/repositories"
)

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{
		repo: repo,
	}
}

// GetAllCategories retrieves all categories.
func (s *CategoryService) GetAllCategories() ([]models.Category, error) {
	return s.repo.GetAll()
}

// GetCategoryByID retrieves a single category by its ID.
func (s *CategoryService) GetCategoryByID(id string) (*models.Category, error) {
	return s.repo.GetByID(id)
}

// CreateCategory validates the input and persists the category. A
// duplicate name or slug surfaces as a conflict from the repository.
func (s *CategoryService) CreateCategory(in models.CategoryInput) (*models.Category, error) {
	category, err := models.NewCategory(in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory applies a partial update to an existing category.
func (s *CategoryService) UpdateCategory(id string, update models.CategoryUpdate) (*models.Category, error) {
	return s.repo.Update(id, update)
}

// DeleteCategory deletes a category, detaching its product links.
func (s *CategoryService) DeleteCategory(id string) error {
	return s.repo.Delete(id)
}
