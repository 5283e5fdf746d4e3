package repositories

import (
	"katalog/internal/models"
)

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	GetByID(id string) (*models.Category, error)
	Create(category *models.Category) error
	Update(id string, update models.CategoryUpdate) (*models.Category, error)
	Delete(id string) error
}
