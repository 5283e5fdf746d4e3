package repositories

import (
	"katalog/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(id string, update models.ProductUpdate) (*models.Product, error)
	Delete(id string) error
	LinkCategories(productID string, categoryIDs []string) (*models.Product, error)
}
