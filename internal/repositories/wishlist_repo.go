package repositories

import (
	"katalog/internal/models"
)

// WishlistRepository defines the interface for wishlist item data access.
type WishlistRepository interface {
	GetAll() ([]models.WishlistItem, error)
	GetByID(id string) (*models.WishlistItem, error)
	GetByProductID(productID string) (*models.WishlistItem, error)
	Create(item *models.WishlistItem) error
	Delete(id string) error
}
