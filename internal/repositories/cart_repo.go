package repositories

import (
	"katalog/internal/models"
)

// CartRepository defines the interface for cart item data access.
type CartRepository interface {
	GetAll() ([]models.CartItem, error)
	GetByID(id string) (*models.CartItem, error)
	// AddOrMerge inserts a cart item for the product, or increments the
	// quantity of the existing row for that product. A zero quantity
	// defaults to 1; validation lives here, not in the callers. The
	// whole operation runs in one transaction.
	AddOrMerge(productID string, quantity int) (*models.CartItem, error)
	UpdateQuantity(id string, quantity int) (*models.CartItem, error)
	Delete(id string) error
}
