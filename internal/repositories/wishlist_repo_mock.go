package repositories

import (
	"sync"

	"github.com/google/uuid"

	"katalog/internal/models"
)

// MockWishlistRepository is an in-memory implementation of WishlistRepository.
type MockWishlistRepository struct {
	items map[string]models.WishlistItem
	mu    sync.RWMutex
}

// NewMockWishlistRepository creates a new instance of MockWishlistRepository.
func NewMockWishlistRepository() *MockWishlistRepository {
	return &MockWishlistRepository{
		items: make(map[string]models.WishlistItem),
	}
}

// GetAll returns all wishlist items.
func (r *MockWishlistRepository) GetAll() ([]models.WishlistItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	itemList := make([]models.WishlistItem, 0, len(r.items))
	for _, item := range r.items {
		itemList = append(itemList, item)
	}
	return itemList, nil
}

// GetByID returns a wishlist item by its ID.
func (r *MockWishlistRepository) GetByID(id string) (*models.WishlistItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, models.NewNotFoundError("wishlist item", id)
	}
	return &item, nil
}

// GetByProductID returns the wishlist item referencing a product, if any.
func (r *MockWishlistRepository) GetByProductID(productID string) (*models.WishlistItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.ProductID == productID {
			found := item
			return &found, nil
		}
	}
	return nil, models.NewNotFoundError("wishlist item", productID)
}

// Create adds a new wishlist item, rejecting a duplicate product.
func (r *MockWishlistRepository) Create(item *models.WishlistItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.ProductID == item.ProductID {
			return models.NewConflictError("wishlist item", "product already in wishlist")
		}
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	r.items[item.ID] = *item
	return nil
}

// Delete removes a wishlist item by its ID.
func (r *MockWishlistRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return models.NewNotFoundError("wishlist item", id)
	}
	delete(r.items, id)
	return nil
}
