package repositories

import (
	"sync"

	"github.com/google/uuid"

	"katalog/internal/models"
)

// MockCartRepository is an in-memory implementation of CartRepository.
// It keeps the one-row-per-product invariant the GORM implementation
// enforces through its unique index.
type MockCartRepository struct {
	items map[string]models.CartItem
	mu    sync.Mutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		items: make(map[string]models.CartItem),
	}
}

// GetAll returns all cart items.
func (r *MockCartRepository) GetAll() ([]models.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	itemList := make([]models.CartItem, 0, len(r.items))
	for _, item := range r.items {
		itemList = append(itemList, item)
	}
	return itemList, nil
}

// GetByID returns a cart item by its ID.
func (r *MockCartRepository) GetByID(id string) (*models.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil, models.NewNotFoundError("cart item", id)
	}
	return &item, nil
}

// AddOrMerge adds a product to the cart or increments the existing row.
// A zero quantity defaults to 1, as in the GORM implementation.
func (r *MockCartRepository) AddOrMerge(productID string, quantity int) (*models.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, err := models.NewCartItem(productID, quantity)
	if err != nil {
		return nil, err
	}
	for id, existing := range r.items {
		if existing.ProductID == productID {
			if err := existing.SetQuantity(existing.Quantity + item.Quantity); err != nil {
				return nil, err
			}
			r.items[id] = existing
			return &existing, nil
		}
	}

	item.ID = uuid.New().String()
	r.items[item.ID] = *item
	return item, nil
}

// UpdateQuantity sets the quantity of an existing cart item.
func (r *MockCartRepository) UpdateQuantity(id string, quantity int) (*models.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil, models.NewNotFoundError("cart item", id)
	}
	if err := item.SetQuantity(quantity); err != nil {
		return nil, err
	}
	r.items[id] = item
	return &item, nil
}

// Delete removes a cart item by its ID.
func (r *MockCartRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return models.NewNotFoundError("cart item", id)
	}
	delete(r.items, id)
	return nil
}
