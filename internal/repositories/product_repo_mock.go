package repositories

import (
	"sync"

	"github.com/google/uuid"

	"katalog/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// GetAll returns all products.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, models.NewNotFoundError("product", id)
	}
	return &product, nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.products[product.ID] = *product
	return nil
}

// Update applies a partial update to an existing product.
func (r *MockProductRepository) Update(id string, update models.ProductUpdate) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil, models.NewNotFoundError("product", id)
	}
	if err := product.Apply(update); err != nil {
		return nil, err
	}
	r.products[id] = product
	return &product, nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return models.NewNotFoundError("product", id)
	}
	delete(r.products, id)
	return nil
}

// LinkCategories appends the requested IDs as bare categories. The mock
// has no category store, so unknown IDs are not detectable here.
func (r *MockProductRepository) LinkCategories(productID string, categoryIDs []string) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[productID]
	if !ok {
		return nil, models.NewNotFoundError("product", productID)
	}
	existing := make(map[string]bool, len(product.Categories))
	for _, c := range product.Categories {
		existing[c.ID] = true
	}
	for _, id := range categoryIDs {
		if !existing[id] {
			product.Categories = append(product.Categories, models.Category{ID: id})
		}
	}
	r.products[productID] = product
	return &product, nil
}
