package services

import (
	"log"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/pkg/rabbitmq"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo     repositories.ProductRepository
	mqClient *rabbitmq.Client
}

// NewProductService creates a new ProductService. The RabbitMQ client may
// be nil; event publishing is then skipped.
func NewProductService(repo repositories.ProductRepository, mqClient *rabbitmq.Client) *ProductService {
	return &ProductService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct validates the input, persists the product, and publishes
// a catalog.product_created event.
func (s *ProductService) CreateProduct(in models.ProductInput) (*models.Product, error) {
	product, err := models.NewProduct(in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	s.publish("catalog.product_created", map[string]interface{}{
		"productID": product.ID,
		"name":      product.Name,
		"price":     product.Price,
	})
	return product, nil
}

// UpdateProduct applies a partial update to an existing product.
func (s *ProductService) UpdateProduct(id string, update models.ProductUpdate) (*models.Product, error) {
	return s.repo.Update(id, update)
}

// DeleteProduct deletes a product. Deletion is refused while cart or
// wishlist rows still reference it.
func (s *ProductService) DeleteProduct(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publish("catalog.product_deleted", map[string]interface{}{"productID": id})
	return nil
}

// LinkCategories associates a product with a set of categories,
// all-or-nothing. Linking an already linked category is a no-op.
func (s *ProductService) LinkCategories(productID string, categoryIDs []string) (*models.Product, error) {
	return s.repo.LinkCategories(productID, categoryIDs)
}

// publish sends a catalog event on a best-effort basis. Publish failures
// are logged, never surfaced; the write already committed.
func (s *ProductService) publish(eventType string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishEvent(eventType, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}
