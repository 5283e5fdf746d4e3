package services

import (
	"log"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/pkg/rabbitmq"
)

// CartService handles business logic related to the shopping cart.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
	mqClient    *rabbitmq.Client
}

// NewCartService creates a new CartService. The RabbitMQ client may be
// nil; event publishing is then skipped.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository, mqClient *rabbitmq.Client) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		mqClient:    mqClient,
	}
}

// GetAllItems retrieves all cart items.
func (s *CartService) GetAllItems() ([]models.CartItem, error) {
	return s.cartRepo.GetAll()
}

// GetItemByID retrieves a single cart item by its ID.
func (s *CartService) GetItemByID(id string) (*models.CartItem, error) {
	return s.cartRepo.GetByID(id)
}

// AddToCart adds a product to the cart. The product must exist. When the
// cart already holds a row for the product, the quantities are merged;
// otherwise a new row is created. Quantity defaulting and validation are
// the repository's job.
func (s *CartService) AddToCart(productID string, quantity int) (*models.CartItem, error) {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return nil, err
	}

	item, err := s.cartRepo.AddOrMerge(productID, quantity)
	if err != nil {
		return nil, err
	}
	s.publish("cart.item_added", map[string]interface{}{
		"itemID":    item.ID,
		"productID": item.ProductID,
		"quantity":  item.Quantity,
	})
	return item, nil
}

// UpdateQuantity sets the quantity of an existing cart item. The new
// quantity is validated before existence is checked, so an invalid value
// never touches the store.
func (s *CartService) UpdateQuantity(itemID string, quantity int) (*models.CartItem, error) {
	if _, err := models.ValidateQuantity(quantity); err != nil {
		return nil, err
	}
	item, err := s.cartRepo.UpdateQuantity(itemID, quantity)
	if err != nil {
		return nil, err
	}
	s.publish("cart.item_updated", map[string]interface{}{
		"itemID":   item.ID,
		"quantity": item.Quantity,
	})
	return item, nil
}

// RemoveItem deletes a cart item by its ID.
func (s *CartService) RemoveItem(itemID string) error {
	if err := s.cartRepo.Delete(itemID); err != nil {
		return err
	}
	s.publish("cart.item_removed", map[string]interface{}{"itemID": itemID})
	return nil
}

func (s *CartService) publish(eventType string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishEvent(eventType, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}
