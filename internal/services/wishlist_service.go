package services

import (
	"log"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/pkg/rabbitmq"
)

// WishlistService handles business logic related to the wishlist.
type WishlistService struct {
	wishlistRepo repositories.WishlistRepository
	productRepo  repositories.ProductRepository
	mqClient     *rabbitmq.Client
}

// NewWishlistService creates a new WishlistService. The RabbitMQ client
// may be nil; event publishing is then skipped.
func NewWishlistService(wishlistRepo repositories.WishlistRepository, productRepo repositories.ProductRepository, mqClient *rabbitmq.Client) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
		mqClient:     mqClient,
	}
}

// GetAllItems retrieves all wishlist items.
func (s *WishlistService) GetAllItems() ([]models.WishlistItem, error) {
	return s.wishlistRepo.GetAll()
}

// GetItemByID retrieves a single wishlist item by its ID.
func (s *WishlistService) GetItemByID(id string) (*models.WishlistItem, error) {
	return s.wishlistRepo.GetByID(id)
}

// AddToWishlist adds a product to the wishlist. The product must exist,
// and a product already on the wishlist is rejected, never merged. The
// check here is backed by the unique index on product_id, so a concurrent
// duplicate add also surfaces as a conflict.
func (s *WishlistService) AddToWishlist(productID string) (*models.WishlistItem, error) {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return nil, err
	}
	if _, err := s.wishlistRepo.GetByProductID(productID); err == nil {
		return nil, models.NewConflictError("wishlist item", "product already in wishlist")
	} else if !models.IsNotFoundError(err) {
		return nil, err
	}

	item := models.NewWishlistItem(productID)
	if err := s.wishlistRepo.Create(item); err != nil {
		return nil, err
	}
	s.publish("wishlist.item_added", map[string]interface{}{
		"itemID":    item.ID,
		"productID": item.ProductID,
	})
	return item, nil
}

// RemoveItem deletes a wishlist item by its ID.
func (s *WishlistService) RemoveItem(itemID string) error {
	if err := s.wishlistRepo.Delete(itemID); err != nil {
		return err
	}
	s.publish("wishlist.item_removed", map[string]interface{}{"itemID": itemID})
	return nil
}

func (s *WishlistService) publish(eventType string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishEvent(eventType, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}
