package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"katalog/internal/models"
)

// GORMWishlistRepository is a GORM implementation of WishlistRepository.
type GORMWishlistRepository struct {
	db *gorm.DB
}

// NewGORMWishlistRepository creates a new instance of GORMWishlistRepository.
func NewGORMWishlistRepository(db *gorm.DB) *GORMWishlistRepository {
	return &GORMWishlistRepository{
		db: db,
	}
}

// GetAll retrieves all wishlist items with their products from the database.
func (r *GORMWishlistRepository) GetAll() ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if err := r.db.Preload("Product").Find(&items).Error; err != nil {
		return nil, models.NewStorageError("list wishlist items", err)
	}
	return items, nil
}

// GetByID retrieves a single wishlist item by its ID from the database.
func (r *GORMWishlistRepository) GetByID(id string) (*models.WishlistItem, error) {
	var item models.WishlistItem
	if err := r.db.Preload("Product").First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("wishlist item", id)
		}
		return nil, models.NewStorageError(fmt.Sprintf("get wishlist item %s", id), err)
	}
	return &item, nil
}

// GetByProductID retrieves the wishlist item referencing a product, if any.
func (r *GORMWishlistRepository) GetByProductID(productID string) (*models.WishlistItem, error) {
	var item models.WishlistItem
	if err := r.db.First(&item, "product_id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("wishlist item", productID)
		}
		return nil, models.NewStorageError("get wishlist item by product", err)
	}
	return &item, nil
}

// Create adds a wishlist item. The unique index on product_id rejects a
// concurrent duplicate, which surfaces as a conflict.
func (r *GORMWishlistRepository) Create(item *models.WishlistItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(item).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return models.NewNotFoundError("product", item.ProductID)
		}
		return translateWriteError(err, "wishlist item", "product already in wishlist", "create wishlist item")
	}
	return nil
}

// Delete removes a wishlist item by its ID.
func (r *GORMWishlistRepository) Delete(id string) error {
	res := r.db.Delete(&models.WishlistItem{}, "id = ?", id)
	if res.Error != nil {
		return models.NewStorageError(fmt.Sprintf("delete wishlist item %s", id), res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("wishlist item", id)
	}
	return nil
}
