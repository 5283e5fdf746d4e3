package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"katalog/internal/models"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// GetAll retrieves all cart items with their products from the database.
func (r *GORMCartRepository) GetAll() ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Preload("Product").Find(&items).Error; err != nil {
		return nil, models.NewStorageError("list cart items", err)
	}
	return items, nil
}

// GetByID retrieves a single cart item by its ID from the database.
func (r *GORMCartRepository) GetByID(id string) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.Preload("Product").First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("cart item", id)
		}
		return nil, models.NewStorageError(fmt.Sprintf("get cart item %s", id), err)
	}
	return &item, nil
}

// AddOrMerge adds a product to the cart, merging into the existing row
// when one exists for the product. A zero quantity defaults to 1. The
// insert is attempted first, under a savepoint: on postgres a rejected
// statement aborts the surrounding transaction, and the savepoint lets
// the merge run after the unique index on product_id turns the insert
// down. Two concurrent adds for the same product therefore cannot both
// insert; the loser merges into the winner's row instead.
func (r *GORMCartRepository) AddOrMerge(productID string, quantity int) (*models.CartItem, error) {
	item, err := models.NewCartItem(productID, quantity)
	if err != nil {
		return nil, err
	}
	item.ID = uuid.New().String()

	var result models.CartItem
	err = r.db.Transaction(func(tx *gorm.DB) error {
		insertErr := tx.Transaction(func(tx *gorm.DB) error {
			return tx.Create(item).Error
		})
		if insertErr == nil {
			result = *item
			return nil
		}
		if errors.Is(insertErr, gorm.ErrForeignKeyViolated) {
			return models.NewNotFoundError("product", productID)
		}
		if !errors.Is(insertErr, gorm.ErrDuplicatedKey) {
			return models.NewStorageError("create cart item", insertErr)
		}

		// A row for this product already exists, merge into it.
		var existing models.CartItem
		if err := tx.First(&existing, "product_id = ?", productID).Error; err != nil {
			return models.NewStorageError("get cart item by product", err)
		}
		return mergeQuantity(tx, &existing, item.Quantity, &result)
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// mergeQuantity increments an existing row's quantity, re-validating the
// resulting value before writing it.
func mergeQuantity(tx *gorm.DB, existing *models.CartItem, add int, result *models.CartItem) error {
	if err := existing.SetQuantity(existing.Quantity + add); err != nil {
		return err
	}
	if err := tx.Model(existing).Update("quantity", existing.Quantity).Error; err != nil {
		return models.NewStorageError("update cart quantity", err)
	}
	*result = *existing
	return nil
}

// UpdateQuantity sets the quantity of an existing cart item. The value is
// validated before the row is touched, so a bad quantity leaves the
// stored value unchanged.
func (r *GORMCartRepository) UpdateQuantity(id string, quantity int) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("cart item", id)
			}
			return models.NewStorageError(fmt.Sprintf("get cart item %s", id), err)
		}
		if err := item.SetQuantity(quantity); err != nil {
			return err
		}
		if err := tx.Model(&item).Update("quantity", item.Quantity).Error; err != nil {
			return models.NewStorageError("update cart quantity", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes a cart item by its ID.
func (r *GORMCartRepository) Delete(id string) error {
	res := r.db.Delete(&models.CartItem{}, "id = ?", id)
	if res.Error != nil {
		return models.NewStorageError(fmt.Sprintf("delete cart item %s", id), res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("cart item", id)
	}
	return nil
}
