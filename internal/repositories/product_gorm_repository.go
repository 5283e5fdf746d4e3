package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"katalog/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all products with their categories from the database.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Preload("Categories").Find(&products).Error; err != nil {
		return nil, models.NewStorageError("list products", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Categories").First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("product", id)
		}
		return nil, models.NewStorageError(fmt.Sprintf("get product %s", id), err)
	}
	return &product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(product).Error
	})
	if err != nil {
		return translateWriteError(err, "product", "product already exists", "create product")
	}
	return nil
}

// Update applies a partial update to a product. The touched fields are
// re-validated before anything is written; a validation failure rolls the
// transaction back and leaves the stored row unchanged.
func (r *GORMProductRepository) Update(id string, update models.ProductUpdate) (*models.Product, error) {
	var product models.Product
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Categories").First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("product", id)
			}
			return models.NewStorageError(fmt.Sprintf("get product %s", id), err)
		}
		if err := product.Apply(update); err != nil {
			return err
		}
		// Omit associations so Save only writes the product columns.
		if err := tx.Omit(clause.Associations).Save(&product).Error; err != nil {
			return translateWriteError(err, "product", "product already exists", "update product")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Delete removes a product. Deletion is refused while cart or wishlist
// rows still reference the product; the pure join rows to categories are
// cleared inside the same transaction.
func (r *GORMProductRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("product", id)
			}
			return models.NewStorageError(fmt.Sprintf("get product %s", id), err)
		}

		var cartRefs int64
		if err := tx.Model(&models.CartItem{}).Where("product_id = ?", id).Count(&cartRefs).Error; err != nil {
			return models.NewStorageError("count cart references", err)
		}
		if cartRefs > 0 {
			return models.NewConflictError("product", "product is referenced by cart items")
		}

		var wishlistRefs int64
		if err := tx.Model(&models.WishlistItem{}).Where("product_id = ?", id).Count(&wishlistRefs).Error; err != nil {
			return models.NewStorageError("count wishlist references", err)
		}
		if wishlistRefs > 0 {
			return models.NewConflictError("product", "product is referenced by wishlist items")
		}

		if err := tx.Model(&product).Association("Categories").Clear(); err != nil {
			return models.NewStorageError("clear category links", err)
		}
		if err := tx.Delete(&product).Error; err != nil {
			return models.NewStorageError(fmt.Sprintf("delete product %s", id), err)
		}
		return nil
	})
}

// LinkCategories associates a product with a set of categories. Unknown
// category IDs abort the whole operation; linking an already linked
// category is a no-op, so re-linking is idempotent.
func (r *GORMProductRepository) LinkCategories(productID string, categoryIDs []string) (*models.Product, error) {
	var product models.Product
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("product", productID)
			}
			return models.NewStorageError(fmt.Sprintf("get product %s", productID), err)
		}

		var categories []models.Category
		if err := tx.Where("id IN ?", categoryIDs).Find(&categories).Error; err != nil {
			return models.NewStorageError("get categories", err)
		}
		if missing := missingIDs(categoryIDs, categories); missing != "" {
			return models.NewNotFoundError("category", missing)
		}

		if err := tx.Model(&product).Association("Categories").Append(&categories); err != nil {
			return models.NewStorageError("link categories", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(productID)
}

// missingIDs returns the first requested ID absent from the fetched
// categories, or "" when all were found.
func missingIDs(requested []string, found []models.Category) string {
	existing := make(map[string]bool, len(found))
	for _, c := range found {
		existing[c.ID] = true
	}
	for _, id := range requested {
		if !existing[id] {
			return id
		}
	}
	return ""
}
