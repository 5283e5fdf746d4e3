package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"katalog/internal/models"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{
		db: db,
	}
}

// GetAll retrieves all categories from the database.
func (r *GORMCategoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Find(&categories).Error; err != nil {
		return nil, models.NewStorageError("list categories", err)
	}
	return categories, nil
}

// GetByID retrieves a single category by its ID from the database.
func (r *GORMCategoryRepository) GetByID(id string) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("category", id)
		}
		return nil, models.NewStorageError(fmt.Sprintf("get category %s", id), err)
	}
	return &category, nil
}

// Create creates a new category. Duplicate names or slugs surface as a
// conflict, not a validation failure.
func (r *GORMCategoryRepository) Create(category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(category).Error
	})
	if err != nil {
		return translateWriteError(err, "category", "category name or slug already exists", "create category")
	}
	return nil
}

// Update applies a partial update to a category, re-validating the
// touched fields before anything is written.
func (r *GORMCategoryRepository) Update(id string, update models.CategoryUpdate) (*models.Category, error) {
	var category models.Category
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&category, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("category", id)
			}
			return models.NewStorageError(fmt.Sprintf("get category %s", id), err)
		}
		if err := category.Apply(update); err != nil {
			return err
		}
		if err := tx.Save(&category).Error; err != nil {
			return translateWriteError(err, "category", "category name or slug already exists", "update category")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Delete removes a category. Its join rows to products carry no state of
// their own and are cleared inside the same transaction.
func (r *GORMCategoryRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("category", id)
			}
			return models.NewStorageError(fmt.Sprintf("get category %s", id), err)
		}
		if err := tx.Model(&category).Association("Products").Clear(); err != nil {
			return models.NewStorageError("clear product links", err)
		}
		if err := tx.Delete(&category).Error; err != nil {
			return models.NewStorageError(fmt.Sprintf("delete category %s", id), err)
		}
		return nil
	})
}
