package models

import "time"

// Category represents a product category. Name and slug are unique
// across the table; the link to products is a pure join table.
type Category struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name      string    `json:"name" gorm:"type:varchar(50);uniqueIndex;not null" validate:"required,max=50"`
	Slug      string    `json:"slug" gorm:"type:varchar(50);uniqueIndex;not null" validate:"required,max=50"`
	Products  []Product `json:"products,omitempty" gorm:"many2many:product_categories"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryInput is the field bag accepted when creating a category.
type CategoryInput struct {
	Name string `json:"name" validate:"required,max=50"`
	Slug string `json:"slug" validate:"required,max=50"`
}

// CategoryUpdate is the allow-listed partial update for a category.
type CategoryUpdate struct {
	Name *string `json:"name"`
	Slug *string `json:"slug"`
}

// NewCategory validates the input and builds a category.
func NewCategory(in CategoryInput) (*Category, error) {
	name, err := ValidateCategoryName(in.Name)
	if err != nil {
		return nil, err
	}
	slug, err := ValidateCategorySlug(NormalizeSlug(in.Slug))
	if err != nil {
		return nil, err
	}
	return &Category{Name: name, Slug: slug}, nil
}

// Apply validates the touched fields before assigning any of them.
func (c *Category) Apply(update CategoryUpdate) error {
	var slug string
	if update.Name != nil {
		if _, err := ValidateCategoryName(*update.Name); err != nil {
			return err
		}
	}
	if update.Slug != nil {
		var err error
		if slug, err = ValidateCategorySlug(NormalizeSlug(*update.Slug)); err != nil {
			return err
		}
	}

	if update.Name != nil {
		c.Name = *update.Name
	}
	if update.Slug != nil {
		c.Slug = slug
	}
	return nil
}
