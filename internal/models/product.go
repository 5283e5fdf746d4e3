package models

import "time"

// Product represents a catalog product.
type Product struct {
	ID          string     `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string     `json:"name" gorm:"type:varchar(100);not null" validate:"required,max=100"`
	Price       float64    `json:"price" gorm:"not null;check:price > 0" validate:"required,gt=0"`
	Description string     `json:"description,omitempty" gorm:"type:text"`
	ImageURL    string     `json:"image_url,omitempty" gorm:"type:varchar(255)" validate:"omitempty,max=255"`
	Categories  []Category `json:"categories,omitempty" gorm:"many2many:product_categories"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ProductInput is the field bag accepted when creating a product.
type ProductInput struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url" validate:"omitempty,max=255"`
}

// ProductUpdate is the allow-listed partial update for a product.
// Nil fields are left untouched; present fields are re-validated with the
// same rules as construction.
type ProductUpdate struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"image_url"`
}

// NewProduct validates the input and builds a product. Construction is
// atomic: on any rule failure no product is returned.
func NewProduct(in ProductInput) (*Product, error) {
	name, err := ValidateProductName(in.Name)
	if err != nil {
		return nil, err
	}
	price, err := ValidateProductPrice(in.Price)
	if err != nil {
		return nil, err
	}
	imageURL, err := ValidateImageURL(in.ImageURL)
	if err != nil {
		return nil, err
	}
	return &Product{
		Name:        name,
		Price:       price,
		Description: in.Description,
		ImageURL:    imageURL,
	}, nil
}

// Apply validates every touched field of the update before assigning any
// of them, so a failing update leaves the product unchanged.
func (p *Product) Apply(update ProductUpdate) error {
	if update.Name != nil {
		if _, err := ValidateProductName(*update.Name); err != nil {
			return err
		}
	}
	if update.Price != nil {
		if _, err := ValidateProductPrice(*update.Price); err != nil {
			return err
		}
	}
	if update.ImageURL != nil {
		if _, err := ValidateImageURL(*update.ImageURL); err != nil {
			return err
		}
	}

	if update.Name != nil {
		p.Name = *update.Name
	}
	if update.Price != nil {
		p.Price = *update.Price
	}
	if update.Description != nil {
		p.Description = *update.Description
	}
	if update.ImageURL != nil {
		p.ImageURL = *update.ImageURL
	}
	return nil
}
