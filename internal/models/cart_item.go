package models

import "time"

// CartItem represents a product in the shopping cart. The cart holds at
// most one row per product; adding the same product again merges into the
// existing row's quantity. The unique index on ProductID backs that
// invariant against concurrent adds.
type CartItem struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	ProductID string    `json:"product_id" gorm:"type:varchar(36);uniqueIndex;not null" validate:"required,uuid"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1;check:quantity > 0" validate:"gt=0"`
	Product   *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartItemInput is the field bag accepted when adding a product to the
// cart. Quantity defaults to 1 when omitted.
type CartItemInput struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"omitempty,gt=0"`
}

// NewCartItem validates the quantity and builds a cart item. A zero
// quantity means "not provided" and defaults to 1.
func NewCartItem(productID string, quantity int) (*CartItem, error) {
	if quantity == 0 {
		quantity = 1
	}
	quantity, err := ValidateQuantity(quantity)
	if err != nil {
		return nil, err
	}
	return &CartItem{ProductID: productID, Quantity: quantity}, nil
}

// SetQuantity re-validates and sets the quantity. A failing value leaves
// the stored quantity unchanged.
func (i *CartItem) SetQuantity(quantity int) error {
	quantity, err := ValidateQuantity(quantity)
	if err != nil {
		return err
	}
	i.Quantity = quantity
	return nil
}
