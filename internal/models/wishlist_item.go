package models

import "time"

// WishlistItem represents a product on the wishlist. At most one row may
// exist per product; a second add is rejected, never merged.
type WishlistItem struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	ProductID string    `json:"product_id" gorm:"type:varchar(36);uniqueIndex;not null" validate:"required,uuid"`
	Product   *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	CreatedAt time.Time `json:"created_at"`
}

// WishlistItemInput is the field bag accepted when adding a product to
// the wishlist.
type WishlistItemInput struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
}

// NewWishlistItem builds a wishlist item for a product.
func NewWishlistItem(productID string) *WishlistItem {
	return &WishlistItem{ProductID: productID}
}
