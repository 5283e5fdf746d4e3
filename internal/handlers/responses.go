package handlers

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"katalog/internal/models"
)

// Response projections. Each one is written by hand so that cyclic
// relationships (product -> cart item -> product ...) never appear in a
// payload: products embed category summaries only, and cart/wishlist
// items embed a product summary without its own relationships.

// CategorySummary is the category shape embedded in product responses.
type CategorySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ProductResponse is the full product shape returned by the product routes.
type ProductResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Price       float64           `json:"price"`
	Description string            `json:"description,omitempty"`
	ImageURL    string            `json:"image_url,omitempty"`
	Categories  []CategorySummary `json:"categories"`
}

// ProductSummary is the trimmed product shape embedded in cart and
// wishlist responses.
type ProductSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url,omitempty"`
}

// CartItemResponse is the cart item shape returned by the cart routes.
type CartItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Product   *ProductSummary `json:"product,omitempty"`
}

// WishlistItemResponse is the wishlist item shape returned by the
// wishlist routes.
type WishlistItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Product   *ProductSummary `json:"product,omitempty"`
}

func newCategorySummary(c models.Category) CategorySummary {
	return CategorySummary{ID: c.ID, Name: c.Name, Slug: c.Slug}
}

func newProductResponse(p *models.Product) ProductResponse {
	categories := make([]CategorySummary, 0, len(p.Categories))
	for _, c := range p.Categories {
		categories = append(categories, newCategorySummary(c))
	}
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Categories:  categories,
	}
}

func newProductSummary(p *models.Product) *ProductSummary {
	if p == nil {
		return nil
	}
	return &ProductSummary{ID: p.ID, Name: p.Name, Price: p.Price, ImageURL: p.ImageURL}
}

func newCartItemResponse(i *models.CartItem) CartItemResponse {
	return CartItemResponse{
		ID:        i.ID,
		ProductID: i.ProductID,
		Quantity:  i.Quantity,
		Product:   newProductSummary(i.Product),
	}
}

func newWishlistItemResponse(i *models.WishlistItem) WishlistItemResponse {
	return WishlistItemResponse{
		ID:        i.ID,
		ProductID: i.ProductID,
		Product:   newProductSummary(i.Product),
	}
}

// respondValidationErrors reports struct-tag validation failures on a
// request body as a field-to-message map.
func respondValidationErrors(c *fiber.Ctx, err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}

// respondError maps a domain error onto its HTTP status: validation
// failures are 400, missing entities 404, duplicates 409, and anything
// else 500.
func respondError(c *fiber.Ctx, err error, message string) error {
	status := fiber.StatusInternalServerError
	switch {
	case models.IsValidationError(err):
		status = fiber.StatusBadRequest
	case models.IsNotFoundError(err):
		status = fiber.StatusNotFound
	case models.IsConflictError(err):
		status = fiber.StatusConflict
	}
	if status == fiber.StatusInternalServerError {
		log.Printf("%s: %v", message, err)
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}
