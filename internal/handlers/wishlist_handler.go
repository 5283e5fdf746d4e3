package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"katalog/internal/models"
	"katalog/internal/services"
)

// WishlistHandler handles HTTP requests for the wishlist.
type WishlistHandler struct {
	service  *services.WishlistService
	validate *validator.Validate
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(service *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the wishlist routes with the Fiber app.
func (h *WishlistHandler) RegisterRoutes(router fiber.Router) {
	wishlistRoutes := router.Group("/wishlist")
	wishlistRoutes.Get("/", h.HandleGetItems)
	wishlistRoutes.Get("/:id", h.HandleGetItemByID)
	wishlistRoutes.Post("/", h.HandleAddToWishlist)
	wishlistRoutes.Delete("/:id", h.HandleRemoveItem)
}

// HandleGetItems retrieves all wishlist items.
func (h *WishlistHandler) HandleGetItems(c *fiber.Ctx) error {
	items, err := h.service.GetAllItems()
	if err != nil {
		return respondError(c, err, "Could not retrieve wishlist items")
	}
	responses := make([]WishlistItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, newWishlistItemResponse(&items[i]))
	}
	return c.JSON(responses)
}

// HandleGetItemByID retrieves a single wishlist item by its ID.
func (h *WishlistHandler) HandleGetItemByID(c *fiber.Ctx) error {
	item, err := h.service.GetItemByID(c.Params("id"))
	if err != nil {
		return respondError(c, err, "Could not retrieve wishlist item")
	}
	return c.JSON(newWishlistItemResponse(item))
}

// HandleAddToWishlist adds a product to the wishlist. A product already
// on the wishlist is rejected with a conflict.
func (h *WishlistHandler) HandleAddToWishlist(c *fiber.Ctx) error {
	var input models.WishlistItemInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing wishlist request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return respondValidationErrors(c, err)
	}

	item, err := h.service.AddToWishlist(input.ProductID)
	if err != nil {
		return respondError(c, err, "Could not add product to wishlist")
	}
	return c.Status(fiber.StatusCreated).JSON(newWishlistItemResponse(item))
}

// HandleRemoveItem deletes a wishlist item.
func (h *WishlistHandler) HandleRemoveItem(c *fiber.Ctx) error {
	if err := h.service.RemoveItem(c.Params("id")); err != nil {
		return respondError(c, err, "Could not remove wishlist item")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
