package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"katalog/internal/models"
	"katalog/internal/services"
)

// CartHandler handles HTTP requests for the shopping cart.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetItems)
	cartRoutes.Get("/:id", h.HandleGetItemByID)
	cartRoutes.Post("/", h.HandleAddToCart)
	cartRoutes.Put("/:id", h.HandleUpdateQuantity)
	cartRoutes.Delete("/:id", h.HandleRemoveItem)
}

// HandleGetItems retrieves all cart items.
func (h *CartHandler) HandleGetItems(c *fiber.Ctx) error {
	items, err := h.service.GetAllItems()
	if err != nil {
		return respondError(c, err, "Could not retrieve cart items")
	}
	responses := make([]CartItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, newCartItemResponse(&items[i]))
	}
	return c.JSON(responses)
}

// HandleGetItemByID retrieves a single cart item by its ID.
func (h *CartHandler) HandleGetItemByID(c *fiber.Ctx) error {
	item, err := h.service.GetItemByID(c.Params("id"))
	if err != nil {
		return respondError(c, err, "Could not retrieve cart item")
	}
	return c.JSON(newCartItemResponse(item))
}

// HandleAddToCart adds a product to the cart, merging quantities when the
// product already sits in the cart.
func (h *CartHandler) HandleAddToCart(c *fiber.Ctx) error {
	var input models.CartItemInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing cart request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return respondValidationErrors(c, err)
	}

	item, err := h.service.AddToCart(input.ProductID, input.Quantity)
	if err != nil {
		return respondError(c, err, "Could not add product to cart")
	}
	return c.Status(fiber.StatusCreated).JSON(newCartItemResponse(item))
}

// UpdateQuantityRequest is the request body for a cart quantity update.
// The quantity rule itself is enforced by the service, so a zero or
// negative value comes back as a validation failure, not a parse error.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// HandleUpdateQuantity sets the quantity of an existing cart item.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	var req UpdateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing quantity update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	item, err := h.service.UpdateQuantity(c.Params("id"), req.Quantity)
	if err != nil {
		return respondError(c, err, "Could not update cart item")
	}
	return c.JSON(newCartItemResponse(item))
}

// HandleRemoveItem deletes a cart item.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	if err := h.service.RemoveItem(c.Params("id")); err != nil {
		return respondError(c, err, "Could not remove cart item")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
