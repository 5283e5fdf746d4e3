package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"katalog/internal/handlers"
	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/services"
)

// setupApp sets up a Fiber app for testing with in-memory SQLite and all
// handlers/services wired against it.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	assert.NoError(t, err)

	err = db.AutoMigrate(
		&models.Product{},
		&models.Category{},
		&models.CartItem{},
		&models.WishlistItem{},
	)
	assert.NoError(t, err)

	// Initialize Repositories
	productRepo := repositories.NewGORMProductRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)
	wishlistRepo := repositories.NewGORMWishlistRepository(db)

	// Initialize Services (nil RabbitMQ client: no events in tests)
	productService := services.NewProductService(productRepo, nil)
	categoryService := services.NewCategoryService(categoryRepo)
	cartService := services.NewCartService(cartRepo, productRepo, nil)
	wishlistService := services.NewWishlistService(wishlistRepo, productRepo, nil)

	app := fiber.New()
	apiV1 := app.Group("/api/v1")
	handlers.NewProductHandler(productService).RegisterRoutes(apiV1)
	handlers.NewCategoryHandler(categoryService).RegisterRoutes(apiV1)
	handlers.NewCartHandler(cartService).RegisterRoutes(apiV1)
	handlers.NewWishlistHandler(wishlistService).RegisterRoutes(apiV1)

	return app
}

// TestMain runs setup and teardown for all tests
func TestMain(m *testing.M) {
	// Suppress logging during tests for cleaner output
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1) // -1 for no timeout
	assert.NoError(t, err)

	var payload map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	if len(raw) > 0 && raw[0] == '{' {
		assert.NoError(t, json.Unmarshal(raw, &payload))
	}
	return resp, payload
}

func createTestProduct(t *testing.T, app *fiber.App, name string) string {
	t.Helper()
	resp, payload := doJSON(t, app, http.MethodPost, "/api/v1/products", map[string]interface{}{
		"name":      name,
		"price":     99.99,
		"image_url": "https://example.com/p.jpg",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	return payload["id"].(string)
}

func TestProductCRUD(t *testing.T) {
	app := setupApp(t)

	// Create
	resp, payload := doJSON(t, app, http.MethodPost, "/api/v1/products", map[string]interface{}{
		"name":        "Test Laptop",
		"price":       1000.00,
		"description": "For testing purposes",
		"image_url":   "https://example.com/laptop.jpg",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	productID := payload["id"].(string)
	assert.Equal(t, "https://example.com/laptop.jpg", payload["image_url"])

	// Read back: identical URL, categories present as an empty list.
	resp, payload = doJSON(t, app, http.MethodGet, "/api/v1/products/"+productID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "https://example.com/laptop.jpg", payload["image_url"])

	// Partial update touches only the named field.
	resp, payload = doJSON(t, app, http.MethodPut, "/api/v1/products/"+productID, map[string]interface{}{
		"price": 899.99,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 899.99, payload["price"])
	assert.Equal(t, "Test Laptop", payload["name"])

	// Invalid price is a 400 and does not change the stored value.
	resp, _ = doJSON(t, app, http.MethodPut, "/api/v1/products/"+productID, map[string]interface{}{
		"price": -5,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp, payload = doJSON(t, app, http.MethodGet, "/api/v1/products/"+productID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 899.99, payload["price"])

	// Delete
	resp, _ = doJSON(t, app, http.MethodDelete, "/api/v1/products/"+productID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodGet, "/api/v1/products/"+productID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProductCreateValidation(t *testing.T) {
	app := setupApp(t)

	// Missing price fails struct validation.
	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/products", map[string]interface{}{
		"name": "No Price",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Bad image URL scheme fails the domain rule.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/products", map[string]interface{}{
		"name":      "Bad URL",
		"price":     10.0,
		"image_url": "ftp://example.com/x.jpg",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// No product was created by either request.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	res, err := app.Test(req, -1)
	assert.NoError(t, err)
	var list []map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&list))
	assert.Empty(t, list)
}

func TestCategoryUniqueness(t *testing.T) {
	app := setupApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/categories", map[string]interface{}{
		"name": "Gaming", "slug": "gaming",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// Same slug again is a conflict, not a validation failure.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/categories", map[string]interface{}{
		"name": "Gaming Gear", "slug": "gaming",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// A malformed slug is a validation failure.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/categories", map[string]interface{}{
		"name": "Weird", "slug": "Not A Slug!",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLinkCategoriesAllOrNothing(t *testing.T) {
	app := setupApp(t)

	productID := createTestProduct(t, app, "Linkable")
	resp, payload := doJSON(t, app, http.MethodPost, "/api/v1/categories", map[string]interface{}{
		"name": "Audio", "slug": "audio",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	categoryID := payload["id"].(string)

	// Linking with one unknown ID fails entirely.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/products/"+productID+"/categories", map[string]interface{}{
		"category_ids": []string{categoryID, "11111111-2222-3333-4444-555555555555"},
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, payload = doJSON(t, app, http.MethodGet, "/api/v1/products/"+productID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, payload["categories"])

	// Linking with valid IDs succeeds.
	resp, payload = doJSON(t, app, http.MethodPost, "/api/v1/products/"+productID+"/categories", map[string]interface{}{
		"category_ids": []string{categoryID},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, payload["categories"], 1)
}

func TestCartFlow(t *testing.T) {
	app := setupApp(t)
	productID := createTestProduct(t, app, "Cartable")

	// Add twice: one row, merged quantity.
	resp, payload := doJSON(t, app, http.MethodPost, "/api/v1/cart", map[string]interface{}{
		"product_id": productID, "quantity": 2,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	itemID := payload["id"].(string)

	resp, payload = doJSON(t, app, http.MethodPost, "/api/v1/cart", map[string]interface{}{
		"product_id": productID, "quantity": 3,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, itemID, payload["id"])
	assert.Equal(t, float64(5), payload["quantity"])

	// Embedded product summary, no back-references.
	product := payload["product"].(map[string]interface{})
	assert.Equal(t, "Cartable", product["name"])
	assert.NotContains(t, product, "categories")

	// Zero quantity is rejected and leaves the row unchanged.
	resp, _ = doJSON(t, app, http.MethodPut, "/api/v1/cart/"+itemID, map[string]interface{}{
		"quantity": 0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp, payload = doJSON(t, app, http.MethodGet, "/api/v1/cart/"+itemID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(5), payload["quantity"])

	// Product cannot be deleted while the cart references it.
	resp, _ = doJSON(t, app, http.MethodDelete, "/api/v1/products/"+productID, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Remove the item, then the product delete goes through.
	resp, _ = doJSON(t, app, http.MethodDelete, "/api/v1/cart/"+itemID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodDelete, "/api/v1/products/"+productID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestCartUnknownProduct(t *testing.T) {
	app := setupApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/cart", map[string]interface{}{
		"product_id": "11111111-2222-3333-4444-555555555555", "quantity": 1,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestWishlistFlow(t *testing.T) {
	app := setupApp(t)
	productID := createTestProduct(t, app, "Wishable")

	resp, payload := doJSON(t, app, http.MethodPost, "/api/v1/wishlist", map[string]interface{}{
		"product_id": productID,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	itemID := payload["id"].(string)

	// A second add is a conflict, and no second row appears.
	resp, payload = doJSON(t, app, http.MethodPost, "/api/v1/wishlist", map[string]interface{}{
		"product_id": productID,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, payload["error"], "already in wishlist")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/wishlist", nil)
	res, err := app.Test(req, -1)
	assert.NoError(t, err)
	var list []map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&list))
	assert.Len(t, list, 1)

	resp, _ = doJSON(t, app, http.MethodDelete, "/api/v1/wishlist/"+itemID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodDelete, "/api/v1/wishlist/"+itemID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
