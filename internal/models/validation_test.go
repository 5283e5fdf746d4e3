package models_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"katalog/internal/models"
)

func TestValidateProductName(t *testing.T) {
	name, err := models.ValidateProductName("Laptop")
	assert.NoError(t, err)
	assert.Equal(t, "Laptop", name)

	_, err = models.ValidateProductName("")
	assert.Error(t, err)
	assert.True(t, models.IsValidationError(err))

	_, err = models.ValidateProductName(strings.Repeat("x", 101))
	assert.Error(t, err)

	// Exactly at the boundary is still valid.
	_, err = models.ValidateProductName(strings.Repeat("x", 100))
	assert.NoError(t, err)
}

func TestValidateLengthCountsCharactersNotBytes(t *testing.T) {
	// 60 accented characters encode to 120 bytes but are well within
	// the 100-character limit.
	name, err := models.ValidateProductName(strings.Repeat("é", 60))
	assert.NoError(t, err)
	assert.Equal(t, strings.Repeat("é", 60), name)

	_, err = models.ValidateProductName(strings.Repeat("é", 100))
	assert.NoError(t, err)

	_, err = models.ValidateProductName(strings.Repeat("é", 101))
	assert.True(t, models.IsValidationError(err))

	_, err = models.ValidateCategoryName(strings.Repeat("ü", 50))
	assert.NoError(t, err)

	_, err = models.ValidateCategoryName(strings.Repeat("ü", 51))
	assert.True(t, models.IsValidationError(err))

	_, err = models.ValidateImageURL("https://example.com/" + strings.Repeat("ß", 235))
	assert.NoError(t, err)
}

func TestValidateProductPrice(t *testing.T) {
	price, err := models.ValidateProductPrice(19.99)
	assert.NoError(t, err)
	assert.Equal(t, 19.99, price)

	_, err = models.ValidateProductPrice(0)
	assert.True(t, models.IsValidationError(err))

	_, err = models.ValidateProductPrice(-5)
	assert.True(t, models.IsValidationError(err))
}

func TestValidateImageURL(t *testing.T) {
	// Absent is valid.
	url, err := models.ValidateImageURL("")
	assert.NoError(t, err)
	assert.Equal(t, "", url)

	url, err = models.ValidateImageURL("https://example.com/img.jpg")
	assert.NoError(t, err)
	assert.Equal(t, "https://example.com/img.jpg", url)

	_, err = models.ValidateImageURL("http://example.com/img.jpg")
	assert.NoError(t, err)

	_, err = models.ValidateImageURL("ftp://example.com/img.jpg")
	assert.True(t, models.IsValidationError(err))

	_, err = models.ValidateImageURL("https://example.com/" + strings.Repeat("x", 255))
	assert.True(t, models.IsValidationError(err))
}

func TestValidateCategorySlug(t *testing.T) {
	slug, err := models.ValidateCategorySlug("gaming-pcs-2")
	assert.NoError(t, err)
	assert.Equal(t, "gaming-pcs-2", slug)

	for _, bad := range []string{"", "Gaming", "with space", "acc_ents", strings.Repeat("a", 51)} {
		_, err = models.ValidateCategorySlug(bad)
		assert.True(t, models.IsValidationError(err), "slug %q should fail", bad)
	}
}

func TestValidateQuantity(t *testing.T) {
	q, err := models.ValidateQuantity(3)
	assert.NoError(t, err)
	assert.Equal(t, 3, q)

	_, err = models.ValidateQuantity(0)
	assert.True(t, models.IsValidationError(err))

	_, err = models.ValidateQuantity(-1)
	assert.True(t, models.IsValidationError(err))
}

func TestNewProduct(t *testing.T) {
	product, err := models.NewProduct(models.ProductInput{
		Name:     "Keyboard",
		Price:    75.00,
		ImageURL: "https://example.com/kb.jpg",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Keyboard", product.Name)
	assert.Equal(t, 75.00, product.Price)

	// Construction is atomic: invalid input yields no product at all.
	product, err = models.NewProduct(models.ProductInput{Name: "Keyboard", Price: -1})
	assert.Nil(t, product)
	assert.True(t, models.IsValidationError(err))
}

func TestProductApplyPartialUpdate(t *testing.T) {
	product, err := models.NewProduct(models.ProductInput{Name: "Mouse", Price: 25.00})
	assert.NoError(t, err)

	newPrice := 29.99
	assert.NoError(t, product.Apply(models.ProductUpdate{Price: &newPrice}))
	assert.Equal(t, 29.99, product.Price)
	assert.Equal(t, "Mouse", product.Name)

	// A failing update must not change any field, even ones that would
	// have validated on their own.
	badPrice := -1.0
	newName := "Wireless Mouse"
	err = product.Apply(models.ProductUpdate{Name: &newName, Price: &badPrice})
	assert.True(t, models.IsValidationError(err))
	assert.Equal(t, "Mouse", product.Name)
	assert.Equal(t, 29.99, product.Price)
}

func TestNewCategoryNormalizesSlug(t *testing.T) {
	category, err := models.NewCategory(models.CategoryInput{Name: "Gaming", Slug: " Gaming "})
	assert.NoError(t, err)
	assert.Equal(t, "gaming", category.Slug)

	_, err = models.NewCategory(models.CategoryInput{Name: "Gaming", Slug: "no good"})
	assert.True(t, models.IsValidationError(err))
}

func TestNewCartItemDefaultsQuantity(t *testing.T) {
	item, err := models.NewCartItem("prod-1", 0)
	assert.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)

	item, err = models.NewCartItem("prod-1", 4)
	assert.NoError(t, err)
	assert.Equal(t, 4, item.Quantity)

	_, err = models.NewCartItem("prod-1", -2)
	assert.True(t, models.IsValidationError(err))
}

func TestCartItemSetQuantityKeepsOldValueOnFailure(t *testing.T) {
	item, err := models.NewCartItem("prod-1", 2)
	assert.NoError(t, err)

	err = item.SetQuantity(0)
	assert.True(t, models.IsValidationError(err))
	assert.Equal(t, 2, item.Quantity)
}
