package models

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	slugPattern     = regexp.MustCompile(`^[a-z0-9-]+$`)
	imageURLPattern = regexp.MustCompile(`^https?://`)
)

// ValidateProductName checks that a product name is 1-100 characters.
func ValidateProductName(name string) (string, error) {
	if name == "" || utf8.RuneCountInString(name) > 100 {
		return "", NewValidationError("name", "product name must be 1-100 characters")
	}
	return name, nil
}

// ValidateProductPrice checks that a price is a positive number.
func ValidateProductPrice(price float64) (float64, error) {
	if price <= 0 {
		return 0, NewValidationError("price", "price must be a positive number")
	}
	return price, nil
}

// ValidateImageURL checks an optional image URL. An empty URL is valid;
// a present one must be at most 255 characters and start with http:// or https://.
func ValidateImageURL(url string) (string, error) {
	if url == "" {
		return "", nil
	}
	if utf8.RuneCountInString(url) > 255 {
		return "", NewValidationError("image_url", "image URL must be at most 255 characters")
	}
	if !imageURLPattern.MatchString(url) {
		return "", NewValidationError("image_url", "image URL must start with http:// or https://")
	}
	return url, nil
}

// ValidateCategoryName checks that a category name is 1-50 characters.
func ValidateCategoryName(name string) (string, error) {
	if name == "" || utf8.RuneCountInString(name) > 50 {
		return "", NewValidationError("name", "category name must be 1-50 characters")
	}
	return name, nil
}

// ValidateCategorySlug checks that a slug is 1-50 characters of
// lowercase letters, digits, and hyphens.
func ValidateCategorySlug(slug string) (string, error) {
	if slug == "" || utf8.RuneCountInString(slug) > 50 {
		return "", NewValidationError("slug", "slug must be 1-50 characters")
	}
	if !slugPattern.MatchString(slug) {
		return "", NewValidationError("slug", "slug can only contain lowercase letters, numbers, and hyphens")
	}
	return slug, nil
}

// ValidateQuantity checks that a cart quantity is a positive integer.
func ValidateQuantity(quantity int) (int, error) {
	if quantity <= 0 {
		return 0, NewValidationError("quantity", "quantity must be a positive integer")
	}
	return quantity, nil
}

// NormalizeSlug lowercases and trims a slug candidate before validation.
// It does not substitute characters; an invalid slug still fails validation.
func NormalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}
