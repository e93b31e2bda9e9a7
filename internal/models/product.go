package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Product is a catalog item created through the product registry.
// Products have no identity of their own and are never modified after creation.
type Product struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	ImageRef string          `json:"image"`
	Visible  bool            `json:"visible"`
}

// ProductRequest carries the raw admin form input for a new product.
// Price is kept as text so that malformed numbers surface as validation errors.
type ProductRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    string `json:"price"`
	ImageRef string `json:"image"`
	Visible  bool   `json:"visible"`
}

// Normalize trims and validates the request and returns the product it describes.
func (r ProductRequest) Normalize() (Product, error) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return Product{}, NewValidationError("name", "must not be empty")
	}

	category := strings.TrimSpace(r.Category)
	if category == "" {
		return Product{}, NewValidationError("category", "must not be empty")
	}

	price, err := ParsePrice(r.Price)
	if err != nil {
		return Product{}, err
	}

	return Product{
		Name:     name,
		Category: category,
		Price:    price,
		ImageRef: strings.TrimSpace(r.ImageRef),
		Visible:  r.Visible,
	}, nil
}

// ParsePrice parses a non-negative decimal amount.
func ParsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, NewValidationError("price", "must not be empty")
	}

	price, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, NewValidationError("price", "must be a number")
	}
	if price.IsNegative() {
		return decimal.Zero, NewValidationError("price", "must not be negative")
	}

	return price, nil
}
