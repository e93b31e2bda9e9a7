package repository

import (
	"github.com/Lixing-Zhang/minishop/internal/models"
	"github.com/shopspring/decimal"
)

// ProductLookup tells the cart which product references are valid.
type ProductLookup interface {
	Contains(p *models.Product) bool
}

// Cart holds cart entries in insertion order.
// Entries for the same product are kept separate and are never merged.
type Cart struct {
	products ProductLookup
	entries  []models.CartEntry
}

// NewCart creates an empty cart whose entries must reference products known to lookup
func NewCart(lookup ProductLookup) *Cart {
	return &Cart{
		products: lookup,
		entries:  make([]models.CartEntry, 0),
	}
}

// Add appends a new entry and returns it.
func (c *Cart) Add(product *models.Product, quantity int) (models.CartEntry, error) {
	if quantity <= 0 {
		return models.CartEntry{}, models.NewValidationError("quantity", "must be a positive integer")
	}
	if product == nil || !c.products.Contains(product) {
		return models.CartEntry{}, models.NewValidationError("product", "unknown product")
	}

	entry := models.CartEntry{Product: product, Quantity: quantity}
	c.entries = append(c.entries, entry)
	return entry, nil
}

// RemoveAt removes the entry at position; later entries shift down by one.
func (c *Cart) RemoveAt(position int) error {
	if position < 0 || position >= len(c.entries) {
		return &models.OutOfRangeError{Position: position, Length: len(c.entries)}
	}

	c.entries = append(c.entries[:position], c.entries[position+1:]...)
	return nil
}

// Snapshot returns a copy of the current entries
func (c *Cart) Snapshot() []models.CartEntry {
	entries := make([]models.CartEntry, len(c.entries))
	copy(entries, c.entries)
	return entries
}

// Total sums price × quantity over all entries
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range c.entries {
		total = total.Add(e.Total())
	}
	return total
}

// Clear removes all entries
func (c *Cart) Clear() {
	c.entries = make([]models.CartEntry, 0)
}

func (c *Cart) Len() int {
	return len(c.entries)
}

func (c *Cart) IsEmpty() bool {
	return len(c.entries) == 0
}
