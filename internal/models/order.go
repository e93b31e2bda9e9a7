package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartEntry is one "add to cart" action: a product reference and a quantity.
type CartEntry struct {
	Product  *Product
	Quantity int
}

// Total returns price × quantity for the entry.
func (e CartEntry) Total() decimal.Decimal {
	return e.Product.Price.Mul(decimal.NewFromInt(int64(e.Quantity)))
}

// OrderStatus is the state of a checkout cycle.
type OrderStatus string

const (
	OrderStatusOpen   OrderStatus = "open"
	OrderStatusPlaced OrderStatus = "placed"
)

// OrderLine is a frozen copy of a cart entry at checkout time.
type OrderLine struct {
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
}

// OrderResult is the immutable summary returned by a successful checkout.
type OrderResult struct {
	ID              string          `json:"id"`
	Status          OrderStatus     `json:"status"`
	Lines           []OrderLine     `json:"lines"`
	Total           decimal.Decimal `json:"total"`
	DeliveryAddress string          `json:"deliveryAddress"`
	PlacedAt        time.Time       `json:"placedAt"`
}

// OrderRequest represents an incoming checkout request
type OrderRequest struct {
	Address string `json:"address"`
}
