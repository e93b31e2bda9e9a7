package service

import (
	"context"

	"github.com/Lixing-Zhang/minishop/internal/models"
	"github.com/shopspring/decimal"
)

// CartLine is a cart entry as shown on the cart page.
type CartLine struct {
	Position int
	Ref      int
	Entry    models.CartEntry
}

// CartView is a consistent read of the cart entries and their total.
type CartView struct {
	Lines []CartLine
	Total decimal.Decimal
}

// CartService handles cart mutations requested by the presentation layer
type CartService struct {
	state *State
}

// NewCartService creates a new cart service
func NewCartService(state *State) *CartService {
	return &CartService{
		state: state,
	}
}

// AddToCart adds quantity of the product at ref as a new cart entry.
func (s *CartService) AddToCart(ctx context.Context, ref, quantity int) (CartLine, error) {
	defer s.state.lock()()

	p, err := s.state.Registry.Get(ref)
	if err != nil || !p.Visible {
		return CartLine{}, models.NewValidationError("product", "unknown product")
	}

	entry, err := s.state.Cart.Add(p, quantity)
	if err != nil {
		return CartLine{}, err
	}
	return CartLine{Position: s.state.Cart.Len() - 1, Ref: ref, Entry: entry}, nil
}

// RemoveFromCart removes the entry at position
func (s *CartService) RemoveFromCart(ctx context.Context, position int) error {
	defer s.state.lock()()

	return s.state.Cart.RemoveAt(position)
}

// View returns the cart snapshot and total taken under the same lock
func (s *CartService) View(ctx context.Context) CartView {
	defer s.state.lock()()

	entries := s.state.Cart.Snapshot()
	lines := make([]CartLine, len(entries))
	for i, e := range entries {
		lines[i] = CartLine{
			Position: i,
			Ref:      s.state.Registry.IndexOf(e.Product),
			Entry:    e,
		}
	}

	return CartView{
		Lines: lines,
		Total: s.state.Cart.Total(),
	}
}
