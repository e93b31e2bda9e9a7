package service

import (
	"sync"

	"github.com/Lixing-Zhang/minishop/internal/repository"
)

// State owns the process-wide product registry, cart and order workflow.
// Every service method holds mu for the whole core call, so the core only ever
// sees one caller at a time even though HTTP handlers run concurrently.
type State struct {
	mu       sync.Mutex
	Registry repository.ProductRepository
	Cart     *repository.Cart
	Orders   *OrderWorkflow
}

// NewState creates an empty registry and a cart bound to it
func NewState() *State {
	registry := repository.NewProductRegistry()
	return &State{
		Registry: registry,
		Cart:     repository.NewCart(registry),
		Orders:   NewOrderWorkflow(),
	}
}

func (s *State) lock() func() {
	s.mu.Lock()
	return s.mu.Unlock
}

// Counts returns the number of products in the registry and entries in the cart
func (s *State) Counts() (products, cartEntries int) {
	defer s.lock()()

	return s.Registry.Len(), s.Cart.Len()
}
