package service

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/Lixing-Zhang/minishop/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutCart is the part of the cart the order workflow needs.
type CheckoutCart interface {
	Snapshot() []models.CartEntry
	Total() decimal.Decimal
	Clear()
}

// OrderWorkflow validates and executes checkouts.
// A successful PlaceOrder marks its result Placed and the workflow is
// immediately Open again for the next cycle.
type OrderWorkflow struct {
	status  models.OrderStatus
	orders  []models.OrderResult
	newID   func() string
	nowFunc func() time.Time
}

// NewOrderWorkflow creates a workflow in the Open state
func NewOrderWorkflow() *OrderWorkflow {
	return &OrderWorkflow{
		status:  models.OrderStatusOpen,
		orders:  make([]models.OrderResult, 0),
		newID:   generateOrderID,
		nowFunc: time.Now,
	}
}

// PlaceOrder checks the cart and address, captures the order summary and
// clears the cart. Both checks run before anything is mutated.
func (w *OrderWorkflow) PlaceOrder(cart CheckoutCart, deliveryAddress string) (*models.OrderResult, error) {
	entries := cart.Snapshot()
	if len(entries) == 0 {
		return nil, models.ErrEmptyCart
	}

	address := strings.TrimSpace(deliveryAddress)
	if address == "" {
		return nil, models.NewValidationError("address", "must not be empty")
	}

	lines := make([]models.OrderLine, len(entries))
	for i, e := range entries {
		lines[i] = models.OrderLine{
			Name:      e.Product.Name,
			Category:  e.Product.Category,
			UnitPrice: e.Product.Price,
			Quantity:  e.Quantity,
			Total:     e.Total(),
		}
	}

	result := models.OrderResult{
		ID:              w.newID(),
		Status:          models.OrderStatusPlaced,
		Lines:           lines,
		Total:           cart.Total(),
		DeliveryAddress: address,
		PlacedAt:        w.nowFunc().UTC(),
	}

	cart.Clear()
	w.orders = append(w.orders, result)
	w.status = models.OrderStatusOpen

	placed := cloneOrder(result)
	return &placed, nil
}

// Status returns the state of the current checkout cycle
func (w *OrderWorkflow) Status() models.OrderStatus {
	return w.status
}

// Orders returns the orders placed by this process, oldest first
func (w *OrderWorkflow) Orders() []models.OrderResult {
	orders := make([]models.OrderResult, len(w.orders))
	for i, o := range w.orders {
		orders[i] = cloneOrder(o)
	}
	return orders
}

// Last returns the most recently placed order
func (w *OrderWorkflow) Last() (models.OrderResult, bool) {
	if len(w.orders) == 0 {
		return models.OrderResult{}, false
	}
	return cloneOrder(w.orders[len(w.orders)-1]), true
}

// cloneOrder copies o so callers never share its lines with the history
func cloneOrder(o models.OrderResult) models.OrderResult {
	o.Lines = slices.Clone(o.Lines)
	return o
}

// generateOrderID generates a unique order ID using UUID
func generateOrderID() string {
	return uuid.New().String()
}

// OrderService handles order business logic
type OrderService struct {
	state *State
}

// NewOrderService creates a new order service
func NewOrderService(state *State) *OrderService {
	return &OrderService{
		state: state,
	}
}

// PlaceOrder checks out the shared cart
func (s *OrderService) PlaceOrder(ctx context.Context, req models.OrderRequest) (*models.OrderResult, error) {
	defer s.state.lock()()

	return s.state.Orders.PlaceOrder(s.state.Cart, req.Address)
}

// LastOrder returns the most recently placed order, if any
func (s *OrderService) LastOrder(ctx context.Context) (models.OrderResult, bool) {
	defer s.state.lock()()

	return s.state.Orders.Last()
}
