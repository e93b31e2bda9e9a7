package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/minishop/internal/models"
	"github.com/Lixing-Zhang/minishop/internal/service"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// CreateOrder handles POST /api/order
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest
	if !decodeJSON(w, r, &req, h.log) {
		return
	}

	order, err := h.orderService.PlaceOrder(r.Context(), req)
	if err != nil {
		h.log.Info("order rejected", "error", err)
		writeServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, order, h.log)
	h.log.Info("order placed successfully",
		"order_id", order.ID,
		"items_count", len(order.Lines),
		"total", order.Total.String(),
	)
}

// LastOrder handles GET /api/order/last
func (h *OrderHandler) LastOrder(w http.ResponseWriter, r *http.Request) {
	order, ok := h.orderService.LastOrder(r.Context())
	if !ok {
		WriteError(w, http.StatusNotFound, "No order has been placed", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, order, h.log)
}
