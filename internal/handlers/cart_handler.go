package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/minishop/internal/models"
	"github.com/Lixing-Zhang/minishop/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// CartItemResponse is one row of the cart table
type CartItemResponse struct {
	Position int             `json:"position"`
	Ref      int             `json:"ref"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
}

// CartResponse is the cart page: rows plus the grand total
type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
}

type addItemRequest struct {
	Ref      *int            `json:"ref"`
	Quantity json.RawMessage `json:"quantity"`
}

// CartHandler handles cart HTTP requests
type CartHandler struct {
	service *service.CartService
	log     *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(service *service.CartService, log *slog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		log:     log,
	}
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	view := h.service.View(r.Context())

	items := make([]CartItemResponse, len(view.Lines))
	for i, line := range view.Lines {
		items[i] = toCartItemResponse(line)
	}

	WriteJSON(w, http.StatusOK, CartResponse{Items: items, Total: view.Total}, h.log)
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if !decodeJSON(w, r, &req, h.log) {
		return
	}

	if req.Ref == nil {
		writeServiceError(w, models.NewValidationError("ref", "is required"), h.log)
		return
	}

	quantity, err := parseQuantity(req.Quantity)
	if err != nil {
		writeServiceError(w, err, h.log)
		return
	}

	line, err := h.service.AddToCart(r.Context(), *req.Ref, quantity)
	if err != nil {
		h.log.Info("add to cart rejected", "ref", *req.Ref, "quantity", quantity, "error", err)
		writeServiceError(w, err, h.log)
		return
	}

	h.log.Info("added to cart", "name", line.Entry.Product.Name, "quantity", quantity)
	WriteJSON(w, http.StatusCreated, toCartItemResponse(line), h.log)
}

// RemoveItem handles DELETE /api/cart/items/{position}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	position, err := parsePathIndex(chi.URLParam(r, "position"), "position")
	if err != nil {
		writeServiceError(w, err, h.log)
		return
	}

	if err := h.service.RemoveFromCart(r.Context(), position); err != nil {
		h.log.Info("remove from cart rejected", "position", position, "error", err)
		writeServiceError(w, err, h.log)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toCartItemResponse(line service.CartLine) CartItemResponse {
	return CartItemResponse{
		Position: line.Position,
		Ref:      line.Ref,
		Name:     line.Entry.Product.Name,
		Category: line.Entry.Product.Category,
		Price:    line.Entry.Product.Price,
		Quantity: line.Entry.Quantity,
		Total:    line.Entry.Total(),
	}
}
