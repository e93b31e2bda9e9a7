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

// ProductResponse is a product as shown in the admin table
type ProductResponse struct {
	Ref      int             `json:"ref"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Visible  bool            `json:"visible"`
}

// CatalogProduct is a product card in the customer catalog
type CatalogProduct struct {
	Ref   int             `json:"ref"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
}

// CatalogGroupResponse is one category section of the customer catalog
type CatalogGroupResponse struct {
	Category string           `json:"category"`
	Products []CatalogProduct `json:"products"`
}

type createProductRequest struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    json.RawMessage `json:"price"`
	Image    string          `json:"image"`
	Visible  bool            `json:"visible"`
}

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// CreateProduct handles POST /api/admin/products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	created, err := h.service.CreateProduct(r.Context(), models.ProductRequest{
		Name:     req.Name,
		Category: req.Category,
		Price:    rawText(req.Price),
		ImageRef: req.Image,
		Visible:  req.Visible,
	})
	if err != nil {
		h.logger.Info("product rejected", "error", err)
		writeServiceError(w, err, h.logger)
		return
	}

	h.logger.Info("product created",
		"ref", created.Ref,
		"name", created.Product.Name,
		"category", created.Product.Category,
		"visible", created.Product.Visible,
	)
	WriteJSON(w, http.StatusCreated, toProductResponse(created), h.logger)
}

// ListProducts handles GET /api/admin/products
// Returns every product, including hidden ones
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	refs := h.service.ListProducts(r.Context())

	products := make([]ProductResponse, len(refs))
	for i, ref := range refs {
		products[i] = toProductResponse(ref)
	}

	WriteJSON(w, http.StatusOK, products, h.logger)
}

// GetCatalog handles GET /api/catalog
// The grouping is rebuilt from the registry on every request
func (h *ProductHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	groups := h.service.Catalog(r.Context())

	response := make([]CatalogGroupResponse, len(groups))
	for i, g := range groups {
		products := make([]CatalogProduct, len(g.Products))
		for j, ref := range g.Products {
			products[j] = CatalogProduct{
				Ref:   ref.Ref,
				Name:  ref.Product.Name,
				Price: ref.Product.Price,
				Image: ref.Product.ImageRef,
			}
		}
		response[i] = CatalogGroupResponse{Category: g.Category, Products: products}
	}

	WriteJSON(w, http.StatusOK, response, h.logger)
}

// GetProduct handles GET /api/products/{ref}
// - 200: visible product
// - 400: ref is not an integer
// - 404: no visible product at ref
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ref, err := parsePathIndex(chi.URLParam(r, "ref"), "ref")
	if err != nil {
		h.logger.Warn("invalid product ref", "ref", chi.URLParam(r, "ref"))
		WriteError(w, http.StatusBadRequest, "Invalid ref supplied", h.logger)
		return
	}

	product, err := h.service.GetVisibleProduct(r.Context(), ref)
	if err != nil {
		h.logger.Info("product not found", "ref", ref)
		WriteError(w, http.StatusNotFound, "Product not found", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, toProductResponse(service.ProductRef{Ref: ref, Product: product}), h.logger)
}

func toProductResponse(ref service.ProductRef) ProductResponse {
	return ProductResponse{
		Ref:      ref.Ref,
		Name:     ref.Product.Name,
		Category: ref.Product.Category,
		Price:    ref.Product.Price,
		Image:    ref.Product.ImageRef,
		Visible:  ref.Product.Visible,
	}
}
