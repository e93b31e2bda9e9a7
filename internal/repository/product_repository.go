package repository

import (
	"github.com/Lixing-Zhang/minishop/internal/models"
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Create(req models.ProductRequest) (*models.Product, error)
	List() []*models.Product
	ListVisible() []*models.Product
	Get(ref int) (*models.Product, error)
	IndexOf(p *models.Product) int
	Contains(p *models.Product) bool
	Len() int
}

// ProductRegistry is the in-memory, append-only product store.
// It is not safe for concurrent use; callers serialize access.
type ProductRegistry struct {
	products []*models.Product
}

var _ ProductRepository = (*ProductRegistry)(nil)

// NewProductRegistry creates an empty product registry
func NewProductRegistry() *ProductRegistry {
	return &ProductRegistry{
		products: make([]*models.Product, 0),
	}
}

// Create validates the request and appends the new product.
// On error the registry is left untouched.
func (r *ProductRegistry) Create(req models.ProductRequest) (*models.Product, error) {
	product, err := req.Normalize()
	if err != nil {
		return nil, err
	}

	p := &product
	r.products = append(r.products, p)
	return p, nil
}

// List returns all products in insertion order
func (r *ProductRegistry) List() []*models.Product {
	products := make([]*models.Product, len(r.products))
	copy(products, r.products)
	return products
}

// ListVisible returns the visible products in insertion order.
// Every call reflects the products created so far.
func (r *ProductRegistry) ListVisible() []*models.Product {
	products := make([]*models.Product, 0, len(r.products))
	for _, p := range r.products {
		if p.Visible {
			products = append(products, p)
		}
	}
	return products
}

// Get returns the product at registry position ref
func (r *ProductRegistry) Get(ref int) (*models.Product, error) {
	if ref < 0 || ref >= len(r.products) {
		return nil, &models.OutOfRangeError{Position: ref, Length: len(r.products)}
	}
	return r.products[ref], nil
}

// IndexOf returns the registry position of p, or -1 if p was not created here.
func (r *ProductRegistry) IndexOf(p *models.Product) int {
	if p == nil {
		return -1
	}
	for i, candidate := range r.products {
		if candidate == p {
			return i
		}
	}
	return -1
}

// Contains reports whether p is a reference handed out by this registry.
func (r *ProductRegistry) Contains(p *models.Product) bool {
	return r.IndexOf(p) >= 0
}

// Len returns the number of products created
func (r *ProductRegistry) Len() int {
	return len(r.products)
}
