package service

import (
	"context"

	"github.com/Lixing-Zhang/minishop/internal/catalog"
	"github.com/Lixing-Zhang/minishop/internal/models"
)

// ProductRef pairs a product with its registry position.
type ProductRef struct {
	Ref     int
	Product *models.Product
}

// CatalogGroup is a category of the customer catalog with addressable products.
type CatalogGroup struct {
	Category string
	Products []ProductRef
}

// ProductService handles business logic for products
type ProductService struct {
	state *State
}

// NewProductService creates a new product service
func NewProductService(state *State) *ProductService {
	return &ProductService{
		state: state,
	}
}

// CreateProduct adds a product to the registry
func (s *ProductService) CreateProduct(ctx context.Context, req models.ProductRequest) (ProductRef, error) {
	defer s.state.lock()()

	p, err := s.state.Registry.Create(req)
	if err != nil {
		return ProductRef{}, err
	}
	return ProductRef{Ref: s.state.Registry.Len() - 1, Product: p}, nil
}

// ListProducts returns every product, visible or not, for the admin table
func (s *ProductService) ListProducts(ctx context.Context) []ProductRef {
	defer s.state.lock()()

	products := s.state.Registry.List()
	refs := make([]ProductRef, len(products))
	for i, p := range products {
		refs[i] = ProductRef{Ref: i, Product: p}
	}
	return refs
}

// GetVisibleProduct returns the product at ref if customers may see it
func (s *ProductService) GetVisibleProduct(ctx context.Context, ref int) (*models.Product, error) {
	defer s.state.lock()()

	p, err := s.state.Registry.Get(ref)
	if err != nil {
		return nil, err
	}
	if !p.Visible {
		return nil, &models.OutOfRangeError{Position: ref, Length: s.state.Registry.Len()}
	}
	return p, nil
}

// Catalog rebuilds the category grouping from the current registry contents.
func (s *ProductService) Catalog(ctx context.Context) []CatalogGroup {
	defer s.state.lock()()

	grouping := catalog.Rebuild(s.state.Registry.ListVisible())

	groups := make([]CatalogGroup, len(grouping))
	for i, g := range grouping {
		refs := make([]ProductRef, len(g.Products))
		for j, p := range g.Products {
			refs[j] = ProductRef{Ref: s.state.Registry.IndexOf(p), Product: p}
		}
		groups[i] = CatalogGroup{Category: g.Category, Products: refs}
	}
	return groups
}
