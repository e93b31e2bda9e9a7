package service

import (
	"context"
	"sync"
	"testing"

	"github.com/Lixing-Zhang/minishop/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductService_CatalogScenario(t *testing.T) {
	ctx := context.Background()
	svc := NewProductService(NewState())

	shirt, err := svc.CreateProduct(ctx, models.ProductRequest{Name: "Shirt", Category: "Clothing", Price: "500", ImageRef: "img.png", Visible: true})
	require.NoError(t, err)
	assert.Equal(t, 0, shirt.Ref)

	groups := svc.Catalog(ctx)
	require.Len(t, groups, 1)
	assert.Equal(t, "Clothing", groups[0].Category)
	require.Len(t, groups[0].Products, 1)
	assert.Equal(t, "Shirt", groups[0].Products[0].Product.Name)
	assert.Equal(t, 0, groups[0].Products[0].Ref)

	// hidden products never reach the catalog
	hidden, err := svc.CreateProduct(ctx, models.ProductRequest{Name: "Draft", Category: "Drafts", Price: "1", Visible: false})
	require.NoError(t, err)
	assert.Equal(t, 1, hidden.Ref)

	groups = svc.Catalog(ctx)
	require.Len(t, groups, 1)
	for _, g := range groups {
		for _, p := range g.Products {
			assert.NotEqual(t, "Draft", p.Product.Name)
		}
	}

	// the admin list still shows everything
	assert.Len(t, svc.ListProducts(ctx), 2)
}

func TestProductService_CatalogRefsSurviveHiddenProducts(t *testing.T) {
	ctx := context.Background()
	svc := NewProductService(NewState())

	for _, req := range []models.ProductRequest{
		{Name: "Hidden", Category: "Clothing", Price: "1"},
		{Name: "Shirt", Category: "Clothing", Price: "2", Visible: true},
		{Name: "Phone", Category: "Electronics", Price: "3", Visible: true},
	} {
		_, err := svc.CreateProduct(ctx, req)
		require.NoError(t, err)
	}

	groups := svc.Catalog(ctx)
	require.Len(t, groups, 2)
	assert.Equal(t, 1, groups[0].Products[0].Ref)
	assert.Equal(t, 2, groups[1].Products[0].Ref)
}

func TestProductService_GetVisibleProduct(t *testing.T) {
	ctx := context.Background()
	svc := NewProductService(NewState())

	_, err := svc.CreateProduct(ctx, models.ProductRequest{Name: "Shirt", Category: "Clothing", Price: "5", Visible: true})
	require.NoError(t, err)
	_, err = svc.CreateProduct(ctx, models.ProductRequest{Name: "Hidden", Category: "Clothing", Price: "5"})
	require.NoError(t, err)

	p, err := svc.GetVisibleProduct(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "Shirt", p.Name)

	_, err = svc.GetVisibleProduct(ctx, 1)
	assert.ErrorIs(t, err, models.ErrOutOfRange)

	_, err = svc.GetVisibleProduct(ctx, 9)
	assert.ErrorIs(t, err, models.ErrOutOfRange)
}

func TestProductService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewProductService(NewState())

	_, err := svc.CreateProduct(ctx, models.ProductRequest{Name: "Shirt", Category: "Clothing", Price: "cheap"})
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Empty(t, svc.ListProducts(ctx))
}

func TestServices_SerializeConcurrentCalls(t *testing.T) {
	ctx := context.Background()
	state := NewState()
	products := NewProductService(state)
	carts := NewCartService(state)

	p, err := products.CreateProduct(ctx, models.ProductRequest{Name: "Pen", Category: "Office", Price: "1", Visible: true})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = carts.AddToCart(ctx, p.Ref, 1)
		}()
		go func() {
			defer wg.Done()
			_ = products.Catalog(ctx)
			_ = carts.View(ctx)
		}()
	}
	wg.Wait()

	view := carts.View(ctx)
	assert.Len(t, view.Lines, 50)
	assert.Equal(t, "50", view.Total.String())
}
