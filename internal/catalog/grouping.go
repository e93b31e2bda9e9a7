// Package catalog derives the customer-facing view of the product registry.
package catalog

import "github.com/Lixing-Zhang/minishop/internal/models"

// Group is one category and its visible products.
type Group struct {
	Category string
	Products []*models.Product
}

// Grouping maps categories to their visible products.
// Categories keep the order in which they were first seen.
type Grouping []Group

// Rebuild filters products down to the visible ones and groups them by category.
// The result depends only on the input, so callers rebuild after every registry change.
func Rebuild(products []*models.Product) Grouping {
	grouping := make(Grouping, 0)
	index := make(map[string]int)

	for _, p := range products {
		if p == nil || !p.Visible {
			continue
		}

		i, ok := index[p.Category]
		if !ok {
			i = len(grouping)
			index[p.Category] = i
			grouping = append(grouping, Group{Category: p.Category})
		}
		grouping[i].Products = append(grouping[i].Products, p)
	}

	return grouping
}

// Categories returns the category names in display order
func (g Grouping) Categories() []string {
	names := make([]string, len(g))
	for i, group := range g {
		names[i] = group.Category
	}
	return names
}

// Products returns the products of category, or nil when the category has none.
func (g Grouping) Products(category string) []*models.Product {
	for _, group := range g {
		if group.Category == category {
			return group.Products
		}
	}
	return nil
}

// Len returns the number of visible products across all categories
func (g Grouping) Len() int {
	n := 0
	for _, group := range g {
		n += len(group.Products)
	}
	return n
}
