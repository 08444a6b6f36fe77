package catalog

import (
	"errors"

	"shopd/internal/domain"
)

// ErrNotFound is returned when a requested product does not exist.
var ErrNotFound = errors.New("product not found")

// Catalog is the fixed, read-only product set. Built once at startup; List
// order is the order products were given to New.
type Catalog struct {
	products []domain.Product
	byID     map[string]int
}

func New(products []domain.Product) *Catalog {
	c := &Catalog{
		products: make([]domain.Product, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	copy(c.products, products)
	for i, p := range c.products {
		c.byID[p.ID] = i
	}
	return c
}

// Default is the demo storefront catalog.
func Default() *Catalog {
	return New([]domain.Product{
		{ID: "tshirt-001", Name: "Classic Tee", Price: 1999, Currency: "usd",
			Image: "https://via.placeholder.com/400?text=Classic+Tee"},
		{ID: "hoodie-002", Name: "Comfy Hoodie", Price: 4999, Currency: "usd",
			Image: "https://via.placeholder.com/400?text=Comfy+Hoodie"},
		{ID: "jeans-003", Name: "Slim Jeans", Price: 5999, Currency: "usd",
			Image: "https://via.placeholder.com/400?text=Slim+Jeans"},
	})
}

// List returns all products in stable order. The slice is a copy; callers
// cannot mutate the catalog through it.
func (c *Catalog) List() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Find(id string) (domain.Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, ErrNotFound
	}
	return c.products[i], nil
}
