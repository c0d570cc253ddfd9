// Package catalog caches the upstream product list in memory. The cache
// never expires; each Load wholly replaces the previous copy.
package catalog

import (
	"context"
	"sync"

	"storefront-gateway/internal/domain"
)

type productAPI interface {
	ListProducts(ctx context.Context, category string) ([]domain.Product, error)
}

// Catalog is shared across clients; reads and loads may race, so access
// is guarded. Carts referencing a product are never invalidated when the
// cached copy changes.
type Catalog struct {
	api productAPI

	mu    sync.RWMutex
	items []domain.Product
}

func New(api productAPI) *Catalog {
	return &Catalog{api: api}
}

// Load fetches the product list, optionally filtered by category, and
// replaces the whole cache. Last load wins.
func (c *Catalog) Load(ctx context.Context, category string) ([]domain.Product, error) {
	products, err := c.api.ListProducts(ctx, category)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.items = products
	c.mu.Unlock()
	return products, nil
}

// GetByID looks up the cache only. Returns domain.ErrNotFound when the
// product is absent or the catalog has not been loaded yet.
func (c *Catalog) GetByID(id int) (*domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.items {
		if p.ID == id {
			out := p
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Items returns a copy of the cached product list.
func (c *Catalog) Items() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Product, len(c.items))
	copy(out, c.items)
	return out
}
