package memory

import (
	"context"
	"sync"

	"github.com/xenking/orderflow/internal/domain/product"
)

var _ product.Catalog = (*Catalog)(nil)

// Catalog holds products and their stock.
type Catalog struct {
	mu       sync.Mutex
	products map[string]product.Product
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{products: make(map[string]product.Product)}
}

// Put inserts or replaces products.
func (c *Catalog) Put(products ...product.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range products {
		c.products[p.ID] = p
	}
}

// GetByIDs returns the known products among ids.
func (c *Catalog) GetByIDs(_ context.Context, ids []string) ([]product.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]product.Product, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if p, ok := c.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (c *Catalog) DecrementStock(_ context.Context, id string, qty int) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.products[id]
	if !ok {
		return false, product.ErrNotFound
	}
	if p.Stock < qty {
		return false, nil
	}
	p.Stock -= qty
	c.products[id] = p
	return true, nil
}

func (c *Catalog) IncrementStock(_ context.Context, id string, qty int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.products[id]
	if !ok {
		return product.ErrNotFound
	}
	p.Stock += qty
	c.products[id] = p
	return nil
}

// Stock returns the current stock of a product, or -1 if it is unknown.
func (c *Catalog) Stock(id string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.products[id]
	if !ok {
		return -1
	}
	return p.Stock
}
