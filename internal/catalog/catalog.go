package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"storefront/internal/domain"
)

// Catalog is the read-only ordered product list supplied at startup. It is
// the single source of truth for product lookups; nothing mutates it after
// construction.
type Catalog struct {
	products []domain.Product
	byID     map[string]int
}

func New(products []domain.Product) *Catalog {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		if _, seen := byID[p.ID]; !seen {
			byID[p.ID] = i
		}
	}
	return &Catalog{products: products, byID: byID}
}

// Load reads a JSON product list from path.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return New(products), nil
}

// All returns products in catalog order. Callers must not mutate the slice.
func (c *Catalog) All() []domain.Product {
	return c.products
}

// Get looks up a product by id, returning domain.ErrNotFound for ids the
// catalog does not carry.
func (c *Catalog) Get(id string) (*domain.Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c.products[i], nil
}

func (c *Catalog) Len() int {
	return len(c.products)
}

// Categories returns the distinct category names in first-seen order, each
// with its product count.
func (c *Catalog) Categories() []CategoryCount {
	var out []CategoryCount
	index := make(map[string]int)
	for _, p := range c.products {
		if i, ok := index[p.Category]; ok {
			out[i].Count++
			continue
		}
		index[p.Category] = len(out)
		out = append(out, CategoryCount{Name: p.Category, Count: 1})
	}
	return out
}

type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
