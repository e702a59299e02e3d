// internal/domain/product/catalog.go
package product

import (
	"fmt"
	"sort"
	"strings"
)

// Catalog is the immutable product index every other component reads from.
// It is built once at startup and never mutated afterwards.
type Catalog struct {
	products []*Product
	byID     map[int64]*Product
}

// NewCatalog indexes products by id. Records are validated and ids must be unique.
func NewCatalog(products []Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]*Product, 0, len(products)),
		byID:     make(map[int64]*Product, len(products)),
	}

	for i := range products {
		p := products[i]
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("invalid catalog record: %w", err)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		c.products = append(c.products, &p)
		c.byID[p.ID] = &p
	}

	return c, nil
}

// Get returns the product with the given id
func (c *Catalog) Get(id int64) (*Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return p, nil
}

// Lookup is Get without the error, for callers that drop unknown ids
func (c *Catalog) Lookup(id int64) (*Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// All returns every product in dataset order
func (c *Catalog) All() []*Product {
	out := make([]*Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of products
func (c *Catalog) Len() int {
	return len(c.products)
}

// ByCategory returns the products of one category
func (c *Catalog) ByCategory(category Category) []*Product {
	return c.filter(func(p *Product) bool { return p.Category == category })
}

// Discounted returns the products on offer, biggest markdown first
func (c *Catalog) Discounted() []*Product {
	out := c.filter(func(p *Product) bool { return p.IsDiscounted() })
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DiscountPercentage() > out[j].DiscountPercentage()
	})
	return out
}

// Featured returns the products with the given ids in the given order,
// skipping ids that are not in the catalog.
func (c *Catalog) Featured(ids []int64) []*Product {
	out := make([]*Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := c.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Search matches name, brand and description case-insensitively
func (c *Catalog) Search(query string) []*Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.All()
	}
	return c.filter(func(p *Product) bool {
		return strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) ||
			strings.Contains(strings.ToLower(p.Description), q)
	})
}

func (c *Catalog) filter(keep func(*Product) bool) []*Product {
	out := make([]*Product, 0)
	for _, p := range c.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
