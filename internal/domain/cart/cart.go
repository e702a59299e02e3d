// internal/domain/cart/cart.go
package cart

import (
	"sort"
	"strconv"
	"strings"

	"github.com/vellaperfumeria/storefront-backend/internal/domain/product"
)

// Identity derives the line id: "<productID>-<variant values>", values
// joined by "-" in variant type order. A nil or empty variant gives "<productID>-".
func Identity(productID int64, variant map[string]string) string {
	keys := make([]string, 0, len(variant))
	for k := range variant {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := make([]string, 0, len(keys))
	for _, k := range keys {
		values = append(values, variant[k])
	}

	return strconv.FormatInt(productID, 10) + "-" + strings.Join(values, "-")
}

// New returns an empty cart
func New() Cart {
	return Cart{Items: []Item{}}
}

// Add merges one unit of product+variant into the cart: an existing line
// with the same identity gets quantity+1, otherwise a new line with
// quantity 1 is appended. Stock is not checked here.
func (c Cart) Add(p *product.Product, variant map[string]string) Cart {
	id := Identity(p.ID, variant)

	items := make([]Item, len(c.Items), len(c.Items)+1)
	copy(items, c.Items)

	for i := range items {
		if items[i].ID == id {
			items[i].Quantity++
			return Cart{Items: items}
		}
	}

	return Cart{Items: append(items, Item{
		ID:              id,
		Product:         p,
		Quantity:        1,
		SelectedVariant: copyVariant(variant),
	})}
}

// UpdateQuantity sets the quantity of a line to exactly quantity.
// A quantity below 1 removes the line.
func (c Cart) UpdateQuantity(id string, quantity int) Cart {
	if quantity < 1 {
		return c.Remove(id)
	}

	items := make([]Item, len(c.Items))
	copy(items, c.Items)
	for i := range items {
		if items[i].ID == id {
			items[i].Quantity = quantity
		}
	}
	return Cart{Items: items}
}

// Remove drops a line; unknown ids are ignored
func (c Cart) Remove(id string) Cart {
	items := make([]Item, 0, len(c.Items))
	for _, item := range c.Items {
		if item.ID != id {
			items = append(items, item)
		}
	}
	return Cart{Items: items}
}

// Clear returns an empty cart
func (c Cart) Clear() Cart {
	return New()
}

// Count is the sum of quantities across all lines
func (c Cart) Count() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Len is the number of distinct lines
func (c Cart) Len() int {
	return len(c.Items)
}

// IsEmpty reports whether the cart has no lines
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Find returns the line with the given id
func (c Cart) Find(id string) (Item, bool) {
	for _, item := range c.Items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// Snapshot converts the cart to its stored form
func (c Cart) Snapshot(lookup ProductLookup) []StoredItem {
	stored := make([]StoredItem, 0, len(c.Items))
	for _, item := range c.Items {
		s := StoredItem{
			ID:              item.ID,
			ProductID:       item.Product.ID,
			Quantity:        item.Quantity,
			SelectedVariant: copyVariant(item.SelectedVariant),
		}
		if _, known := lookup.Lookup(item.Product.ID); !known {
			s.External = &ExternalProduct{
				Name:     item.Product.Name,
				Price:    item.Product.Price,
				ImageURL: item.Product.ImageURL,
			}
		}
		stored = append(stored, s)
	}
	return stored
}

// Hydrate rebuilds a cart from its stored form. Lines whose product is
// neither in the catalog nor carries an external snapshot are dropped,
// as are lines with a non-positive quantity.
func Hydrate(stored []StoredItem, lookup ProductLookup) Cart {
	items := make([]Item, 0, len(stored))
	for _, s := range stored {
		if s.Quantity < 1 {
			continue
		}

		p, ok := lookup.Lookup(s.ProductID)
		if !ok {
			if s.External == nil {
				continue
			}
			p = product.Placeholder(s.ProductID, s.External.Name, s.External.Price, s.External.ImageURL)
		}

		id := s.ID
		if id == "" {
			id = Identity(s.ProductID, s.SelectedVariant)
		}

		items = append(items, Item{
			ID:              id,
			Product:         p,
			Quantity:        s.Quantity,
			SelectedVariant: copyVariant(s.SelectedVariant),
		})
	}
	return Cart{Items: items}
}

func copyVariant(variant map[string]string) map[string]string {
	if len(variant) == 0 {
		return nil
	}
	out := make(map[string]string, len(variant))
	for k, v := range variant {
		out[k] = v
	}
	return out
}
