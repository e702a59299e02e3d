// internal/domain/cart/entity.go
package cart

import (
	"github.com/shopspring/decimal"
	"github.com/vellaperfumeria/storefront-backend/internal/domain/product"
)

// Item is one cart line. ID is derived from the product id and the
// selected variant so identical selections merge into one line.
type Item struct {
	ID              string            `json:"id"`
	Product         *product.Product  `json:"product"`
	Quantity        int               `json:"quantity"`
	SelectedVariant map[string]string `json:"selected_variant,omitempty"`
}

// LineTotal returns price × quantity
func (i Item) LineTotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is the ordered collection of lines for one session. Every
// operation returns a new Cart and leaves the receiver untouched.
type Cart struct {
	Items []Item `json:"items"`
}

// StoredItem is the persisted form of a cart line. Product data is
// rebuilt from the catalog on load; External keeps the minimal record for
// lines the local catalog does not know.
type StoredItem struct {
	ID              string            `json:"id"`
	ProductID       int64             `json:"product_id"`
	Quantity        int               `json:"quantity"`
	SelectedVariant map[string]string `json:"selected_variant,omitempty"`
	External        *ExternalProduct  `json:"external,omitempty"`
}

// ExternalProduct is the snapshot kept for a placeholder product
type ExternalProduct struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"image_url,omitempty"`
}

// ProductLookup resolves product ids; *product.Catalog satisfies it
type ProductLookup interface {
	Lookup(id int64) (*product.Product, bool)
}
