// internal/domain/product/dto.go
package product

import (
	"github.com/vellaperfumeria/storefront-backend/internal/pkg/currency"
)

// ProductResponse is a product with the derived flags and display prices
// a storefront card needs.
type ProductResponse struct {
	*Product
	InStock             bool   `json:"in_stock"`
	IsDiscounted        bool   `json:"is_discounted"`
	DiscountPercentage  int    `json:"discount_percentage,omitempty"`
	DisplayPrice        string `json:"display_price"`
	DisplayRegularPrice string `json:"display_regular_price,omitempty"`
}

// NewProductResponse renders p for the given display currency
func NewProductResponse(p *Product, code currency.Code) ProductResponse {
	resp := ProductResponse{
		Product:            p,
		InStock:            p.IsInStock(),
		IsDiscounted:       p.IsDiscounted(),
		DiscountPercentage: p.DiscountPercentage(),
		DisplayPrice:       currency.MustFormat(p.Price, code),
	}
	if resp.IsDiscounted {
		resp.DisplayRegularPrice = currency.MustFormat(*p.RegularPrice, code)
	}
	return resp
}

// NewProductResponses renders a product list
func NewProductResponses(products []*Product, code currency.Code) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductResponse(p, code))
	}
	return out
}
