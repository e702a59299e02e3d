package product

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/vellaperfumeria/storefront-backend/internal/pkg/currency"
)

func TestNewProductResponse(t *testing.T) {
	c := staticCatalog(t)

	velvet, _ := c.Lookup(46801)
	resp := NewProductResponse(velvet, currency.EUR)
	if !resp.InStock || !resp.IsDiscounted || resp.DiscountPercentage != 40 {
		t.Fatalf("unexpected flags %+v", resp)
	}
	if resp.DisplayPrice != "24,99 €" || resp.DisplayRegularPrice != "42,00 €" {
		t.Fatalf("unexpected display prices %q %q", resp.DisplayPrice, resp.DisplayRegularPrice)
	}

	omega, _ := c.Lookup(43231)
	resp = NewProductResponse(omega, currency.USD)
	if resp.InStock {
		t.Fatalf("expected out of stock product to report in_stock=false")
	}
	if resp.DisplayPrice != "$22.68" {
		t.Fatalf("expected USD price, got %q", resp.DisplayPrice)
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, field := range []string{`"id":43231`, `"in_stock":false`, `"display_price":"$22.68"`} {
		if !strings.Contains(string(raw), field) {
			t.Fatalf("expected %s in %s", field, raw)
		}
	}
}
