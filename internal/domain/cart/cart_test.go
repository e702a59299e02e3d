package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/vellaperfumeria/storefront-backend/internal/domain/product"
)

type stubLookup map[int64]*product.Product

func (s stubLookup) Lookup(id int64) (*product.Product, bool) {
	p, ok := s[id]
	return p, ok
}

func testProduct(id int64, price string) *product.Product {
	return &product.Product{
		ID:       id,
		Name:     "Producto",
		Price:    decimal.RequireFromString(price),
		Category: product.CategoryMakeup,
	}
}

func TestIdentity(t *testing.T) {
	tests := []struct {
		name    string
		variant map[string]string
		want    string
	}{
		{name: "nil variant", variant: nil, want: "90001-"},
		{name: "empty variant", variant: map[string]string{}, want: "90001-"},
		{name: "single", variant: map[string]string{"Tono": "Rojo Intenso 6.60"}, want: "90001-Rojo Intenso 6.60"},
		{name: "ordered by type", variant: map[string]string{"Tono": "Rojo", "Tamaño": "50ml"}, want: "90001-50ml-Rojo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Identity(90001, tt.variant); got != tt.want {
				t.Fatalf("Identity() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAddSameIdentityMerges(t *testing.T) {
	p := testProduct(1, "5.00")
	c := New()
	for i := 0; i < 4; i++ {
		c = c.Add(p, map[string]string{"Tono": "A"})
	}
	if c.Len() != 1 {
		t.Fatalf("expected one line, got %d", c.Len())
	}
	if c.Items[0].Quantity != 4 {
		t.Fatalf("expected quantity 4, got %d", c.Items[0].Quantity)
	}
}

func TestAddDistinctIdentitiesAppends(t *testing.T) {
	p := testProduct(1, "5.00")
	q := testProduct(2, "7.00")
	c := New().
		Add(p, nil).
		Add(p, map[string]string{"Tono": "A"}).
		Add(p, map[string]string{"Tono": "B"}).
		Add(q, nil)

	if c.Len() != 4 {
		t.Fatalf("expected four lines, got %d", c.Len())
	}
	if c.Items[0].ID != "1-" || c.Items[3].ID != "2-" {
		t.Fatalf("lines out of insertion order: %v", c.Items)
	}
	if c.Count() != 4 {
		t.Fatalf("expected count 4, got %d", c.Count())
	}
}

func TestAddDoesNotMutateReceiver(t *testing.T) {
	p := testProduct(1, "5.00")
	before := New().Add(p, nil)
	after := before.Add(p, nil)

	if before.Items[0].Quantity != 1 {
		t.Fatalf("receiver was mutated: quantity %d", before.Items[0].Quantity)
	}
	if after.Items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", after.Items[0].Quantity)
	}
	if after.Items[0].Product != before.Items[0].Product {
		t.Fatalf("product must be shared by reference")
	}
}

func TestAddCopiesVariant(t *testing.T) {
	variant := map[string]string{"Tono": "A"}
	c := New().Add(testProduct(1, "1.00"), variant)
	variant["Tono"] = "B"
	if c.Items[0].SelectedVariant["Tono"] != "A" {
		t.Fatalf("cart line aliases the caller's variant map")
	}
}

func TestUpdateQuantity(t *testing.T) {
	p := testProduct(1, "5.00")
	c := New().Add(p, nil).Add(p, nil)

	set := c.UpdateQuantity("1-", 7)
	if set.Items[0].Quantity != 7 {
		t.Fatalf("expected quantity set to 7, got %d", set.Items[0].Quantity)
	}
	if c.Items[0].Quantity != 2 {
		t.Fatalf("receiver was mutated")
	}

	for _, q := range []int{0, -1} {
		if got := c.UpdateQuantity("1-", q); !got.IsEmpty() {
			t.Fatalf("quantity %d should remove the line", q)
		}
	}

	if got := c.UpdateQuantity("missing", 3); got.Count() != 2 {
		t.Fatalf("unknown id should leave the cart unchanged")
	}
}

func TestRemove(t *testing.T) {
	c := New().Add(testProduct(1, "1.00"), nil).Add(testProduct(2, "1.00"), nil)

	removed := c.Remove("1-")
	if removed.Len() != 1 || removed.Items[0].ID != "2-" {
		t.Fatalf("unexpected cart after remove: %v", removed.Items)
	}

	same := c.Remove("nope")
	if same.Len() != 2 {
		t.Fatalf("removing an unknown id must be a no-op")
	}

	if _, ok := removed.Find("1-"); ok {
		t.Fatalf("removed line still found")
	}
	if !c.Clear().IsEmpty() {
		t.Fatalf("clear should empty the cart")
	}
}

func TestSnapshotAndHydrate(t *testing.T) {
	known := testProduct(1, "5.00")
	lookup := stubLookup{1: known}
	unknown := product.Placeholder(99, "Externo", decimal.RequireFromString("2.50"), "")

	c := New().Add(known, map[string]string{"Tono": "A"}).Add(known, map[string]string{"Tono": "A"}).Add(unknown, nil)
	stored := c.Snapshot(lookup)

	if len(stored) != 2 {
		t.Fatalf("expected two stored lines, got %d", len(stored))
	}
	if stored[0].External != nil {
		t.Fatalf("catalog product should not carry a snapshot")
	}
	if stored[1].External == nil || stored[1].External.Name != "Externo" {
		t.Fatalf("placeholder product should carry a snapshot")
	}

	restored := Hydrate(stored, lookup)
	if restored.Count() != 3 {
		t.Fatalf("expected count 3, got %d", restored.Count())
	}
	if restored.Items[0].Product != known {
		t.Fatalf("catalog product should be resolved by reference")
	}
	if !restored.Items[1].Product.Price.Equal(decimal.RequireFromString("2.5")) {
		t.Fatalf("placeholder price lost")
	}
}

func TestHydrateDropsUnresolvable(t *testing.T) {
	stored := []StoredItem{
		{ProductID: 404, Quantity: 1},
		{ProductID: 1, Quantity: 0},
		{ProductID: 1, Quantity: 2},
	}
	c := Hydrate(stored, stubLookup{1: testProduct(1, "1.00")})
	if c.Len() != 1 {
		t.Fatalf("expected one surviving line, got %d", c.Len())
	}
	if c.Items[0].ID != "1-" {
		t.Fatalf("missing id should be derived, got %q", c.Items[0].ID)
	}
}
