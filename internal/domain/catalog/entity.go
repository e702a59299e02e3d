// internal/domain/catalog/entity.go
package catalog

import "github.com/vellaperfumeria/storefront-backend/internal/domain/product"

// Position is a point on a page image in percent of its width (X) and height (Y)
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Valid reports whether both coordinates are within 0–100
func (p Position) Valid() bool {
	return p.X >= 0 && p.X <= 100 && p.Y >= 0 && p.Y <= 100
}

// Hotspot links a point on a printed catalog page to a product
type Hotspot struct {
	ProductID int64    `json:"product_id"`
	Position  Position `json:"position"`
}

// Page is one scanned catalog page. Number is 1-based as printed.
type Page struct {
	Number   int       `json:"number"`
	ImageURL string    `json:"image_url"`
	Hotspots []Hotspot `json:"hotspots"`
}

// ResolvedHotspot is a hotspot whose product exists in the catalog.
// Index is the hotspot's position in the page definition.
type ResolvedHotspot struct {
	Index    int              `json:"index"`
	Position Position         `json:"position"`
	Product  *product.Product `json:"product"`
}
