// internal/domain/session/entity.go
package session

import (
	"errors"
	"time"

	"github.com/vellaperfumeria/storefront-backend/internal/domain/cart"
	"github.com/vellaperfumeria/storefront-backend/internal/domain/catalog"
	"github.com/vellaperfumeria/storefront-backend/internal/domain/pricing"
	"github.com/vellaperfumeria/storefront-backend/internal/pkg/currency"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionRequired = errors.New("session ID required")
	ErrUnknownView     = errors.New("unknown view")
	ErrInvalidVariant  = errors.New("invalid variant selection")
	ErrHotspotNotFound = errors.New("hotspot not found")

	// ErrHotspotNotVisible is returned for hotspots on a page the visitor
	// is not viewing, or whose image is still loading
	ErrHotspotNotVisible = errors.New("hotspot not visible")
)

// View is the storefront screen the visitor is on
type View string

const (
	ViewHome          View = "home"
	ViewProducts      View = "products"
	ViewProductDetail View = "productDetail"
	ViewOffers        View = "offers"
	ViewCatalog       View = "catalog"
	ViewCheckout      View = "checkout"
	ViewBlog          View = "blog"
	ViewBlogPost      View = "blogPost"
	ViewAbout         View = "about"
	ViewContact       View = "contact"
)

var views = map[View]bool{
	ViewHome:          true,
	ViewProducts:      true,
	ViewProductDetail: true,
	ViewOffers:        true,
	ViewCatalog:       true,
	ViewCheckout:      true,
	ViewBlog:          true,
	ViewBlogPost:      true,
	ViewAbout:         true,
	ViewContact:       true,
}

// IsValid reports whether v is a known screen
func (v View) IsValid() bool {
	return views[v]
}

// State is the per-visitor application state. It is only changed through
// the Service's named operations.
type State struct {
	ID           string               `json:"id"`
	Cart         []cart.StoredItem    `json:"cart"`
	Currency     currency.Code        `json:"currency"`
	CartOpen     bool                 `json:"cart_open"`
	View         View                 `json:"view"`
	ViewParam    string               `json:"view_param,omitempty"`
	Navigator    catalog.Navigator    `json:"navigator"`
	Acknowledged map[string]time.Time `json:"acknowledged,omitempty"`
	ExternalRef  string               `json:"external_ref,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

// Snapshot is the read model returned by every operation: the state with
// the cart resolved against the catalog and its totals derived.
type Snapshot struct {
	ID          string            `json:"id"`
	Cart        cart.Cart         `json:"cart"`
	Count       int               `json:"count"`
	Totals      pricing.Totals    `json:"totals"`
	Currency    currency.Code     `json:"currency"`
	CartOpen    bool              `json:"cart_open"`
	View        View              `json:"view"`
	ViewParam   string            `json:"view_param,omitempty"`
	Navigator   catalog.Navigator `json:"navigator"`
	ExternalRef string            `json:"external_ref,omitempty"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
