// internal/domain/checkout/entity.go
package checkout

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vellaperfumeria/storefront-backend/internal/domain/pricing"
	"github.com/vellaperfumeria/storefront-backend/internal/pkg/currency"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
)

// Line is one cart line as the external platform sees it: the product or
// variation id and a quantity.
type Line struct {
	ExternalID int64             `json:"id"`
	Quantity   int               `json:"quantity"`
	Variation  map[string]string `json:"variation,omitempty"`
}

// RemoteLine is a cart line read back from the external platform
type RemoteLine struct {
	ExternalID int64
	Quantity   int
	Name       string
	Price      decimal.Decimal
	ImageURL   string
	Variation  map[string]string
}

// Source tells where a restored cart came from
type Source string

const (
	SourcePlatform Source = "platform"
	SourceDemo     Source = "demo"
)

// PushResult counts per-line outcomes of a push. Failures are informative only.
type PushResult struct {
	Pushed int `json:"pushed"`
	Failed int `json:"failed"`
}

// ContactDetails is the customer data collected before handing off
type ContactDetails struct {
	FirstName  string `json:"first_name" binding:"required,max=100"`
	LastName   string `json:"last_name" binding:"required,max=100"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required,min=6,max=20"`
	Address    string `json:"address" binding:"required,max=255"`
	City       string `json:"city" binding:"required,max=100"`
	PostalCode string `json:"postal_code" binding:"required,min=3,max=10"`
	Country    string `json:"country" binding:"required,iso3166_1_alpha2"`
}

// Normalize trims whitespace and upper-cases the country code
func (c *ContactDetails) Normalize() {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Address = strings.TrimSpace(c.Address)
	c.City = strings.TrimSpace(c.City)
	c.PostalCode = strings.TrimSpace(c.PostalCode)
	c.Country = strings.ToUpper(strings.TrimSpace(c.Country))
}

// ValidationError carries field → message pairs for inline display
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "invalid contact details"
}

// SummaryLine is a cart line prepared for the order summary screen
type SummaryLine struct {
	ID              string            `json:"id"`
	ProductID       int64             `json:"product_id"`
	ExternalID      int64             `json:"external_id"`
	Name            string            `json:"name"`
	Brand           string            `json:"brand,omitempty"`
	ImageURL        string            `json:"image_url,omitempty"`
	Quantity        int               `json:"quantity"`
	SelectedVariant map[string]string `json:"selected_variant,omitempty"`
	UnitPrice       decimal.Decimal   `json:"unit_price"`
	LineTotal       decimal.Decimal   `json:"line_total"`
	DisplayTotal    string            `json:"display_total"`
}

// FormattedTotals are the totals rendered in the session currency
type FormattedTotals struct {
	Subtotal              string `json:"subtotal"`
	Discount              string `json:"discount"`
	Shipping              string `json:"shipping"`
	Total                 string `json:"total"`
	AmountForFreeShipping string `json:"amount_for_free_shipping"`
}

// Summary is the checkout summary read model
type Summary struct {
	Lines       []SummaryLine   `json:"lines"`
	Totals      pricing.Totals  `json:"totals"`
	Formatted   FormattedTotals `json:"formatted"`
	Currency    currency.Code   `json:"currency"`
	CheckoutURL string          `json:"checkout_url,omitempty"`
}

// HandoffResult tells the client where to go after the cart was handed off
type HandoffResult struct {
	RedirectURL string         `json:"redirect_url"`
	Push        *PushResult    `json:"push,omitempty"`
	Totals      pricing.Totals `json:"totals"`
}
