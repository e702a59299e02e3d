// internal/domain/pricing/totals.go
package pricing

import (
	"github.com/shopspring/decimal"
	"github.com/vellaperfumeria/storefront-backend/internal/domain/cart"
)

// Business rules, in euro cents and percent. Every screen that shows
// totals goes through Calculate so they agree exactly.
const (
	DiscountThresholdCents     = 3500
	DiscountPercent            = 15
	FreeShippingThresholdCents = 3500
	ShippingCostCents          = 600
	GiftThresholdCents         = 5000
)

var (
	DiscountThreshold     = decimal.New(DiscountThresholdCents, -2)
	DiscountRate          = decimal.New(DiscountPercent, -2)
	FreeShippingThreshold = decimal.New(FreeShippingThresholdCents, -2)
	ShippingCost          = decimal.New(ShippingCostCents, -2)
	GiftThreshold         = decimal.New(GiftThresholdCents, -2)
)

// Totals is derived from a cart on every read and never stored
type Totals struct {
	Subtotal              decimal.Decimal `json:"subtotal"`
	DiscountAmount        decimal.Decimal `json:"discount_amount"`
	ShippingCost          decimal.Decimal `json:"shipping_cost"`
	Total                 decimal.Decimal `json:"total"`
	ItemCount             int             `json:"item_count"`
	HasShippingSaver      bool            `json:"has_shipping_saver"`
	GiftEligible          bool            `json:"gift_eligible"`
	AmountForFreeShipping decimal.Decimal `json:"amount_for_free_shipping"`
	AmountForDiscount     decimal.Decimal `json:"amount_for_discount"`
	BeautyPoints          int             `json:"beauty_points"`
}

// Calculate derives subtotal, discount, shipping and total from the cart
// lines. Amounts are exact; rounding is left to display formatting.
func Calculate(items []cart.Item) Totals {
	totals := Totals{
		Subtotal:              decimal.Zero,
		DiscountAmount:        decimal.Zero,
		ShippingCost:          decimal.Zero,
		Total:                 decimal.Zero,
		AmountForFreeShipping: decimal.Zero,
		AmountForDiscount:     decimal.Zero,
	}

	for _, item := range items {
		totals.Subtotal = totals.Subtotal.Add(item.LineTotal())
		totals.ItemCount += item.Quantity
		if item.Product.IsShippingSaver {
			totals.HasShippingSaver = true
		}
		if item.Product.BeautyPoints != nil {
			totals.BeautyPoints += *item.Product.BeautyPoints * item.Quantity
		}
	}

	// An empty order is never charged shipping
	if totals.ItemCount == 0 {
		return totals
	}

	if totals.Subtotal.GreaterThanOrEqual(DiscountThreshold) {
		totals.DiscountAmount = totals.Subtotal.Mul(DiscountRate)
	} else {
		totals.AmountForDiscount = DiscountThreshold.Sub(totals.Subtotal)
	}

	freeShipping := totals.HasShippingSaver || totals.Subtotal.GreaterThanOrEqual(FreeShippingThreshold)
	if !freeShipping {
		totals.ShippingCost = ShippingCost
		totals.AmountForFreeShipping = FreeShippingThreshold.Sub(totals.Subtotal)
	}

	totals.GiftEligible = totals.Subtotal.GreaterThanOrEqual(GiftThreshold)
	totals.Total = totals.Subtotal.Sub(totals.DiscountAmount).Add(totals.ShippingCost)

	return totals
}
