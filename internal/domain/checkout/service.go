// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/vellaperfumeria/storefront-backend/internal/config"
	"github.com/vellaperfumeria/storefront-backend/internal/domain/cart"
	"github.com/vellaperfumeria/storefront-backend/internal/domain/product"
	"github.com/vellaperfumeria/storefront-backend/internal/domain/session"
	"github.com/vellaperfumeria/storefront-backend/internal/pkg/currency"
)

// Service handles the handoff of a session cart to the external platform
type Service struct {
	sessions   *session.Service
	bridge     Bridge
	config     *config.Config
	logger     *logrus.Logger
	validate   *validator.Validate
	variations map[int64]variationRef
}

type variationRef struct {
	product     *product.Product
	variantType string
	value       string
}

// NewService creates a new checkout service
func NewService(sessions *session.Service, bridge Bridge, cfg *config.Config, logger *logrus.Logger) *Service {
	v := validator.New()
	v.SetTagName("binding")

	return &Service{
		sessions:   sessions,
		bridge:     bridge,
		config:     cfg,
		logger:     logger,
		validate:   v,
		variations: indexVariations(sessions.Products()),
	}
}

// ValidateContact checks the contact form and returns a *ValidationError
// listing every invalid field.
func (s *Service) ValidateContact(contact *ContactDetails) error {
	contact.Normalize()

	err := s.validate.Struct(contact)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[jsonFieldName(fe.Field())] = fieldMessage(fe)
	}
	return &ValidationError{Fields: fields}
}

// Summary returns the cart lines, totals and formatted amounts of a session
func (s *Service) Summary(ctx context.Context, sessionID string) (*Summary, error) {
	snap, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	lines := make([]SummaryLine, 0, snap.Cart.Len())
	for _, item := range snap.Cart.Items {
		lines = append(lines, SummaryLine{
			ID:              item.ID,
			ProductID:       item.Product.ID,
			ExternalID:      ExternalID(item),
			Name:            item.Product.Name,
			Brand:           item.Product.Brand,
			ImageURL:        item.Product.ImageURL,
			Quantity:        item.Quantity,
			SelectedVariant: item.SelectedVariant,
			UnitPrice:       item.Product.Price,
			LineTotal:       item.LineTotal(),
			DisplayTotal:    currency.MustFormat(item.LineTotal(), snap.Currency),
		})
	}

	summary := &Summary{
		Lines:    lines,
		Totals:   snap.Totals,
		Currency: snap.Currency,
		Formatted: FormattedTotals{
			Subtotal:              currency.MustFormat(snap.Totals.Subtotal, snap.Currency),
			Discount:              currency.MustFormat(snap.Totals.DiscountAmount, snap.Currency),
			Shipping:              currency.MustFormat(snap.Totals.ShippingCost, snap.Currency),
			Total:                 currency.MustFormat(snap.Totals.Total, snap.Currency),
			AmountForFreeShipping: currency.MustFormat(snap.Totals.AmountForFreeShipping, snap.Currency),
		},
	}

	if !snap.Cart.IsEmpty() {
		summary.CheckoutURL, err = BuildAddToCartURL(s.config.Checkout.StoreBaseURL, s.config.Checkout.CartPath, Lines(snap.Cart), snap.ExternalRef)
		if err != nil {
			return nil, err
		}
	}

	return summary, nil
}

// Handoff validates the contact details, pushes the cart to the platform
// session when one is known, takes the handed-off lines out of the local
// cart and returns where to send the customer. Once validation passes it does not fail on platform
// problems.
func (s *Service) Handoff(ctx context.Context, sessionID string, contact *ContactDetails) (*HandoffResult, error) {
	if err := s.ValidateContact(contact); err != nil {
		return nil, err
	}

	snap, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if snap.Cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	lines := Lines(snap.Cart)
	result := &HandoffResult{Totals: snap.Totals}

	if snap.ExternalRef != "" {
		push := s.bridge.Push(ctx, snap.ExternalRef, lines)
		result.Push = &push
		result.RedirectURL = CartURL(s.config.Checkout.StoreBaseURL, s.config.Checkout.CartPath, snap.ExternalRef)
	} else {
		result.RedirectURL, err = BuildAddToCartURL(s.config.Checkout.StoreBaseURL, s.config.Checkout.CartPath, lines, "")
		if err != nil {
			return nil, err
		}
	}

	// The request context may already be done after a slow push; the lines
	// are still released. Lines added during the push are kept.
	if _, err := s.sessions.ReleaseHandedOff(context.WithoutCancel(ctx), sessionID, snap.Cart); err != nil {
		s.logger.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Failed to clear cart after handoff")
	}

	entry := s.logger.WithFields(logrus.Fields{
		"session_id": sessionID,
		"lines":      len(lines),
		"total":      snap.Totals.Total.StringFixed(2),
		"country":    contact.Country,
	})
	if result.Push != nil {
		entry = entry.WithFields(logrus.Fields{"pushed": result.Push.Pushed, "failed": result.Push.Failed})
	}
	entry.Info("Cart handed off to store")

	return result, nil
}

// Restore replaces the local cart with the platform cart of ref and
// remembers ref for the handoff.
func (s *Service) Restore(ctx context.Context, sessionID, ref string) (*session.Snapshot, Source, error) {
	if sessionID == "" {
		return nil, "", session.ErrSessionRequired
	}

	remote, source := s.bridge.FetchSessionCart(ctx, ref)

	snap, err := s.sessions.RestoreCart(ctx, sessionID, s.toCart(remote), ref)
	if err != nil {
		return nil, "", err
	}
	return snap, source, nil
}

// toCart maps platform lines onto catalog products. Variation ids resolve
// to their parent product with the option selected; unknown ids become
// placeholder products. Lines with the same identity are merged.
func (s *Service) toCart(remote []RemoteLine) cart.Cart {
	products := s.sessions.Products()
	c := cart.New()

	for _, line := range remote {
		if line.Quantity < 1 {
			continue
		}

		var p *product.Product
		variant := line.Variation

		if known, ok := products.Lookup(line.ExternalID); ok {
			p = known
		} else if ref, ok := s.variations[line.ExternalID]; ok {
			p = ref.product
			variant = map[string]string{ref.variantType: ref.value}
		} else {
			p = product.Placeholder(line.ExternalID, line.Name, line.Price, line.ImageURL)
		}

		id := cart.Identity(p.ID, variant)
		existing, _ := c.Find(id)
		c = c.Add(p, variant).UpdateQuantity(id, existing.Quantity+line.Quantity)
	}

	return c
}

func indexVariations(products *product.Catalog) map[int64]variationRef {
	index := make(map[int64]variationRef)
	for _, p := range products.All() {
		for variantType, options := range p.Variants {
			for _, opt := range options {
				if opt.VariationID != nil {
					index[*opt.VariationID] = variationRef{product: p, variantType: variantType, value: opt.Value}
				}
			}
		}
	}
	return index
}

var contactFieldNames = map[string]string{
	"FirstName":  "first_name",
	"LastName":   "last_name",
	"Email":      "email",
	"Phone":      "phone",
	"Address":    "address",
	"City":       "city",
	"PostalCode": "postal_code",
	"Country":    "country",
}

func jsonFieldName(field string) string {
	if name, ok := contactFieldNames[field]; ok {
		return name
	}
	return strings.ToLower(field)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Este campo es obligatorio"
	case "email":
		return "Introduce un email válido"
	case "iso3166_1_alpha2":
		return "Introduce un código de país de dos letras"
	case "min":
		return "Demasiado corto (mínimo " + fe.Param() + ")"
	case "max":
		return "Demasiado largo (máximo " + fe.Param() + ")"
	default:
		return "Valor no válido"
	}
}
