// internal/domain/checkout/deeplink.go
package checkout

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/vellaperfumeria/storefront-backend/internal/domain/cart"
)

// ExternalID returns the id the external platform knows a cart line by:
// the variation id of the first selected option that has one, otherwise
// the product id.
func ExternalID(item cart.Item) int64 {
	types := make([]string, 0, len(item.SelectedVariant))
	for t := range item.SelectedVariant {
		types = append(types, t)
	}
	sort.Strings(types)

	for _, t := range types {
		opt, ok := item.Product.FindVariantOption(t, item.SelectedVariant[t])
		if ok && opt.VariationID != nil {
			return *opt.VariationID
		}
	}
	return item.Product.ID
}

// Lines converts cart lines into platform lines
func Lines(c cart.Cart) []Line {
	lines := make([]Line, 0, c.Len())
	for _, item := range c.Items {
		lines = append(lines, Line{
			ExternalID: ExternalID(item),
			Quantity:   item.Quantity,
			Variation:  item.SelectedVariant,
		})
	}
	return lines
}

// BuildAddToCartURL builds the platform's add-to-cart deep link.
//
// One line:      <base><path>?add-to-cart=<id>&quantity=<n>
// Several lines: <base><path>?add-to-cart=<id>,<id>,... with each id
// repeated once per unit. A non-empty ref is appended as &v=<ref>.
func BuildAddToCartURL(baseURL, path string, lines []Line, ref string) (string, error) {
	if len(lines) == 0 {
		return "", ErrEmptyCart
	}

	base, err := url.Parse(strings.TrimRight(baseURL, "/") + path)
	if err != nil {
		return "", fmt.Errorf("invalid store URL: %w", err)
	}

	var query string
	if len(lines) == 1 {
		query = fmt.Sprintf("add-to-cart=%d&quantity=%d", lines[0].ExternalID, lines[0].Quantity)
	} else {
		ids := make([]string, 0, len(lines))
		for _, l := range lines {
			for i := 0; i < l.Quantity; i++ {
				ids = append(ids, strconv.FormatInt(l.ExternalID, 10))
			}
		}
		query = "add-to-cart=" + strings.Join(ids, ",")
	}

	if ref != "" {
		query += "&v=" + url.QueryEscape(ref)
	}

	base.RawQuery = query
	return base.String(), nil
}

// CartURL is the platform cart page for a primed session
func CartURL(baseURL, path, ref string) string {
	u := strings.TrimRight(baseURL, "/") + path
	if ref == "" {
		return u
	}
	return u + "?v=" + url.QueryEscape(ref)
}
