// internal/pkg/currency/currency.go
package currency

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ErrUnsupportedCurrency is returned for codes outside the closed display set
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// Code is an ISO 4217 currency code
type Code string

const (
	EUR Code = "EUR"
	USD Code = "USD"
	GBP Code = "GBP"
)

// Canonical is the currency every catalog price is stored in
const Canonical = EUR

// Currency describes how a supported currency is converted and displayed
type Currency struct {
	Code        Code            `json:"code"`
	Rate        decimal.Decimal `json:"rate"`
	Symbol      string          `json:"symbol"`
	Locale      string          `json:"locale"`
	SymbolFirst bool            `json:"-"`

	unit currency.Unit
	tag  language.Tag
}

var supported = []Currency{
	newCurrency(EUR, "1", "€", "es-ES", false),
	newCurrency(USD, "1.08", "$", "en-US", true),
	newCurrency(GBP, "0.85", "£", "en-GB", true),
}

func newCurrency(code Code, rate, symbol, locale string, symbolFirst bool) Currency {
	return Currency{
		Code:        code,
		Rate:        decimal.RequireFromString(rate),
		Symbol:      symbol,
		Locale:      locale,
		SymbolFirst: symbolFirst,
		unit:        currency.MustParseISO(string(code)),
		tag:         language.MustParse(locale),
	}
}

// Scale is the number of fraction digits amounts are shown with, from
// the ISO 4217 unit's standard rounding
func (c Currency) Scale() int {
	scale, _ := currency.Standard.Rounding(c.unit)
	return scale
}

// Supported returns the display currencies in menu order
func Supported() []Currency {
	out := make([]Currency, len(supported))
	copy(out, supported)
	return out
}

// Parse normalizes a code and checks it is supported
func Parse(code string) (Code, error) {
	c, err := lookup(Code(strings.ToUpper(strings.TrimSpace(code))))
	if err != nil {
		return "", err
	}
	return c.Code, nil
}

// Convert turns a canonical (EUR) amount into the target currency.
// The result is not rounded.
func Convert(amount decimal.Decimal, code Code) (decimal.Decimal, error) {
	c, err := lookup(code)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(c.Rate), nil
}

// Format converts a canonical amount and renders it for the currency's locale,
// e.g. "24,99 €", "$26.99" or "£21.24".
func Format(amount decimal.Decimal, code Code) (string, error) {
	c, err := lookup(code)
	if err != nil {
		return "", err
	}

	scale := c.Scale()
	converted := amount.Mul(c.Rate).Round(int32(scale))
	sign := ""
	if converted.IsNegative() {
		sign = "-"
		converted = converted.Neg()
	}

	value, _ := converted.Float64()
	digits := message.NewPrinter(c.tag).Sprint(number.Decimal(value, number.Scale(scale)))

	if c.SymbolFirst {
		return sign + c.Symbol + digits, nil
	}
	return sign + digits + " " + c.Symbol, nil
}

// MustFormat is Format for codes already validated with Parse
func MustFormat(amount decimal.Decimal, code Code) string {
	s, err := Format(amount, code)
	if err != nil {
		panic(err)
	}
	return s
}

func lookup(code Code) (Currency, error) {
	for _, c := range supported {
		if c.Code == code {
			return c, nil
		}
	}
	return Currency{}, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, string(code))
}
