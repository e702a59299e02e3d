// internal/domain/checkout/demo.go
package checkout

import "github.com/shopspring/decimal"

// DemoSessionRef is the platform session the demo cart is modelled on
const DemoSessionRef = "12470fe406d4"

// DemoLines is the fixed cart shown when the platform cannot be reached:
// two Garnier Olia in Rojo Intenso and one Duologi.
func DemoLines() []RemoteLine {
	return []RemoteLine{
		{
			ExternalID: 90011,
			Quantity:   2,
			Name:       "Tinte Permanente Garnier Olia",
			Price:      decimal.RequireFromString("8.95"),
			Variation:  map[string]string{"Tono": "Rojo Intenso 6.60"},
		},
		{
			ExternalID: 44961,
			Quantity:   1,
			Name:       "Duologi Champú y Acondicionador Reparación Intensa",
			Price:      decimal.RequireFromString("12.99"),
		},
	}
}
