// internal/domain/product/data.go
package product

import "github.com/shopspring/decimal"

func eur(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func regular(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func variation(id int64) *int64 {
	return &id
}

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}

// StaticProducts returns a fresh copy of the compiled-in product dataset,
// taken from the current printed catalog.
func StaticProducts() []Product {
	return []Product{
		{
			ID:          48075,
			Name:        "Tarjeta + Muestra Eau de Parfum Divine Dark Velvet",
			Brand:       "DIVINE",
			Price:       eur("0.50"),
			ImageURL:    "https://i.imgur.com/8x2M6C6.png",
			Description: "Prueba la nueva y seductora fragancia Divine Dark Velvet con esta muestra de 2ml.",
			Stock:       100,
			Category:    CategoryPerfume,
		},
		{
			ID:           49145,
			Name:         "Collar Divine Dark Velvet",
			Brand:        "DIVINE",
			Price:        eur("26.99"),
			RegularPrice: regular("38.00"),
			ImageURL:     "https://i.imgur.com/e7pYwWf.png",
			Description:  "Un llamativo collar con eslabones dorados y brillantes detalles de cristal. El complemento perfecto para tu look de noche. Edición Limitada.",
			Stock:        20,
			Category:     CategoryAccessories,
		},
		{
			ID:           46801,
			Name:         "Eau de Parfum Divine Dark Velvet",
			Brand:        "DIVINE",
			Price:        eur("24.99"),
			RegularPrice: regular("42.00"),
			ImageURL:     "https://i.imgur.com/N1z2x3w.png",
			Description:  "Una fragancia floral amaderada con una alta concentración aromática. Notas de Ciruela oscura, Rosa Black Baccara y Pachuli.",
			Stock:        18,
			Category:     CategoryPerfume,
			Rating:       floatPtr(4.8),
			ReviewCount:  intPtr(112),
			BeautyPoints: intPtr(25),
		},
		{
			ID:           38497,
			Name:         "Eau de Parfum Divine",
			Brand:        "DIVINE",
			Price:        eur("24.99"),
			RegularPrice: regular("42.00"),
			ImageURL:     "https://i.imgur.com/L4yqY4x.png",
			Description:  "Radiante fragancia de flores frescas con notas de Violeta, Lirio y Fresia, y un fondo de Madera de Sándalo. Elegante y sofisticado.",
			Stock:        25,
			Category:     CategoryPerfume,
			Rating:       floatPtr(4.7),
			ReviewCount:  intPtr(254),
			BeautyPoints: intPtr(25),
		},
		{
			ID:           42041,
			Name:         "Spray Eau de Parfum Divine - Tamaño Viaje",
			Brand:        "DIVINE",
			Price:        eur("7.99"),
			RegularPrice: regular("17.00"),
			ImageURL:     "https://i.imgur.com/uC58GMA.png",
			Description:  "Tu fragancia favorita Divine en un práctico formato de viaje de 8ml para que la lleves siempre contigo.",
			Stock:        40,
			Category:     CategoryPerfume,
		},
		{
			ID:           47016,
			Name:         "Crema Corporal Perfumada Divine",
			Brand:        "DIVINE",
			Price:        eur("5.99"),
			RegularPrice: regular("15.00"),
			ImageURL:     "https://i.imgur.com/d9T6d9H.png",
			Description:  "Hidrata tu piel y perfúmala con el aroma radiante de Divine. Crema corporal de 250ml.",
			Stock:        30,
			Category:     CategoryPersonalCare,
		},
		{
			ID:           47828,
			Name:         "Brocha Blush & Glow",
			Brand:        "GIORDANI GOLD",
			Price:        eur("3.49"),
			RegularPrice: regular("8.00"),
			ImageURL:     "https://i.imgur.com/T0bSg0B.png",
			Description:  "Brocha para colorete y iluminador fabricada con PBT, aluminio y madera. Tamaño: 16cm.",
			Stock:        50,
			Category:     CategoryAccessories,
		},
		{
			ID:           46901,
			Name:         "Perlas con Serum Giordani Gold - Edición Especial",
			Brand:        "GIORDANI GOLD",
			Price:        eur("18.99"),
			RegularPrice: regular("32.00"),
			ImageURL:     "https://i.imgur.com/gS2Y0fT.png",
			Description:  "Las icónicas Perlas Giordani Gold vuelven en el tono Cherry Touch. Disfruta de una textura aterciopelada y un acabado duradero.",
			Stock:        30,
			Category:     CategoryMakeup,
		},
		{
			ID:           47949,
			Name:         "Máscara 5 en 1 Wonder Lash Prom Queen THE ONE",
			Brand:        "THE ONE",
			Price:        eur("3.99"),
			RegularPrice: regular("12.00"),
			ImageURL:     "https://i.imgur.com/P1F9a1k.png",
			Description:  "La máscara de pestañas 5 en 1 para un look de reina. Aporta volumen, longitud, curvatura, definición y cuidado. Edición Limitada.",
			Stock:        40,
			Category:     CategoryMakeup,
		},
		{
			ID:          153753,
			Name:        "Lote Essense & Co. Flor de Loto y Madera de Cedro",
			Brand:       "Essense & Co.",
			Price:       eur("19.99"),
			ImageURL:    "https://i.imgur.com/eGkYg2p.png",
			Description: "Lote compuesto por Jabón Líquido y Loción Hidratante para Manos y Cuerpo con Flor de Loto y Madera de Cedro. 300ml cada uno.",
			Stock:       20,
			Category:    CategoryPersonalCare,
		},
		{
			ID:           90001,
			Name:         "Tinte Permanente Garnier Olia",
			Brand:        "GARNIER",
			Price:        eur("8.95"),
			RegularPrice: regular("10.95"),
			ImageURL:     "https://i.imgur.com/olia-base.png",
			Description:  "Coloración permanente sin amoniaco, enriquecida con aceites florales. Cobertura total de canas.",
			Stock:        60,
			Category:     CategoryHair,
			Variants: map[string][]VariantOption{
				"Tono": {
					{Value: "Rojo Intenso 6.60", ColorCode: "#8B1A1A", VariationID: variation(90011)},
					{Value: "Castaño Oscuro 3.0", ColorCode: "#3B2219", VariationID: variation(90012)},
					{Value: "Rubio Claro 8.0", ColorCode: "#C9A66B", VariationID: variation(90013)},
				},
			},
		},
		{
			ID:          44961,
			Name:        "Duologi Champú y Acondicionador Reparación Intensa",
			Brand:       "DUOLOGI",
			Price:       eur("12.99"),
			ImageURL:    "https://i.imgur.com/duologi.png",
			Description: "Dúo de cuidado capilar para cabello dañado. Limpia con suavidad y repara desde la primera aplicación.",
			Stock:       35,
			Category:    CategoryHair,
		},
		{
			ID:              41062,
			Name:            "Crema de Manos Tender Care - Envío Gratis",
			Brand:           "TENDER CARE",
			Price:           eur("2.99"),
			RegularPrice:    regular("4.50"),
			ImageURL:        "https://i.imgur.com/tendercare.png",
			Description:     "Bálsamo multiusos con cera de abeja. Añádelo a tu pedido y el envío es gratis.",
			Stock:           80,
			Category:        CategorySkincare,
			IsShippingSaver: true,
		},
		{
			ID:           43231,
			Name:         "Wellness Omega 3",
			Brand:        "WELLNESS",
			Price:        eur("21.00"),
			ImageURL:     "https://i.imgur.com/omega3.png",
			Description:  "Complemento alimenticio con ácidos grasos omega 3 de origen marino. 60 cápsulas.",
			Stock:        0,
			Category:     CategoryWellness,
			BeautyPoints: intPtr(15),
		},
		{
			ID:           44015,
			Name:         "Eau de Toilette Giordani Gold Man",
			Brand:        "GIORDANI GOLD",
			Price:        eur("19.99"),
			RegularPrice: regular("36.00"),
			ImageURL:     "https://i.imgur.com/ggman.png",
			Description:  "Fragancia masculina amaderada y especiada con notas de bergamota y vetiver. 75ml.",
			Stock:        22,
			Category:     CategoryMen,
			Variants: map[string][]VariantOption{
				"Tamaño": {
					{Value: "75ml"},
					{Value: "30ml", VariationID: variation(44016)},
				},
			},
		},
	}
}

// FeaturedIDs is the home page selection
var FeaturedIDs = []int64{46801, 38497, 49145, 46901}
