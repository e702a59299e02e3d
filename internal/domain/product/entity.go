// internal/domain/product/entity.go
package product

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductNotFound is returned when an id does not resolve in the catalog
	ErrProductNotFound = errors.New("product not found")
	ErrUnknownCategory = errors.New("unknown category")
)

// Category is the closed set of storefront sections
type Category string

const (
	CategoryPerfume      Category = "perfume"
	CategoryMakeup       Category = "makeup"
	CategorySkincare     Category = "skincare"
	CategoryHair         Category = "hair"
	CategoryPersonalCare Category = "personal-care"
	CategoryWellness     Category = "wellness"
	CategoryAccessories  Category = "accessories"
	CategoryMen          Category = "men"
)

// Categories lists every valid category in display order
var Categories = []Category{
	CategoryPerfume,
	CategoryMakeup,
	CategorySkincare,
	CategoryHair,
	CategoryPersonalCare,
	CategoryWellness,
	CategoryAccessories,
	CategoryMen,
}

// IsValid reports whether c belongs to the closed category set
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// VariantOption is one selectable value of a variant type (a shade, a size...)
type VariantOption struct {
	Value       string `json:"value"`
	ColorCode   string `json:"color_code,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	VariationID *int64 `json:"variation_id,omitempty"` // id of this option on the external platform
}

// Product represents a catalog product. Prices are in EUR.
type Product struct {
	ID              int64                      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name            string                     `gorm:"not null;size:255" json:"name"`
	Brand           string                     `gorm:"size:120;index" json:"brand"`
	Price           decimal.Decimal            `gorm:"type:numeric(10,2);not null" json:"price"`
	RegularPrice    *decimal.Decimal           `gorm:"type:numeric(10,2)" json:"regular_price,omitempty"`
	ImageURL        string                     `gorm:"size:500" json:"image_url"`
	Description     string                     `gorm:"type:text" json:"description"`
	Stock           int                        `gorm:"not null;default:0" json:"stock"`
	Category        Category                   `gorm:"size:40;index" json:"category"`
	Variants        map[string][]VariantOption `gorm:"serializer:json;type:jsonb" json:"variants,omitempty"`
	Rating          *float64                   `json:"rating,omitempty"`
	ReviewCount     *int                       `json:"review_count,omitempty"`
	IsShippingSaver bool                       `gorm:"default:false" json:"is_shipping_saver,omitempty"`
	BeautyPoints    *int                       `json:"beauty_points,omitempty"`
}

// TableName overrides the table name
func (Product) TableName() string {
	return "products"
}

// Business methods for Product

func (p *Product) IsInStock() bool {
	return p.Stock > 0
}

func (p *Product) IsDiscounted() bool {
	return p.RegularPrice != nil && p.RegularPrice.GreaterThan(p.Price)
}

// DiscountPercentage returns the whole-number markdown against the regular price
func (p *Product) DiscountPercentage() int {
	if !p.IsDiscounted() {
		return 0
	}
	off := p.RegularPrice.Sub(p.Price).Mul(decimal.NewFromInt(100)).Div(*p.RegularPrice)
	return int(off.IntPart())
}

// FindVariantOption looks up an option by variant type and display value
func (p *Product) FindVariantOption(variantType, value string) (VariantOption, bool) {
	for _, opt := range p.Variants[variantType] {
		if opt.Value == value {
			return opt, true
		}
	}
	return VariantOption{}, false
}

// Validate checks the static data invariants of a product record
func (p *Product) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("product id must be positive, got %d", p.ID)
	}
	if p.Name == "" {
		return fmt.Errorf("product %d: name is required", p.ID)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("product %d: price cannot be negative", p.ID)
	}
	if p.RegularPrice != nil && !p.RegularPrice.GreaterThan(p.Price) {
		return fmt.Errorf("product %d: regular price %s must be above price %s", p.ID, p.RegularPrice, p.Price)
	}
	if p.Stock < 0 {
		return fmt.Errorf("product %d: stock cannot be negative", p.ID)
	}
	if !p.Category.IsValid() {
		return fmt.Errorf("product %d: unknown category %q", p.ID, p.Category)
	}
	return nil
}

// Placeholder builds the minimal product used for a line the external
// platform knows about but the local catalog does not.
func Placeholder(id int64, name string, price decimal.Decimal, imageURL string) *Product {
	if name == "" {
		name = fmt.Sprintf("Producto %d", id)
	}
	return &Product{
		ID:       id,
		Name:     name,
		Price:    price,
		ImageURL: imageURL,
	}
}
