// internal/domain/product/service.go
package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/vellaperfumeria/storefront-backend/internal/config"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Service loads the product catalog and answers read queries against it
type Service struct {
	db      *gorm.DB
	config  *config.Config
	catalog *Catalog
}

// NewService creates a new product service. db may be nil when the catalog
// source is static.
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// NewServiceWithCatalog wraps an already built catalog
func NewServiceWithCatalog(catalog *Catalog) *Service {
	return &Service{catalog: catalog}
}

// ProductListRequest represents product list query parameters
type ProductListRequest struct {
	Category   string `form:"category"`
	Search     string `form:"q"`
	Discounted bool   `form:"discounted"`
}

// Load builds the catalog from the configured source. It is called once at startup.
func (s *Service) Load(ctx context.Context) error {
	var products []Product

	switch s.config.Catalog.Source {
	case "postgres":
		if s.db == nil {
			return errors.New("postgres catalog source requires a database connection")
		}
		if err := s.db.WithContext(ctx).Order("id ASC").Find(&products).Error; err != nil {
			return fmt.Errorf("failed to load products: %w", err)
		}
		if len(products) == 0 {
			return errors.New("products table is empty; run the seed first")
		}
	default:
		products = StaticProducts()
	}

	catalog, err := NewCatalog(products)
	if err != nil {
		return fmt.Errorf("failed to build catalog: %w", err)
	}

	s.catalog = catalog
	return nil
}

// Seed inserts the static dataset into the products table, leaving
// existing rows untouched.
func (s *Service) Seed(ctx context.Context) (int64, error) {
	if s.db == nil {
		return 0, errors.New("seeding requires a database connection")
	}

	products := StaticProducts()
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(&products)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to seed products: %w", result.Error)
	}

	return result.RowsAffected, nil
}

// Catalog returns the loaded catalog
func (s *Service) Catalog() *Catalog {
	return s.catalog
}

// GetProducts applies the list filters to the catalog
func (s *Service) GetProducts(req *ProductListRequest) ([]*Product, error) {
	var products []*Product

	switch {
	case req.Search != "":
		products = s.catalog.Search(req.Search)
	case req.Discounted:
		products = s.catalog.Discounted()
	default:
		products = s.catalog.All()
	}

	if req.Category != "" {
		category := Category(req.Category)
		if !category.IsValid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, req.Category)
		}
		filtered := products[:0]
		for _, p := range products {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	if req.Discounted && req.Search != "" {
		filtered := products[:0]
		for _, p := range products {
			if p.IsDiscounted() {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	return products, nil
}

// GetProduct retrieves a single product by ID
func (s *Service) GetProduct(id int64) (*Product, error) {
	return s.catalog.Get(id)
}

// GetFeatured returns the home page selection
func (s *Service) GetFeatured() []*Product {
	return s.catalog.Featured(FeaturedIDs)
}
