// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"context"
	"fmt"
	"log"

	"github.com/vellaperfumeria/storefront-backend/internal/domain/product"
	"gorm.io/gorm"
)

// Migration handles database migrations for the product catalog
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations creates or updates the catalog tables
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	models := []interface{}{
		&product.Product{},
	}

	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates the lookup indexes used by catalog filters
func (m *Migration) CreateIndexes() error {
	log.Println("🔄 Creating additional database indexes...")

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_products_category ON products(category)",
		"CREATE INDEX IF NOT EXISTS idx_products_brand ON products(brand)",
		"CREATE INDEX IF NOT EXISTS idx_products_price ON products(price)",
	}

	successCount := 0
	failCount := 0

	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			log.Printf("⚠️ Failed to create index: %v", err)
			failCount++
		} else {
			successCount++
		}
	}

	log.Printf("✅ Created %d indexes successfully (%d failed)", successCount, failCount)
	return nil
}

// SeedInitialData inserts the built-in product records that are missing
func (m *Migration) SeedInitialData(ctx context.Context, products *product.Service) error {
	log.Println("🌱 Seeding product catalog...")

	inserted, err := products.Seed(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	log.Printf("✅ Seeded %d products", inserted)
	return nil
}

// DropAllTables removes the catalog tables
func (m *Migration) DropAllTables() error {
	log.Println("⚠️ Dropping all tables...")

	if err := m.db.Migrator().DropTable(&product.Product{}); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}

	log.Println("✅ All tables dropped")
	return nil
}
