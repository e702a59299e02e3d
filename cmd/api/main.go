// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/vellaperfumeria/storefront-backend/internal/config"
	"github.com/vellaperfumeria/storefront-backend/internal/domain/catalog"
	"github.com/vellaperfumeria/storefront-backend/internal/domain/checkout"
	"github.com/vellaperfumeria/storefront-backend/internal/domain/product"
	"github.com/vellaperfumeria/storefront-backend/internal/domain/session"
	"github.com/vellaperfumeria/storefront-backend/internal/infrastructure/database/postgres"
	"github.com/vellaperfumeria/storefront-backend/internal/infrastructure/database/redis"
	"github.com/vellaperfumeria/storefront-backend/internal/interfaces/http"
	"github.com/vellaperfumeria/storefront-backend/internal/interfaces/http/routes"
	"github.com/vellaperfumeria/storefront-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logrusLogger := logger.New(cfg)

	log.Printf("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	ctx := context.Background()
	var checks []http.HealthCheck

	// Connect to database when the catalog lives there
	var gormDB *gorm.DB
	if cfg.Catalog.Source == "postgres" {
		db, err := postgres.NewConnection(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		migration := postgres.NewMigration(db.GetDB())
		if err := migration.RunAutoMigrations(); err != nil {
			log.Fatalf("Database migration failed: %v", err)
		}
		if err := migration.CreateIndexes(); err != nil {
			log.Printf("Warning: Index creation failed: %v", err)
		}

		gormDB = db.GetDB()
		checks = append(checks, http.HealthCheck{Name: "database", Check: db.Health})

		if cfg.Catalog.SeedOnMigrate {
			if err := migration.SeedInitialData(ctx, product.NewService(gormDB, cfg)); err != nil {
				log.Printf("Warning: Data seeding failed: %v", err)
			}
		}
	}

	// Connect to Redis when sessions live there
	var redisClient *goredis.Client
	if cfg.UsesRedis() {
		rc, err := redis.NewConnection(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer func() {
			logrusLogger.WithField("pool", rc.Stats()).Info("Closing Redis connection")
			rc.Close()
		}()

		redisClient = rc.GetClient()
		checks = append(checks, http.HealthCheck{Name: "redis", Check: rc.Health})
	}

	// Load the product catalog
	productService := product.NewService(gormDB, cfg)
	if err := productService.Load(ctx); err != nil {
		log.Fatalf("Failed to load product catalog: %v", err)
	}
	log.Printf("📦 Catalog loaded: %d products from %s", productService.Catalog().Len(), cfg.Catalog.Source)

	book := catalog.DefaultBook()

	var preloader catalog.Preloader = catalog.NoopPreloader{}
	if cfg.Catalog.PreloadEnabled {
		preloader = catalog.NewHTTPPreloader(cfg.Catalog.PreloadTimeout, logrusLogger)
	}

	var store session.Store
	if redisClient != nil {
		store = session.NewRedisStore(redisClient, cfg.Session.TTL)
	} else {
		store = session.NewMemoryStore(cfg.Session.TTL)
	}

	sessionService := session.NewService(store, productService.Catalog(), book, preloader, cfg, logrusLogger)
	bridge := checkout.NewStoreAPIBridge(cfg, logrusLogger)
	checkoutService := checkout.NewService(sessionService, bridge, cfg, logrusLogger)

	log.Println("✅ All systems operational!")

	// Create and start HTTP server
	server := http.NewServer(cfg, logrusLogger, &routes.Services{
		Products: productService,
		Sessions: sessionService,
		Checkout: checkoutService,
	}, redisClient, checks...)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("👋 Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	log.Println("✅ Server shutdown completed")
}
