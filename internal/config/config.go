// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for our application
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Catalog  CatalogConfig
	Session  SessionConfig
	Checkout CheckoutConfig
	Security SecurityConfig
	Logging  LoggingConfig
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name        string
	Version     string
	Environment string
	Debug       bool
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RequestTimeout time.Duration
}

// DatabaseConfig contains database connection configuration.
// Only used when the catalog source is "postgres".
type DatabaseConfig struct {
	Host         string
	Port         string
	Name         string
	User         string
	Password     string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
}

// RedisConfig contains Redis configuration
type RedisConfig struct {
	Host         string
	Port         string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
}

// CatalogConfig controls where products come from and how catalog page
// images are preloaded.
type CatalogConfig struct {
	Source         string // static | postgres
	SeedOnMigrate  bool
	PreloadEnabled bool
	PreloadTimeout time.Duration
}

// SessionConfig controls per-visitor state storage
type SessionConfig struct {
	Store           string // redis | memory
	TTL             time.Duration
	CookieName      string
	DefaultCurrency string
}

// CheckoutConfig contains the external commerce platform endpoints
type CheckoutConfig struct {
	StoreBaseURL string
	CartPath     string
	APIBaseURL   string
	ItemTimeout  time.Duration
	FetchTimeout time.Duration
}

// SecurityConfig contains security-related configuration
type SecurityConfig struct {
	RateLimitPerMinute int
	CORSAllowedOrigins []string
	CORSAllowedMethods []string
	CORSAllowedHeaders []string
	TrustedProxies     []string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	config := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Vellaperfumeria Storefront"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
			Debug:       getEnvAsBool("APP_DEBUG", true),
		},
		Server: ServerConfig{
			Port:           getEnv("APP_PORT", "8080"),
			ReadTimeout:    getEnvAsDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:   getEnvAsDuration("SERVER_WRITE_TIMEOUT", 60*time.Second),
			IdleTimeout:    getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			RequestTimeout: getEnvAsDuration("SERVER_REQUEST_TIMEOUT", 45*time.Second),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			Name:         getEnv("DB_NAME", "storefront_db"),
			User:         getEnv("DB_USER", "storefront_user"),
			Password:     getEnv("DB_PASSWORD", "storefront_password"),
			SSLMode:      getEnv("DB_SSL_MODE", "disable"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 2),
			MaxLifetime:  getEnvAsDuration("DB_MAX_LIFETIME", 300*time.Second),
		},
		Redis: RedisConfig{
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getEnvAsInt("REDIS_DB", 0),
			PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 2),
		},
		Catalog: CatalogConfig{
			Source:         getEnv("CATALOG_SOURCE", "static"),
			SeedOnMigrate:  getEnvAsBool("CATALOG_SEED", true),
			PreloadEnabled: getEnvAsBool("CATALOG_PRELOAD", true),
			PreloadTimeout: getEnvAsDuration("CATALOG_PRELOAD_TIMEOUT", 10*time.Second),
		},
		Session: SessionConfig{
			Store:           getEnv("SESSION_STORE", "redis"),
			TTL:             getEnvAsDuration("SESSION_TTL", 24*time.Hour),
			CookieName:      getEnv("SESSION_COOKIE", "session_id"),
			DefaultCurrency: getEnv("DEFAULT_CURRENCY", "EUR"),
		},
		Checkout: CheckoutConfig{
			StoreBaseURL: getEnv("STORE_BASE_URL", "https://vellaperfumeria.com"),
			CartPath:     getEnv("STORE_CART_PATH", "/carrito/"),
			APIBaseURL:   getEnv("STORE_API_BASE_URL", "https://vellaperfumeria.com/wp-json/wc/store/v1"),
			ItemTimeout:  getEnvAsDuration("CHECKOUT_ITEM_TIMEOUT", 4*time.Second),
			FetchTimeout: getEnvAsDuration("CHECKOUT_FETCH_TIMEOUT", 5*time.Second),
		},
		Security: SecurityConfig{
			RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 120),
			CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173", "https://vellaperfumeria.com"}),
			CORSAllowedMethods: getEnvAsSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			CORSAllowedHeaders: getEnvAsSlice("CORS_ALLOWED_HEADERS", []string{"Origin", "Content-Type", "Accept", "X-Session-ID"}),
			TrustedProxies:     getEnvAsSlice("TRUSTED_PROXIES", []string{}),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("APP_PORT is required")
	}

	switch c.Catalog.Source {
	case "static":
	case "postgres":
		if c.Database.Host == "" || c.Database.Name == "" || c.Database.User == "" {
			return fmt.Errorf("DB_HOST, DB_NAME and DB_USER are required when CATALOG_SOURCE=postgres")
		}
	default:
		return fmt.Errorf("CATALOG_SOURCE must be static or postgres, got %q", c.Catalog.Source)
	}

	switch c.Session.Store {
	case "memory":
	case "redis":
		if c.Redis.Host == "" {
			return fmt.Errorf("REDIS_HOST is required when SESSION_STORE=redis")
		}
	default:
		return fmt.Errorf("SESSION_STORE must be redis or memory, got %q", c.Session.Store)
	}

	switch strings.ToUpper(c.Session.DefaultCurrency) {
	case "EUR", "USD", "GBP":
	default:
		return fmt.Errorf("DEFAULT_CURRENCY %q is not supported", c.Session.DefaultCurrency)
	}

	if c.Checkout.StoreBaseURL == "" {
		return fmt.Errorf("STORE_BASE_URL is required")
	}
	if c.Checkout.ItemTimeout <= 0 || c.Checkout.FetchTimeout <= 0 {
		return fmt.Errorf("checkout timeouts must be positive")
	}

	return nil
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// UsesRedis reports whether any component needs a Redis connection
func (c *Config) UsesRedis() bool {
	return c.Session.Store == "redis"
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}
