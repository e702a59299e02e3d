package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Server:   ServerConfig{Port: "8080"},
		Redis:    RedisConfig{Host: "localhost", Port: "6379"},
		Catalog:  CatalogConfig{Source: "static"},
		Session:  SessionConfig{Store: "redis", DefaultCurrency: "EUR"},
		Checkout: CheckoutConfig{StoreBaseURL: "https://shop.example", ItemTimeout: time.Second, FetchTimeout: time.Second},
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("SESSION_STORE", "memory")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("expected default port, got %q", cfg.Server.Port)
	}
	if cfg.Checkout.CartPath != "/carrito/" {
		t.Fatalf("unexpected cart path %q", cfg.Checkout.CartPath)
	}
	if cfg.Session.DefaultCurrency != "EUR" {
		t.Fatalf("unexpected default currency %q", cfg.Session.DefaultCurrency)
	}
	if cfg.UsesRedis() {
		t.Fatalf("memory session store should not require redis")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SESSION_STORE", "memory")
	t.Setenv("CHECKOUT_ITEM_TIMEOUT", "1500ms")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Checkout.ItemTimeout != 1500*time.Millisecond {
		t.Fatalf("expected 1.5s item timeout, got %v", cfg.Checkout.ItemTimeout)
	}
	if len(cfg.Security.CORSAllowedOrigins) != 2 || cfg.Security.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins: %v", cfg.Security.CORSAllowedOrigins)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing port", mutate: func(c *Config) { c.Server.Port = "" }, wantErr: true},
		{name: "unknown catalog source", mutate: func(c *Config) { c.Catalog.Source = "csv" }, wantErr: true},
		{name: "postgres without host", mutate: func(c *Config) { c.Catalog.Source = "postgres" }, wantErr: true},
		{name: "postgres configured", mutate: func(c *Config) {
			c.Catalog.Source = "postgres"
			c.Database = DatabaseConfig{Host: "db", Name: "shop", User: "shop"}
		}},
		{name: "unknown session store", mutate: func(c *Config) { c.Session.Store = "file" }, wantErr: true},
		{name: "redis without host", mutate: func(c *Config) { c.Redis.Host = "" }, wantErr: true},
		{name: "memory store ignores redis", mutate: func(c *Config) {
			c.Session.Store = "memory"
			c.Redis.Host = ""
		}},
		{name: "unsupported currency", mutate: func(c *Config) { c.Session.DefaultCurrency = "JPY" }, wantErr: true},
		{name: "lowercase currency", mutate: func(c *Config) { c.Session.DefaultCurrency = "usd" }},
		{name: "zero item timeout", mutate: func(c *Config) { c.Checkout.ItemTimeout = 0 }, wantErr: true},
		{name: "missing store url", mutate: func(c *Config) { c.Checkout.StoreBaseURL = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestDSNAndRedisAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Database = DatabaseConfig{Host: "db", Port: "5433", User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	want := "host=db port=5433 user=u password=p dbname=n sslmode=disable"
	if got := cfg.GetDatabaseDSN(); got != want {
		t.Fatalf("dsn = %q, want %q", got, want)
	}
	if got := cfg.GetRedisAddr(); got != "localhost:6379" {
		t.Fatalf("redis addr = %q", got)
	}
}
