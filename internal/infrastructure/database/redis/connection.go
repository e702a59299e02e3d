// internal/infrastructure/database/redis/connection.go
package redis

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vellaperfumeria/storefront-backend/internal/config"
)

// Client wraps the Redis client that backs sessions and rate limiting
type Client struct {
	Redis *redis.Client
	addr  string
}

// PoolStats is the subset of connection pool counters reported by /ready
type PoolStats struct {
	Addr       string `json:"addr"`
	TotalConns uint32 `json:"total_conns"`
	IdleConns  uint32 `json:"idle_conns"`
	Timeouts   uint32 `json:"timeouts"`
}

// NewConnection creates a new Redis connection
func NewConnection(cfg *config.Config) (*Client, error) {
	addr := cfg.GetRedisAddr()

	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,

		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolTimeout:  4 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}

	log.Printf("✅ Redis connection established successfully (%s, db %d)", addr, cfg.Redis.DB)

	return &Client{
		Redis: rdb,
		addr:  addr,
	}, nil
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.Redis.Close()
}

// GetClient returns the Redis client instance
func (c *Client) GetClient() *redis.Client {
	return c.Redis
}

// Health checks the Redis connection health
func (c *Client) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return c.Redis.Ping(ctx).Err()
}

// Stats reports the connection pool counters
func (c *Client) Stats() PoolStats {
	s := c.Redis.PoolStats()
	return PoolStats{
		Addr:       c.addr,
		TotalConns: s.TotalConns,
		IdleConns:  s.IdleConns,
		Timeouts:   s.Timeouts,
	}
}
