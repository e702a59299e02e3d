// internal/domain/catalog/preload.go
package catalog

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Preloader warms page images ahead of navigation. It is purely an
// optimisation: failures must never affect navigation.
type Preloader interface {
	Preload(ctx context.Context, urls []string) int
}

// NoopPreloader is used when preloading is disabled
type NoopPreloader struct{}

// Preload does nothing
func (NoopPreloader) Preload(context.Context, []string) int { return 0 }

// HTTPPreloader requests page images in parallel so the CDN edge (and any
// cache in front of this service) holds them before the client asks.
type HTTPPreloader struct {
	client  *http.Client
	timeout time.Duration
	logger  *logrus.Logger
}

// NewHTTPPreloader creates a preloader with a per-image timeout
func NewHTTPPreloader(timeout time.Duration, logger *logrus.Logger) *HTTPPreloader {
	return &HTTPPreloader{
		client:  &http.Client{},
		timeout: timeout,
		logger:  logger,
	}
}

// Preload fetches the headers of each image and returns how many answered 2xx
func (p *HTTPPreloader) Preload(ctx context.Context, urls []string) int {
	var warmed int32

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for _, url := range urls {
		url := url
		g.Go(func() error {
			if err := p.fetch(ctx, url); err != nil {
				p.logger.WithFields(logrus.Fields{
					"url":   url,
					"error": err.Error(),
				}).Warn("Catalog page preload failed")
				return nil
			}
			atomic.AddInt32(&warmed, 1)
			return nil
		})
	}

	_ = g.Wait()
	return int(warmed)
}

func (p *HTTPPreloader) fetch(ctx context.Context, url string) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
