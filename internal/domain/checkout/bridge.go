// internal/domain/checkout/bridge.go
package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vellaperfumeria/storefront-backend/internal/config"
)

// Bridge is the boundary to the external commerce platform
type Bridge interface {
	// Push sends every line to the platform session, one after another.
	// It always returns; per-line failures are only counted.
	Push(ctx context.Context, ref string, lines []Line) PushResult
	// FetchSessionCart reads the platform cart of a session. It never fails:
	// any problem yields the demo dataset and SourceDemo.
	FetchSessionCart(ctx context.Context, ref string) ([]RemoteLine, Source)
}

// StoreAPIBridge talks to the WooCommerce Store API of the shop
type StoreAPIBridge struct {
	baseURL      string
	itemTimeout  time.Duration
	fetchTimeout time.Duration
	httpClient   *http.Client
	logger       *logrus.Logger
}

// NewStoreAPIBridge creates a bridge from the checkout configuration
func NewStoreAPIBridge(cfg *config.Config, logger *logrus.Logger) *StoreAPIBridge {
	return &StoreAPIBridge{
		baseURL:      strings.TrimRight(cfg.Checkout.APIBaseURL, "/"),
		itemTimeout:  cfg.Checkout.ItemTimeout,
		fetchTimeout: cfg.Checkout.FetchTimeout,
		httpClient:   &http.Client{},
		logger:       logger,
	}
}

type addItemVariation struct {
	Attribute string `json:"attribute"`
	Value     string `json:"value"`
}

type addItemRequest struct {
	ID        int64              `json:"id"`
	Quantity  int                `json:"quantity"`
	Variation []addItemVariation `json:"variation,omitempty"`
}

type storeCart struct {
	Items []storeCartItem `json:"items"`
}

type storeCartItem struct {
	ID        int64              `json:"id"`
	Quantity  int                `json:"quantity"`
	Name      string             `json:"name"`
	Prices    storeItemPrices    `json:"prices"`
	Variation []addItemVariation `json:"variation"`
	Images    []struct {
		Src string `json:"src"`
	} `json:"images"`
}

type storeItemPrices struct {
	Price             string `json:"price"`
	CurrencyMinorUnit int32  `json:"currency_minor_unit"`
}

// Push sends lines sequentially, each bounded by the item timeout
func (b *StoreAPIBridge) Push(ctx context.Context, ref string, lines []Line) PushResult {
	var result PushResult

	for i, line := range lines {
		if err := b.pushLine(ctx, ref, line); err != nil {
			result.Failed++
			b.logger.WithFields(logrus.Fields{
				"session_ref": ref,
				"line":        i,
				"external_id": line.ExternalID,
				"quantity":    line.Quantity,
				"error":       err.Error(),
			}).Warn("Cart line push failed, continuing handoff")
			continue
		}
		result.Pushed++
	}

	return result
}

func (b *StoreAPIBridge) pushLine(ctx context.Context, ref string, line Line) error {
	ctx, cancel := context.WithTimeout(ctx, b.itemTimeout)
	defer cancel()

	payload := addItemRequest{ID: line.ExternalID, Quantity: line.Quantity}
	attributes := make([]string, 0, len(line.Variation))
	for attribute := range line.Variation {
		attributes = append(attributes, attribute)
	}
	sort.Strings(attributes)
	for _, attribute := range attributes {
		payload.Variation = append(payload.Variation, addItemVariation{Attribute: attribute, Value: line.Variation[attribute]})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode line: %w", err)
	}

	endpoint := fmt.Sprintf("%s/cart/add-item?session=%s", b.baseURL, url.QueryEscape(ref))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		return fmt.Errorf("platform returned status %d", resp.StatusCode)
	}
	return nil
}

// FetchSessionCart reads the platform cart, falling back to the demo dataset
func (b *StoreAPIBridge) FetchSessionCart(ctx context.Context, ref string) ([]RemoteLine, Source) {
	lines, err := b.fetch(ctx, ref)
	if err != nil {
		b.logger.WithFields(logrus.Fields{
			"session_ref": ref,
			"error":       err.Error(),
		}).Warn("Platform cart unavailable, using demo cart")
		return DemoLines(), SourceDemo
	}
	return lines, SourcePlatform
}

func (b *StoreAPIBridge) fetch(ctx context.Context, ref string) ([]RemoteLine, error) {
	ctx, cancel := context.WithTimeout(ctx, b.fetchTimeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s/cart?session=%s", b.baseURL, url.QueryEscape(ref))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("platform returned status %d", resp.StatusCode)
	}

	var cart storeCart
	if err := json.NewDecoder(resp.Body).Decode(&cart); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}

	lines := make([]RemoteLine, 0, len(cart.Items))
	for _, item := range cart.Items {
		line := RemoteLine{
			ExternalID: item.ID,
			Quantity:   item.Quantity,
			Name:       item.Name,
			Price:      minorUnits(item.Prices),
		}
		if len(item.Images) > 0 {
			line.ImageURL = item.Images[0].Src
		}
		if len(item.Variation) > 0 {
			line.Variation = make(map[string]string, len(item.Variation))
			for _, v := range item.Variation {
				line.Variation[v.Attribute] = v.Value
			}
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// minorUnits converts "2499" with minor unit 2 into 24.99
func minorUnits(p storeItemPrices) decimal.Decimal {
	amount, err := decimal.NewFromString(p.Price)
	if err != nil {
		return decimal.Zero
	}
	return amount.Shift(-p.CurrencyMinorUnit)
}
