package checkout

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vellaperfumeria/storefront-backend/internal/config"
	"github.com/vellaperfumeria/storefront-backend/internal/domain/cart"
	"github.com/vellaperfumeria/storefront-backend/internal/domain/catalog"
	"github.com/vellaperfumeria/storefront-backend/internal/domain/product"
	"github.com/vellaperfumeria/storefront-backend/internal/domain/session"
	"github.com/vellaperfumeria/storefront-backend/internal/pkg/logger"
)

type stubBridge struct {
	pushedRef   string
	pushedLines []Line
	result      PushResult
	remote      []RemoteLine
	source      Source
	duringPush  func()
}

func (b *stubBridge) Push(_ context.Context, ref string, lines []Line) PushResult {
	b.pushedRef = ref
	b.pushedLines = lines
	if b.duringPush != nil {
		b.duringPush()
	}
	return b.result
}

func (b *stubBridge) FetchSessionCart(_ context.Context, _ string) ([]RemoteLine, Source) {
	return b.remote, b.source
}

func newTestService(t *testing.T, bridge Bridge) (*Service, *session.Service) {
	t.Helper()
	products, err := product.NewCatalog(product.StaticProducts())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg := &config.Config{
		Session: config.SessionConfig{DefaultCurrency: "EUR"},
		Checkout: config.CheckoutConfig{
			StoreBaseURL: testStore,
			CartPath:     "/carrito/",
		},
	}
	sessions := session.NewService(session.NewMemoryStore(time.Hour), products, catalog.DefaultBook(), catalog.NoopPreloader{}, cfg, logger.Discard())
	return NewService(sessions, bridge, cfg, logger.Discard()), sessions
}

func validContact() *ContactDetails {
	return &ContactDetails{
		FirstName:  " Ana ",
		LastName:   "García",
		Email:      "ana@example.com",
		Phone:      "600123123",
		Address:    "Calle Mayor 1",
		City:       "Madrid",
		PostalCode: "28013",
		Country:    "es",
	}
}

func TestHandoffWithoutSessionRefUsesDeepLink(t *testing.T) {
	bridge := &stubBridge{}
	svc, sessions := newTestService(t, bridge)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := sessions.AddToCart(ctx, "s1", 46801, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	contact := validContact()
	result, err := svc.Handoff(ctx, "s1", contact)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.RedirectURL != "https://vellaperfumeria.com/carrito/?add-to-cart=46801&quantity=2" {
		t.Fatalf("unexpected redirect %s", result.RedirectURL)
	}
	if result.Push != nil || bridge.pushedLines != nil {
		t.Fatalf("expected no push without a session ref")
	}
	if !result.Totals.Subtotal.Equal(decimal.RequireFromString("49.98")) {
		t.Fatalf("expected totals taken before clearing, got %s", result.Totals.Subtotal)
	}
	if contact.Country != "ES" || contact.FirstName != "Ana" {
		t.Fatalf("expected normalized contact, got %+v", contact)
	}

	snap, err := sessions.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !snap.Cart.IsEmpty() {
		t.Fatalf("expected cart to be cleared after handoff")
	}
}

func TestHandoffWithSessionRefPushesLines(t *testing.T) {
	bridge := &stubBridge{result: PushResult{Pushed: 1, Failed: 1}}
	svc, sessions := newTestService(t, bridge)
	ctx := context.Background()

	if _, err := sessions.AddToCart(ctx, "s1", 90001, map[string]string{"Tono": "Rojo Intenso 6.60"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := sessions.AddToCart(ctx, "s1", 44961, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := sessions.SetExternalRef(ctx, "s1", "abc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := svc.Handoff(ctx, "s1", validContact())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.RedirectURL != "https://vellaperfumeria.com/carrito/?v=abc" {
		t.Fatalf("unexpected redirect %s", result.RedirectURL)
	}
	if result.Push == nil || result.Push.Failed != 1 {
		t.Fatalf("expected push result to be reported, got %+v", result.Push)
	}
	if bridge.pushedRef != "abc" || len(bridge.pushedLines) != 2 {
		t.Fatalf("unexpected push: ref=%s lines=%d", bridge.pushedRef, len(bridge.pushedLines))
	}
	if bridge.pushedLines[0].ExternalID != 90011 || bridge.pushedLines[1].ExternalID != 44961 {
		t.Fatalf("unexpected pushed ids %+v", bridge.pushedLines)
	}

	snap, _ := sessions.Get(ctx, "s1")
	if snap.Count != 0 {
		t.Fatalf("expected cart to be cleared even when lines failed")
	}
}

func TestHandoffRejectsInvalidContact(t *testing.T) {
	svc, sessions := newTestService(t, &stubBridge{})
	ctx := context.Background()

	if _, err := sessions.AddToCart(ctx, "s1", 46801, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	contact := validContact()
	contact.Email = "not-an-email"
	contact.Country = "Spain"
	contact.PostalCode = ""

	_, err := svc.Handoff(ctx, "s1", contact)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	for _, field := range []string{"email", "country", "postal_code"} {
		if _, ok := verr.Fields[field]; !ok {
			t.Fatalf("expected %s to be reported, got %v", field, verr.Fields)
		}
	}

	snap, _ := sessions.Get(ctx, "s1")
	if snap.Count != 1 {
		t.Fatalf("expected cart untouched after a rejected handoff")
	}
}

func TestHandoffEmptyCart(t *testing.T) {
	svc, _ := newTestService(t, &stubBridge{})

	if _, err := svc.Handoff(context.Background(), "s1", validContact()); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestSummaryFormatsTotals(t *testing.T) {
	svc, sessions := newTestService(t, &stubBridge{})
	ctx := context.Background()

	if _, err := sessions.AddToCart(ctx, "s1", 46801, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	summary, err := svc.Summary(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summary.Lines) != 1 || summary.Lines[0].DisplayTotal != "24,99 €" {
		t.Fatalf("unexpected lines %+v", summary.Lines)
	}
	if summary.Formatted.Shipping != "6,00 €" || summary.Formatted.Total != "30,99 €" {
		t.Fatalf("unexpected formatted totals %+v", summary.Formatted)
	}
	if !strings.Contains(summary.CheckoutURL, "add-to-cart=46801&quantity=1") {
		t.Fatalf("unexpected checkout url %s", summary.CheckoutURL)
	}

	if _, err := sessions.SetCurrency(ctx, "s1", "usd"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	summary, err = svc.Summary(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Lines[0].DisplayTotal != "$26.99" {
		t.Fatalf("expected USD display, got %s", summary.Lines[0].DisplayTotal)
	}
}

func TestSummaryEmptyCartHasNoCheckoutURL(t *testing.T) {
	svc, _ := newTestService(t, &stubBridge{})

	summary, err := svc.Summary(context.Background(), "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.CheckoutURL != "" || len(summary.Lines) != 0 {
		t.Fatalf("expected empty summary, got %+v", summary)
	}
}

func TestRestoreMapsDemoCart(t *testing.T) {
	bridge := &stubBridge{remote: DemoLines(), source: SourceDemo}
	svc, _ := newTestService(t, bridge)

	snap, source, err := svc.Restore(context.Background(), "s1", DemoSessionRef)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source != SourceDemo {
		t.Fatalf("expected demo source, got %s", source)
	}
	if snap.ExternalRef != DemoSessionRef {
		t.Fatalf("expected external ref to be kept, got %q", snap.ExternalRef)
	}
	if snap.Count != 3 || snap.Cart.Len() != 2 {
		t.Fatalf("expected 3 units on 2 lines, got %d on %d", snap.Count, snap.Cart.Len())
	}

	olia, ok := snap.Cart.Find("90001-Rojo Intenso 6.60")
	if !ok {
		t.Fatalf("expected variation to resolve to its parent product, got %+v", snap.Cart.Items)
	}
	if olia.Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", olia.Quantity)
	}
	if !snap.Totals.Subtotal.Equal(decimal.RequireFromString("30.89")) {
		t.Fatalf("expected subtotal 30.89, got %s", snap.Totals.Subtotal)
	}
}

func TestRestoreUnknownProductsAndMerging(t *testing.T) {
	bridge := &stubBridge{
		remote: []RemoteLine{
			{ExternalID: 77777, Quantity: 1, Name: "Regalo", Price: decimal.RequireFromString("3.50")},
			{ExternalID: 44961, Quantity: 1},
			{ExternalID: 44961, Quantity: 2},
			{ExternalID: 41062, Quantity: 0},
		},
		source: SourcePlatform,
	}
	svc, sessions := newTestService(t, bridge)
	ctx := context.Background()

	if _, err := sessions.AddToCart(ctx, "s1", 46801, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap, source, err := svc.Restore(ctx, "s1", "ref")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source != SourcePlatform {
		t.Fatalf("expected platform source, got %s", source)
	}
	if snap.Cart.Len() != 2 {
		t.Fatalf("expected local cart to be replaced by 2 lines, got %+v", snap.Cart.Items)
	}

	gift, ok := snap.Cart.Find("77777-")
	if !ok || gift.Product.Name != "Regalo" || !gift.Product.Price.Equal(decimal.RequireFromString("3.50")) {
		t.Fatalf("expected placeholder product, got %+v", gift)
	}
	duologi, ok := snap.Cart.Find("44961-")
	if !ok || duologi.Quantity != 3 {
		t.Fatalf("expected merged quantity 3, got %+v", duologi)
	}

	// The placeholder survives a reload from the store
	reloaded, err := sessions.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := reloaded.Cart.Find("77777-"); !ok {
		t.Fatalf("expected placeholder to be persisted")
	}
}

func TestRestoreRequiresSession(t *testing.T) {
	svc, _ := newTestService(t, &stubBridge{})

	if _, _, err := svc.Restore(context.Background(), "", "ref"); !errors.Is(err, session.ErrSessionRequired) {
		t.Fatalf("expected ErrSessionRequired, got %v", err)
	}
}

func TestHandoffKeepsLinesAddedDuringPush(t *testing.T) {
	bridge := &stubBridge{result: PushResult{Pushed: 2}}
	svc, sessions := newTestService(t, bridge)
	ctx := context.Background()

	for _, id := range []int64{44961, 46801} {
		if _, err := sessions.AddToCart(ctx, "s1", id, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if _, err := sessions.SetExternalRef(ctx, "s1", "abc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Another request adds to the cart while the lines are being pushed
	bridge.duringPush = func() {
		for _, id := range []int64{46801, 38497} {
			if _, err := sessions.AddToCart(ctx, "s1", id, nil); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}
	}

	if _, err := svc.Handoff(ctx, "s1", validContact()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bridge.pushedLines) != 2 {
		t.Fatalf("expected 2 pushed lines, got %d", len(bridge.pushedLines))
	}

	snap, err := sessions.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Count != 2 {
		t.Fatalf("expected the 2 units added during the push to remain, got %d", snap.Count)
	}
	if _, ok := snap.Cart.Find(cart.Identity(44961, nil)); ok {
		t.Fatalf("handed-off line should be released")
	}
	for _, id := range []int64{46801, 38497} {
		line, ok := snap.Cart.Find(cart.Identity(id, nil))
		if !ok || line.Quantity != 1 {
			t.Fatalf("expected product %d with quantity 1, got %+v", id, line)
		}
	}
}
