package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vellaperfumeria/storefront-backend/internal/domain/product"
	"github.com/vellaperfumeria/storefront-backend/internal/pkg/logger"
)

type stubProducts map[int64]*product.Product

func (s stubProducts) Lookup(id int64) (*product.Product, bool) {
	p, ok := s[id]
	return p, ok
}

func TestDefaultBook(t *testing.T) {
	book := DefaultBook()
	if book.PageCount() != DefaultPageCount {
		t.Fatalf("expected %d pages, got %d", DefaultPageCount, book.PageCount())
	}

	page, ok := book.PageAt(2)
	if !ok {
		t.Fatalf("page index 2 should exist")
	}
	if page.Number != 3 || len(page.Hotspots) != 2 {
		t.Fatalf("unexpected page 3: %+v", page)
	}
	if page.ImageURL != "https://media-es.oriflame.com/2024009/2024009003.jpg" {
		t.Fatalf("unexpected image url %q", page.ImageURL)
	}

	empty, _ := book.PageAt(0)
	if len(empty.Hotspots) != 0 {
		t.Fatalf("page 1 has no hotspots")
	}
}

func TestPageAtOutOfRange(t *testing.T) {
	book := DefaultBook()
	for _, i := range []int{-1, DefaultPageCount, 1000} {
		page, ok := book.PageAt(i)
		if ok {
			t.Fatalf("index %d should be out of range", i)
		}
		if page.Hotspots == nil || len(page.Hotspots) != 0 {
			t.Fatalf("fallback page should have an empty hotspot list")
		}
	}
}

func TestNewBookRejectsGaps(t *testing.T) {
	if _, err := NewBook([]Page{{Number: 1}, {Number: 3}}); err == nil {
		t.Fatalf("expected error for non-contiguous pages")
	}
}

func TestResolveDropsDanglingAndInvalid(t *testing.T) {
	known := &product.Product{ID: 1, Name: "Known", Price: decimal.NewFromInt(1)}
	book, _ := NewBook([]Page{{
		Number: 1,
		Hotspots: []Hotspot{
			{ProductID: 1, Position: Position{X: 10, Y: 10}},
			{ProductID: 2, Position: Position{X: 20, Y: 20}},
			{ProductID: 1, Position: Position{X: 120, Y: 20}},
			{ProductID: 1, Position: Position{X: 50, Y: 90}},
		},
	}})

	page, _ := book.PageAt(0)
	resolved := book.Resolve(page, stubProducts{1: known})
	if len(resolved) != 2 {
		t.Fatalf("expected two resolved hotspots, got %d", len(resolved))
	}
	if resolved[0].Index != 0 || resolved[1].Index != 3 {
		t.Fatalf("hotspot indices should follow the page definition: %+v", resolved)
	}

	if _, ok := book.HotspotAt(0, 1, stubProducts{1: known}); ok {
		t.Fatalf("dangling hotspot should not resolve")
	}
	if r, ok := book.HotspotAt(0, 3, stubProducts{1: known}); !ok || r.Product != known {
		t.Fatalf("expected hotspot 3 to resolve to the known product")
	}
}

func TestDefaultHotspotsResolveAgainstStaticCatalog(t *testing.T) {
	products, err := product.NewCatalog(product.StaticProducts())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	book := DefaultBook()
	for i := 0; i < book.PageCount(); i++ {
		page, _ := book.PageAt(i)
		if got := len(book.Resolve(page, products)); got != len(page.Hotspots) {
			t.Fatalf("page %d: %d of %d hotspots resolve", page.Number, got, len(page.Hotspots))
		}
	}
}

func TestOverlayDebounce(t *testing.T) {
	start := time.Date(2024, 9, 1, 10, 0, 0, 0, time.UTC)
	var o Overlay

	if o.State(start) != OverlayIdle {
		t.Fatalf("new overlay should be idle")
	}
	if !o.Activate(start) {
		t.Fatalf("first activation should be accepted")
	}
	if o.Activate(start.Add(200 * time.Millisecond)) {
		t.Fatalf("activation inside the window should be ignored")
	}
	if o.State(start.Add(1499*time.Millisecond)) != OverlayAcknowledged {
		t.Fatalf("overlay should still be acknowledged")
	}
	if o.State(start.Add(AcknowledgeWindow)) != OverlayIdle {
		t.Fatalf("overlay should be idle once the window elapses")
	}
	if !o.Activate(start.Add(AcknowledgeWindow)) {
		t.Fatalf("activation after the window should be accepted")
	}
}

func TestPruneAcknowledged(t *testing.T) {
	now := time.Now()
	acks := map[string]time.Time{
		OverlayKey(2, 0): now.Add(-2 * time.Second),
		OverlayKey(2, 1): now.Add(-time.Second),
	}
	PruneAcknowledged(acks, now)
	if len(acks) != 1 {
		t.Fatalf("expected one live acknowledgement, got %d", len(acks))
	}
	if _, ok := acks["2:1"]; !ok {
		t.Fatalf("recent acknowledgement was pruned")
	}
}

func TestNavigator(t *testing.T) {
	n := NewNavigator(5)
	if !n.Loading || n.HotspotsVisible() {
		t.Fatalf("first page starts loading")
	}
	if !n.MarkLoaded(0) || !n.HotspotsVisible() {
		t.Fatalf("loading first page should reveal hotspots")
	}

	if n.Previous() {
		t.Fatalf("previous from the first page must be a no-op")
	}
	if n.GoTo(0) {
		t.Fatalf("navigating to the current page must be a no-op")
	}
	if n.GoTo(5) || n.GoTo(-1) || n.Current != 0 {
		t.Fatalf("out of range navigation must leave the index unchanged")
	}
	if n.Loading {
		t.Fatalf("no-op navigation must not start loading")
	}

	if !n.GoTo(4) || n.Current != 4 || !n.Loading {
		t.Fatalf("valid navigation should switch page and start loading")
	}
	if n.MarkLoaded(3) {
		t.Fatalf("stale load report should be ignored")
	}
	if n.Next() || n.Current != 4 {
		t.Fatalf("next from the last page must be a no-op")
	}
	if !n.MarkLoaded(4) {
		t.Fatalf("load of the current page should clear loading")
	}
	if !n.Previous() || n.Current != 3 {
		t.Fatalf("previous should move back one page")
	}
}

func TestNavigatorAdjacent(t *testing.T) {
	n := NewNavigator(3)
	if got := n.Adjacent(); len(got) != 1 || got[0] != 1 {
		t.Fatalf("unexpected neighbours of first page: %v", got)
	}
	n.GoTo(1)
	if got := n.Adjacent(); len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Fatalf("unexpected neighbours of middle page: %v", got)
	}
	if got := NewNavigator(1).Adjacent(); len(got) != 0 {
		t.Fatalf("single page has no neighbours")
	}
}

func TestHTTPPreloader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("expected HEAD, got %s", r.Method)
		}
		if r.URL.Path == "/missing.jpg" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := NewHTTPPreloader(time.Second, logger.Discard())
	warmed := p.Preload(context.Background(), []string{srv.URL + "/a.jpg", srv.URL + "/missing.jpg", srv.URL + "/b.jpg"})
	if warmed != 2 {
		t.Fatalf("expected 2 warmed images, got %d", warmed)
	}
}

func TestImageURLs(t *testing.T) {
	book := DefaultBook()
	urls := book.ImageURLs([]int{-1, 0, 131, 132})
	if len(urls) != 2 {
		t.Fatalf("expected 2 urls, got %v", urls)
	}
}
