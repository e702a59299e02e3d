// internal/domain/session/service.go
package session

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vellaperfumeria/storefront-backend/internal/config"
	"github.com/vellaperfumeria/storefront-backend/internal/domain/cart"
	"github.com/vellaperfumeria/storefront-backend/internal/domain/catalog"
	"github.com/vellaperfumeria/storefront-backend/internal/domain/pricing"
	"github.com/vellaperfumeria/storefront-backend/internal/domain/product"
	"github.com/vellaperfumeria/storefront-backend/internal/pkg/currency"
)

const lockStripes = 64

// Service owns every change to session state. Operations on one session
// are serialized so the cart has a single writer at a time.
type Service struct {
	store     Store
	products  *product.Catalog
	book      *catalog.Book
	preloader catalog.Preloader
	config    *config.Config
	logger    *logrus.Logger
	now       func() time.Time
	locks     [lockStripes]sync.Mutex
}

// NewService creates a new session service
func NewService(store Store, products *product.Catalog, book *catalog.Book, preloader catalog.Preloader, cfg *config.Config, logger *logrus.Logger) *Service {
	if preloader == nil {
		preloader = catalog.NoopPreloader{}
	}
	return &Service{
		store:     store,
		products:  products,
		book:      book,
		preloader: preloader,
		config:    cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// SetClock replaces the time source, for tests
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Products exposes the catalog the service resolves carts against
func (s *Service) Products() *product.Catalog {
	return s.products
}

// Book exposes the catalog page book
func (s *Service) Book() *catalog.Book {
	return s.book
}

// Get returns the session, creating a fresh one when it does not exist yet
func (s *Service) Get(ctx context.Context, id string) (*Snapshot, error) {
	return s.update(ctx, id, false, func(*State, *cart.Cart) error { return nil })
}

// AddToCart adds one unit of a product with an optional variant selection
// and opens the cart sidebar.
func (s *Service) AddToCart(ctx context.Context, id string, productID int64, variant map[string]string) (*Snapshot, error) {
	p, err := s.products.Get(productID)
	if err != nil {
		return nil, err
	}
	if err := validateVariant(p, variant); err != nil {
		return nil, err
	}

	return s.update(ctx, id, true, func(st *State, c *cart.Cart) error {
		*c = c.Add(p, variant)
		st.CartOpen = true
		return nil
	})
}

// UpdateQuantity sets a line's quantity; below 1 removes the line
func (s *Service) UpdateQuantity(ctx context.Context, id, itemID string, quantity int) (*Snapshot, error) {
	return s.update(ctx, id, true, func(_ *State, c *cart.Cart) error {
		*c = c.UpdateQuantity(itemID, quantity)
		return nil
	})
}

// RemoveItem drops a cart line; unknown ids are ignored
func (s *Service) RemoveItem(ctx context.Context, id, itemID string) (*Snapshot, error) {
	return s.update(ctx, id, true, func(_ *State, c *cart.Cart) error {
		*c = c.Remove(itemID)
		return nil
	})
}

// ClearCart empties the cart
func (s *Service) ClearCart(ctx context.Context, id string) (*Snapshot, error) {
	return s.update(ctx, id, true, func(_ *State, c *cart.Cart) error {
		*c = c.Clear()
		return nil
	})
}

// ReplaceCart swaps the whole cart, used when restoring from the external platform
func (s *Service) ReplaceCart(ctx context.Context, id string, items cart.Cart) (*Snapshot, error) {
	return s.update(ctx, id, true, func(_ *State, c *cart.Cart) error {
		*c = items
		return nil
	})
}

// RestoreCart swaps the whole cart and records the external platform
// session reference in one step
func (s *Service) RestoreCart(ctx context.Context, id string, items cart.Cart, ref string) (*Snapshot, error) {
	return s.update(ctx, id, true, func(st *State, c *cart.Cart) error {
		*c = items
		st.ExternalRef = ref
		return nil
	})
}

// ReleaseHandedOff takes the handed-off lines out of the cart. Units added
// to the session after the handoff snapshot was taken stay in the cart.
func (s *Service) ReleaseHandedOff(ctx context.Context, id string, handed cart.Cart) (*Snapshot, error) {
	return s.update(ctx, id, true, func(_ *State, c *cart.Cart) error {
		for _, item := range handed.Items {
			current, ok := c.Find(item.ID)
			if !ok {
				continue
			}
			*c = c.UpdateQuantity(item.ID, current.Quantity-item.Quantity)
		}
		return nil
	})
}

// SetCurrency changes the display currency
func (s *Service) SetCurrency(ctx context.Context, id, code string) (*Snapshot, error) {
	parsed, err := currency.Parse(code)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, id, true, func(st *State, _ *cart.Cart) error {
		st.Currency = parsed
		return nil
	})
}

// OpenCart shows the cart sidebar
func (s *Service) OpenCart(ctx context.Context, id string) (*Snapshot, error) {
	return s.setCartOpen(ctx, id, true)
}

// CloseCart hides the cart sidebar
func (s *Service) CloseCart(ctx context.Context, id string) (*Snapshot, error) {
	return s.setCartOpen(ctx, id, false)
}

func (s *Service) setCartOpen(ctx context.Context, id string, open bool) (*Snapshot, error) {
	return s.update(ctx, id, true, func(st *State, _ *cart.Cart) error {
		st.CartOpen = open
		return nil
	})
}

// Navigate switches the current screen. param carries the product id or
// blog slug for detail screens. Navigating closes the cart sidebar.
func (s *Service) Navigate(ctx context.Context, id string, view View, param string) (*Snapshot, error) {
	if !view.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownView, string(view))
	}
	return s.update(ctx, id, true, func(st *State, _ *cart.Cart) error {
		st.View = view
		st.ViewParam = param
		st.CartOpen = false
		return nil
	})
}

// SetExternalRef records the external platform session reference used by
// the checkout handoff.
func (s *Service) SetExternalRef(ctx context.Context, id, ref string) (*Snapshot, error) {
	return s.update(ctx, id, true, func(st *State, _ *cart.Cart) error {
		st.ExternalRef = ref
		return nil
	})
}

// GoToPage moves the catalog viewer to a page index. Out-of-range and
// same-page requests leave the state unchanged and report moved=false.
func (s *Service) GoToPage(ctx context.Context, id string, index int) (*Snapshot, bool, error) {
	return s.navigatePages(ctx, id, func(n *catalog.Navigator) bool { return n.GoTo(index) })
}

// NextPage moves the catalog viewer forward one page
func (s *Service) NextPage(ctx context.Context, id string) (*Snapshot, bool, error) {
	return s.navigatePages(ctx, id, func(n *catalog.Navigator) bool { return n.Next() })
}

// PreviousPage moves the catalog viewer back one page
func (s *Service) PreviousPage(ctx context.Context, id string) (*Snapshot, bool, error) {
	return s.navigatePages(ctx, id, func(n *catalog.Navigator) bool { return n.Previous() })
}

func (s *Service) navigatePages(ctx context.Context, id string, move func(*catalog.Navigator) bool) (*Snapshot, bool, error) {
	moved := false
	snap, err := s.update(ctx, id, true, func(st *State, _ *cart.Cart) error {
		moved = move(&st.Navigator)
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if moved {
		s.preloadAdjacent(snap.Navigator)
	}
	return snap, moved, nil
}

// MarkPageLoaded records that the client finished loading a page image
func (s *Service) MarkPageLoaded(ctx context.Context, id string, index int) (*Snapshot, error) {
	return s.update(ctx, id, true, func(st *State, _ *cart.Cart) error {
		st.Navigator.MarkLoaded(index)
		return nil
	})
}

// ActivateHotspot handles a click on a catalog hotspot. Only hotspots of
// the current, fully loaded page can be activated. The product is added
// (with no variant) only when the marker is idle; clicks during the
// acknowledgement window are ignored and report added=false.
func (s *Service) ActivateHotspot(ctx context.Context, id string, pageIndex, hotspotIndex int) (*Snapshot, bool, error) {
	hotspot, ok := s.book.HotspotAt(pageIndex, hotspotIndex, s.products)
	if !ok {
		return nil, false, ErrHotspotNotFound
	}

	added := false
	snap, err := s.update(ctx, id, true, func(st *State, c *cart.Cart) error {
		if pageIndex != st.Navigator.Current || !st.Navigator.HotspotsVisible() {
			return fmt.Errorf("%w: page %d", ErrHotspotNotVisible, pageIndex+1)
		}

		now := s.now()
		catalog.PruneAcknowledged(st.Acknowledged, now)

		key := catalog.OverlayKey(pageIndex, hotspotIndex)
		overlay := catalog.Overlay{AcknowledgedAt: st.Acknowledged[key]}
		if !overlay.Activate(now) {
			return nil
		}

		if st.Acknowledged == nil {
			st.Acknowledged = make(map[string]time.Time)
		}
		st.Acknowledged[key] = overlay.AcknowledgedAt
		*c = c.Add(hotspot.Product, nil)
		st.CartOpen = true
		added = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return snap, added, nil
}

// HotspotStates reports the overlay state of every resolvable marker on a
// page, keyed by hotspot index
func (s *Service) HotspotStates(ctx context.Context, id string, pageIndex int) (map[int]catalog.OverlayState, error) {
	if id == "" {
		return nil, ErrSessionRequired
	}
	st, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	page, _ := s.book.PageAt(pageIndex)
	resolved := s.book.Resolve(page, s.products)
	states := make(map[int]catalog.OverlayState, len(resolved))
	for _, r := range resolved {
		overlay := catalog.Overlay{AcknowledgedAt: st.Acknowledged[catalog.OverlayKey(pageIndex, r.Index)]}
		states[r.Index] = overlay.State(now)
	}
	return states, nil
}

// Delete drops a session entirely
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrSessionRequired
	}
	return s.store.Delete(ctx, id)
}

// update runs fn on the session under its lock. When persist is false the
// state is only written if the session was just created.
func (s *Service) update(ctx context.Context, id string, persist bool, fn func(*State, *cart.Cart) error) (*Snapshot, error) {
	if id == "" {
		return nil, ErrSessionRequired
	}

	lock := s.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	st, err := s.load(ctx, id)
	created := false
	if errors.Is(err, ErrSessionNotFound) {
		st = s.newState(id)
		created = true
	} else if err != nil {
		return nil, err
	}

	c := cart.Hydrate(st.Cart, s.products)
	if err := fn(st, &c); err != nil {
		return nil, err
	}
	st.Cart = c.Snapshot(s.products)

	if persist || created {
		st.UpdatedAt = s.now().UTC()
		if err := s.store.Save(ctx, st); err != nil {
			return nil, err
		}
	}

	return s.snapshot(st, c), nil
}

func (s *Service) load(ctx context.Context, id string) (*State, error) {
	st, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	// Sessions saved against a different book size start over on page one
	if st.Navigator.PageCount != s.book.PageCount() {
		st.Navigator = catalog.NewNavigator(s.book.PageCount())
	}
	if st.Currency == "" {
		st.Currency = s.defaultCurrency()
	}
	return st, nil
}

func (s *Service) newState(id string) *State {
	now := s.now().UTC()
	return &State{
		ID:        id,
		Cart:      []cart.StoredItem{},
		Currency:  s.defaultCurrency(),
		View:      ViewHome,
		Navigator: catalog.NewNavigator(s.book.PageCount()),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *Service) defaultCurrency() currency.Code {
	if s.config != nil {
		if code, err := currency.Parse(s.config.Session.DefaultCurrency); err == nil {
			return code
		}
	}
	return currency.Canonical
}

func (s *Service) snapshot(st *State, c cart.Cart) *Snapshot {
	return &Snapshot{
		ID:          st.ID,
		Cart:        c,
		Count:       c.Count(),
		Totals:      pricing.Calculate(c.Items),
		Currency:    st.Currency,
		CartOpen:    st.CartOpen,
		View:        st.View,
		ViewParam:   st.ViewParam,
		Navigator:   st.Navigator,
		ExternalRef: st.ExternalRef,
		UpdatedAt:   st.UpdatedAt,
	}
}

func (s *Service) lockFor(id string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(id))
	return &s.locks[h.Sum32()%lockStripes]
}

func (s *Service) preloadAdjacent(nav catalog.Navigator) {
	urls := s.book.ImageURLs(nav.Adjacent())
	if len(urls) == 0 {
		return
	}

	timeout := 10 * time.Second
	if s.config != nil && s.config.Catalog.PreloadTimeout > 0 {
		timeout = s.config.Catalog.PreloadTimeout
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		warmed := s.preloader.Preload(ctx, urls)
		s.logger.WithFields(logrus.Fields{
			"page":   nav.Current + 1,
			"warmed": warmed,
			"total":  len(urls),
		}).Debug("Adjacent catalog pages preloaded")
	}()
}

func validateVariant(p *product.Product, variant map[string]string) error {
	for variantType, value := range variant {
		if _, ok := p.FindVariantOption(variantType, value); !ok {
			return fmt.Errorf("%w: %s=%q for product %d", ErrInvalidVariant, variantType, value, p.ID)
		}
	}
	return nil
}
