// internal/domain/catalog/book.go
package catalog

import (
	"fmt"

	"github.com/vellaperfumeria/storefront-backend/internal/domain/product"
)

// ProductLookup resolves hotspot product references
type ProductLookup interface {
	Lookup(id int64) (*product.Product, bool)
}

// Book is the ordered, immutable list of catalog pages. Pages are
// addressed by 0-based index; page i carries Number i+1.
type Book struct {
	pages []Page
}

// NewBook checks that page numbers are contiguous from 1
func NewBook(pages []Page) (*Book, error) {
	for i, p := range pages {
		if p.Number != i+1 {
			return nil, fmt.Errorf("page at index %d has number %d, want %d", i, p.Number, i+1)
		}
	}
	out := make([]Page, len(pages))
	copy(out, pages)
	return &Book{pages: out}, nil
}

// DefaultBook returns the book of the current printed catalog
func DefaultBook() *Book {
	book, err := NewBook(DefaultPages())
	if err != nil {
		panic(err)
	}
	return book
}

// PageCount returns the number of pages
func (b *Book) PageCount() int {
	return len(b.pages)
}

// PageAt returns the page at index, or an empty page and false when the
// index is out of range.
func (b *Book) PageAt(index int) (Page, bool) {
	if index < 0 || index >= len(b.pages) {
		return Page{Hotspots: []Hotspot{}}, false
	}
	return b.pages[index], true
}

// ImageURLs returns the image URLs of the given page indices, skipping
// out-of-range ones.
func (b *Book) ImageURLs(indices []int) []string {
	urls := make([]string, 0, len(indices))
	for _, i := range indices {
		if p, ok := b.PageAt(i); ok {
			urls = append(urls, p.ImageURL)
		}
	}
	return urls
}

// Resolve pairs each hotspot of the page with its product. Hotspots whose
// product is unknown or whose position falls outside the page are left out.
func (b *Book) Resolve(page Page, products ProductLookup) []ResolvedHotspot {
	resolved := make([]ResolvedHotspot, 0, len(page.Hotspots))
	for i, h := range page.Hotspots {
		if !h.Position.Valid() {
			continue
		}
		p, ok := products.Lookup(h.ProductID)
		if !ok {
			continue
		}
		resolved = append(resolved, ResolvedHotspot{
			Index:    i,
			Position: h.Position,
			Product:  p,
		})
	}
	return resolved
}

// HotspotAt resolves one hotspot of a page by its index
func (b *Book) HotspotAt(pageIndex, hotspotIndex int, products ProductLookup) (ResolvedHotspot, bool) {
	page, ok := b.PageAt(pageIndex)
	if !ok {
		return ResolvedHotspot{}, false
	}
	for _, r := range b.Resolve(page, products) {
		if r.Index == hotspotIndex {
			return r, true
		}
	}
	return ResolvedHotspot{}, false
}
