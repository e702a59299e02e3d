// internal/domain/catalog/navigator.go
package catalog

// Navigator tracks the current page of the catalog viewer.
//
// Requests for an index outside [0, PageCount) or for the current index are
// ignored. A successful move sets Loading until the client reports the new
// page image as loaded; hotspots are hidden while loading.
type Navigator struct {
	Current   int  `json:"current"`
	Loading   bool `json:"loading"`
	PageCount int  `json:"page_count"`
}

// NewNavigator starts on the first page, waiting for its image
func NewNavigator(pageCount int) Navigator {
	return Navigator{
		Current:   0,
		Loading:   pageCount > 0,
		PageCount: pageCount,
	}
}

// GoTo switches to page index and reports whether the page changed
func (n *Navigator) GoTo(index int) bool {
	if index < 0 || index >= n.PageCount || index == n.Current {
		return false
	}
	n.Current = index
	n.Loading = true
	return true
}

// Next moves one page forward
func (n *Navigator) Next() bool {
	return n.GoTo(n.Current + 1)
}

// Previous moves one page back
func (n *Navigator) Previous() bool {
	return n.GoTo(n.Current - 1)
}

// MarkLoaded clears the loading flag once the image of the current page is
// ready. Reports for any other page are stale and ignored.
func (n *Navigator) MarkLoaded(index int) bool {
	if index != n.Current || !n.Loading {
		return false
	}
	n.Loading = false
	return true
}

// HotspotsVisible reports whether overlays may be shown
func (n Navigator) HotspotsVisible() bool {
	return !n.Loading
}

// HasPrevious reports whether Previous would move
func (n Navigator) HasPrevious() bool {
	return n.Current > 0
}

// HasNext reports whether Next would move
func (n Navigator) HasNext() bool {
	return n.Current < n.PageCount-1
}

// Adjacent returns the in-range neighbours of the current page to preload
func (n Navigator) Adjacent() []int {
	adjacent := make([]int, 0, 2)
	if n.HasPrevious() {
		adjacent = append(adjacent, n.Current-1)
	}
	if n.HasNext() {
		adjacent = append(adjacent, n.Current+1)
	}
	return adjacent
}
