// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vellaperfumeria/storefront-backend/internal/domain/catalog"
	"github.com/vellaperfumeria/storefront-backend/internal/domain/product"
	"github.com/vellaperfumeria/storefront-backend/internal/domain/session"
)

// CatalogHandler handles the interactive catalog viewer endpoints
type CatalogHandler struct {
	sessions *session.Service
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(sessions *session.Service) *CatalogHandler {
	return &CatalogHandler{sessions: sessions}
}

// HotspotResponse is a hotspot marker as drawn over a page
type HotspotResponse struct {
	Index    int                     `json:"index"`
	Position catalog.Position        `json:"position"`
	State    catalog.OverlayState    `json:"state"`
	Product  product.ProductResponse `json:"product"`
}

// PageResponse is one catalog page for the viewer
type PageResponse struct {
	Index           int               `json:"index"`
	Number          int               `json:"number"`
	ImageURL        string            `json:"image_url"`
	HotspotsVisible bool              `json:"hotspots_visible"`
	Hotspots        []HotspotResponse `json:"hotspots"`
}

// GetPages handles GET /catalog/pages
func (h *CatalogHandler) GetPages(c *gin.Context) {
	snap, err := h.sessions.Get(c.Request.Context(), sessionID(c))
	if err != nil {
		respondError(c, err, "Failed to load catalog")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Catalog retrieved successfully",
		"data": gin.H{
			"page_count": h.sessions.Book().PageCount(),
			"navigator":  snap.Navigator,
			"adjacent":   h.sessions.Book().ImageURLs(snap.Navigator.Adjacent()),
		},
	})
}

// GetPage handles GET /catalog/pages/:index. Hotspots are only returned
// for the current page once its image has loaded.
func (h *CatalogHandler) GetPage(c *gin.Context) {
	index, ok := intParam(c, "index")
	if !ok {
		return
	}

	book := h.sessions.Book()
	page, ok := book.PageAt(index)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Page not found",
		})
		return
	}

	ctx := c.Request.Context()
	id := sessionID(c)

	snap, err := h.sessions.Get(ctx, id)
	if err != nil {
		respondError(c, err, "Failed to load catalog")
		return
	}

	resp := PageResponse{
		Index:           index,
		Number:          page.Number,
		ImageURL:        page.ImageURL,
		HotspotsVisible: snap.Navigator.Current == index && snap.Navigator.HotspotsVisible(),
		Hotspots:        []HotspotResponse{},
	}

	if resp.HotspotsVisible {
		states, err := h.sessions.HotspotStates(ctx, id, index)
		if err != nil {
			respondError(c, err, "Failed to load catalog")
			return
		}
		for _, r := range book.Resolve(page, h.sessions.Products()) {
			resp.Hotspots = append(resp.Hotspots, HotspotResponse{
				Index:    r.Index,
				Position: r.Position,
				State:    states[r.Index],
				Product:  product.NewProductResponse(r.Product, snap.Currency),
			})
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Page retrieved successfully",
		"data":    resp,
	})
}

// Navigate handles POST /catalog/navigate
func (h *CatalogHandler) Navigate(c *gin.Context) {
	var req struct {
		Index *int `json:"index" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	snap, moved, err := h.sessions.GoToPage(c.Request.Context(), sessionID(c), *req.Index)
	h.respondMove(c, snap, moved, err)
}

// NextPage handles POST /catalog/next
func (h *CatalogHandler) NextPage(c *gin.Context) {
	snap, moved, err := h.sessions.NextPage(c.Request.Context(), sessionID(c))
	h.respondMove(c, snap, moved, err)
}

// PreviousPage handles POST /catalog/previous
func (h *CatalogHandler) PreviousPage(c *gin.Context) {
	snap, moved, err := h.sessions.PreviousPage(c.Request.Context(), sessionID(c))
	h.respondMove(c, snap, moved, err)
}

// MarkLoaded handles POST /catalog/pages/:index/loaded
func (h *CatalogHandler) MarkLoaded(c *gin.Context) {
	index, ok := intParam(c, "index")
	if !ok {
		return
	}

	snap, err := h.sessions.MarkPageLoaded(c.Request.Context(), sessionID(c), index)
	if err != nil {
		respondError(c, err, "Failed to update catalog")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Page marked as loaded",
		"data":    snap.Navigator,
	})
}

// ActivateHotspot handles POST /catalog/pages/:index/hotspots/:hotspot/activate
func (h *CatalogHandler) ActivateHotspot(c *gin.Context) {
	index, ok := intParam(c, "index")
	if !ok {
		return
	}
	hotspot, ok := intParam(c, "hotspot")
	if !ok {
		return
	}

	snap, added, err := h.sessions.ActivateHotspot(c.Request.Context(), sessionID(c), index, hotspot)
	if err != nil {
		respondError(c, err, "Failed to add product")
		return
	}

	message := "Product added to cart"
	if !added {
		message = "Hotspot already acknowledged"
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data": gin.H{
			"added":   added,
			"session": snap,
		},
	})
}

func (h *CatalogHandler) respondMove(c *gin.Context, snap *session.Snapshot, moved bool, err error) {
	if err != nil {
		respondError(c, err, "Failed to change page")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Catalog page updated",
		"data": gin.H{
			"moved":     moved,
			"navigator": snap.Navigator,
		},
	})
}
