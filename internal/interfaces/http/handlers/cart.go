// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vellaperfumeria/storefront-backend/internal/domain/session"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	sessions *session.Service
}

// NewCartHandler creates a new cart handler
func NewCartHandler(sessions *session.Service) *CartHandler {
	return &CartHandler{sessions: sessions}
}

// AddToCartRequest is the body of POST /cart/items
type AddToCartRequest struct {
	ProductID       int64             `json:"product_id" binding:"required,gt=0"`
	SelectedVariant map[string]string `json:"selected_variant"`
}

// UpdateCartItemRequest is the body of PUT /cart/items/:id. A quantity
// below 1 removes the line.
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	snap, err := h.sessions.Get(c.Request.Context(), sessionID(c))
	h.respond(c, snap, err, "Cart retrieved successfully")
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	snap, err := h.sessions.AddToCart(c.Request.Context(), sessionID(c), req.ProductID, req.SelectedVariant)
	h.respond(c, snap, err, "Item added to cart successfully")
}

// UpdateCartItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	snap, err := h.sessions.UpdateQuantity(c.Request.Context(), sessionID(c), c.Param("id"), *req.Quantity)
	h.respond(c, snap, err, "Cart item updated successfully")
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	snap, err := h.sessions.RemoveItem(c.Request.Context(), sessionID(c), c.Param("id"))
	h.respond(c, snap, err, "Item removed from cart successfully")
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	snap, err := h.sessions.ClearCart(c.Request.Context(), sessionID(c))
	h.respond(c, snap, err, "Cart cleared successfully")
}

// GetCartCount handles GET /cart/count
func (h *CartHandler) GetCartCount(c *gin.Context) {
	snap, err := h.sessions.Get(c.Request.Context(), sessionID(c))
	if err != nil {
		respondError(c, err, "Failed to get cart count")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data": gin.H{
			"count": snap.Count,
		},
	})
}

// OpenCart handles POST /cart/open
func (h *CartHandler) OpenCart(c *gin.Context) {
	snap, err := h.sessions.OpenCart(c.Request.Context(), sessionID(c))
	h.respond(c, snap, err, "Cart opened")
}

// CloseCart handles POST /cart/close
func (h *CartHandler) CloseCart(c *gin.Context) {
	snap, err := h.sessions.CloseCart(c.Request.Context(), sessionID(c))
	h.respond(c, snap, err, "Cart closed")
}

func (h *CartHandler) respond(c *gin.Context, snap *session.Snapshot, err error, message string) {
	if err != nil {
		respondError(c, err, "Failed to update cart")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data":    snap,
	})
}
