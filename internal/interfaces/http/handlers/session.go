// internal/interfaces/http/handlers/session.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vellaperfumeria/storefront-backend/internal/domain/checkout"
	"github.com/vellaperfumeria/storefront-backend/internal/domain/session"
)

// SessionHandler handles per-visitor state endpoints
type SessionHandler struct {
	sessions        *session.Service
	checkoutService *checkout.Service
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *session.Service, checkoutService *checkout.Service) *SessionHandler {
	return &SessionHandler{
		sessions:        sessions,
		checkoutService: checkoutService,
	}
}

// GetSession handles GET /session
func (h *SessionHandler) GetSession(c *gin.Context) {
	snap, err := h.sessions.Get(c.Request.Context(), sessionID(c))
	if err != nil {
		respondError(c, err, "Failed to load session")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Session retrieved successfully",
		"data":    snap,
	})
}

// SetCurrency handles PUT /session/currency
func (h *SessionHandler) SetCurrency(c *gin.Context) {
	var req struct {
		Currency string `json:"currency" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	snap, err := h.sessions.SetCurrency(c.Request.Context(), sessionID(c), req.Currency)
	if err != nil {
		respondError(c, err, "Failed to update currency")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Currency updated successfully",
		"data":    snap,
	})
}

// SetView handles PUT /session/view
func (h *SessionHandler) SetView(c *gin.Context) {
	var req struct {
		View  string `json:"view" binding:"required"`
		Param string `json:"param" binding:"max=200"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	snap, err := h.sessions.Navigate(c.Request.Context(), sessionID(c), session.View(req.View), req.Param)
	if err != nil {
		respondError(c, err, "Failed to change view")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "View updated successfully",
		"data":    snap,
	})
}

// Restore handles POST /session/restore. It loads the cart of a store
// session (the ?v= reference of a shared cart link) into this session.
func (h *SessionHandler) Restore(c *gin.Context) {
	var req struct {
		Ref string `json:"ref" binding:"required,max=128"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	snap, source, err := h.checkoutService.Restore(c.Request.Context(), sessionID(c), req.Ref)
	if err != nil {
		respondError(c, err, "Failed to restore cart")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart restored successfully",
		"data": gin.H{
			"source":  source,
			"session": snap,
		},
	})
}
