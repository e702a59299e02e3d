// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vellaperfumeria/storefront-backend/internal/domain/checkout"
)

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	checkoutService *checkout.Service
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// GetCheckoutSummary handles GET /checkout/summary
func (h *CheckoutHandler) GetCheckoutSummary(c *gin.Context) {
	summary, err := h.checkoutService.Summary(c.Request.Context(), sessionID(c))
	if err != nil {
		respondError(c, err, "Failed to build checkout summary")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout summary retrieved successfully",
		"data":    summary,
	})
}

// Handoff handles POST /checkout/handoff. The body is decoded without
// binding validation; the checkout service normalizes first and then
// reports every invalid field at once.
func (h *CheckoutHandler) Handoff(c *gin.Context) {
	var req checkout.ContactDetails
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	result, err := h.checkoutService.Handoff(c.Request.Context(), sessionID(c), &req)
	if err != nil {
		respondError(c, err, "Failed to complete checkout")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Redirecting to store",
		"data":    result,
	})
}
