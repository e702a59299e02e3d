// internal/interfaces/http/handlers/currency.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/vellaperfumeria/storefront-backend/internal/pkg/currency"
)

// CurrencyHandler exposes the supported display currencies
type CurrencyHandler struct{}

// NewCurrencyHandler creates a new currency handler
func NewCurrencyHandler() *CurrencyHandler {
	return &CurrencyHandler{}
}

// GetCurrencies handles GET /currencies
func (h *CurrencyHandler) GetCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Currencies retrieved successfully",
		"data":    currency.Supported(),
	})
}

// FormatAmount handles GET /currencies/format?amount=24.99&currency=USD.
// The amount is in EUR.
func (h *CurrencyHandler) FormatAmount(c *gin.Context) {
	var req struct {
		Amount   string `form:"amount" binding:"required"`
		Currency string `form:"currency"`
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid amount",
		})
		return
	}

	code := currency.Canonical
	if req.Currency != "" {
		if code, err = currency.Parse(req.Currency); err != nil {
			respondError(c, err, "")
			return
		}
	}

	converted, err := currency.Convert(amount, code)
	if err != nil {
		respondError(c, err, "")
		return
	}
	formatted, err := currency.Format(amount, code)
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Amount formatted successfully",
		"data": gin.H{
			"currency":  code,
			"amount":    converted.Round(2),
			"formatted": formatted,
		},
	})
}
