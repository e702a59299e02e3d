// internal/interfaces/http/handlers/errors.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vellaperfumeria/storefront-backend/internal/domain/checkout"
	"github.com/vellaperfumeria/storefront-backend/internal/domain/product"
	"github.com/vellaperfumeria/storefront-backend/internal/domain/session"
	"github.com/vellaperfumeria/storefront-backend/internal/interfaces/http/middleware"
	"github.com/vellaperfumeria/storefront-backend/internal/pkg/currency"
)

// respondError maps domain errors onto status codes. Anything unknown is
// a 500 with a generic message; the cause goes to the request log.
func respondError(c *gin.Context, err error, fallback string) {
	var verr *checkout.ValidationError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Invalid contact details",
			"details": verr.Fields,
		})
	case errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, session.ErrHotspotNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, session.ErrHotspotNotVisible):
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, product.ErrUnknownCategory),
		errors.Is(err, session.ErrInvalidVariant),
		errors.Is(err, session.ErrUnknownView),
		errors.Is(err, session.ErrSessionRequired),
		errors.Is(err, currency.ErrUnsupportedCurrency),
		errors.Is(err, checkout.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": fallback,
		})
	}
}

// sessionID returns the id resolved by the session middleware
func sessionID(c *gin.Context) string {
	id, _ := middleware.GetSessionIDFromContext(c)
	return id
}

// intParam parses a non-negative integer path parameter
func intParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + name,
		})
		return 0, false
	}
	return v, true
}
