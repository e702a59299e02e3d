// internal/interfaces/http/middleware/security.go
package middleware

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeaders adds security headers to responses
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		// The API only serves JSON
		c.Header("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		c.Header("Server", "Vellaperfumeria Storefront")

		c.Next()
	}
}
