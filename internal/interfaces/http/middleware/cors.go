// internal/interfaces/http/middleware/cors.go
package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/vellaperfumeria/storefront-backend/internal/config"
)

// CORS returns a middleware that handles Cross-Origin Resource Sharing.
// Entries like "*.example.com" allow every subdomain of example.com.
func CORS(cfg *config.Config) gin.HandlerFunc {
	allowed := cfg.Security.CORSAllowedOrigins

	return cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return isOriginAllowed(origin, allowed)
		},
		AllowMethods:     cfg.Security.CORSAllowedMethods,
		AllowHeaders:     cfg.Security.CORSAllowedHeaders,
		ExposeHeaders:    []string{SessionHeader, RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	})
}

// isOriginAllowed checks if the origin is in the allowed list
func isOriginAllowed(origin string, allowedOrigins []string) bool {
	for _, allowed := range allowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
		if strings.HasPrefix(allowed, "*.") {
			domain := strings.TrimPrefix(allowed, "*")
			if strings.HasSuffix(origin, domain) {
				return true
			}
		}
	}
	return false
}
