// internal/interfaces/http/middleware/session.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vellaperfumeria/storefront-backend/internal/config"
)

const (
	// SessionHeader lets API clients without cookies carry their session
	SessionHeader = "X-Session-ID"

	sessionContextKey = "session_id"
)

// Session resolves the visitor session id from the X-Session-ID header or
// the session cookie. Missing or malformed ids are replaced by a new UUID,
// which is sent back in both the cookie and the header.
func Session(cfg *config.Config) gin.HandlerFunc {
	maxAge := int(cfg.Session.TTL.Seconds())
	secure := cfg.IsProduction()

	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			sessionID, _ = c.Cookie(cfg.Session.CookieName)
		}

		if _, err := uuid.Parse(sessionID); err != nil {
			sessionID = uuid.New().String()
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cfg.Session.CookieName, sessionID, maxAge, "/", "", secure, true)
		c.Header(SessionHeader, sessionID)
		c.Set(sessionContextKey, sessionID)

		c.Next()
	}
}

// GetSessionIDFromContext extracts the session id set by Session
func GetSessionIDFromContext(c *gin.Context) (string, bool) {
	sessionID, exists := c.Get(sessionContextKey)
	if !exists {
		return "", false
	}
	id, ok := sessionID.(string)
	return id, ok && id != ""
}
