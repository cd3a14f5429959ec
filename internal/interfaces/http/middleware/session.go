// internal/interfaces/http/middleware/session.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/your-org/storefront-bff/internal/config"
)

const sessionIDKey = "session_id"

// Session resolves the browser session ID cookie, minting a new one for
// first-time visitors. Every request downstream can rely on a session ID
// being present in the context.
func Session(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cfg.Session.CookieName)
		if err != nil || sessionID == "" {
			sessionID = uuid.New().String()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(
				cfg.Session.CookieName,
				sessionID,
				int(cfg.Session.TTL.Seconds()),
				"/",
				"",
				cfg.Session.CookieSecure,
				true, // httpOnly
			)
		}

		c.Set(sessionIDKey, sessionID)
		c.Next()
	}
}

// GetSessionID returns the session ID resolved by the Session middleware
func GetSessionID(c *gin.Context) string {
	if sessionID, exists := c.Get(sessionIDKey); exists {
		if id, ok := sessionID.(string); ok {
			return id
		}
	}
	return ""
}
