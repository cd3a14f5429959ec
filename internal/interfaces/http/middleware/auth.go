// internal/interfaces/http/middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-bff/internal/domain/session"
)

const currentUserKey = "current_user"

// RequireUser rejects requests whose session has no authenticated user.
// The resolved user is stored in the request context for handlers.
func RequireUser(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := GetSessionID(c)
		if sessionID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "No active session",
			})
			c.Abort()
			return
		}

		user := store.GetUser(c.Request.Context(), sessionID)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "You must be logged in",
			})
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// GetCurrentUser returns the user resolved by RequireUser
func GetCurrentUser(c *gin.Context) (*session.User, bool) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*session.User)
	return user, ok
}
