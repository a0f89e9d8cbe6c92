package auth

import (
	"log"
	"net/http"
	"time"

	"assessment-service/internal/cache"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// RequireUser resolves the authenticated user for protected routes: the
// X-User-ID header set by the gateway wins, otherwise the bearer token is
// validated locally. The resolved identity is written through to the auth
// snapshot store so it survives a restart.
func RequireUser(store *cache.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			var err error
			userID, err = GetUserIDFromToken(c)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
				return
			}
		}
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
			return
		}

		c.Set(userIDKey, userID)
		if store != nil {
			snapshot := cache.AuthSnapshot{UserID: userID, ValidatedAt: time.Now().UTC()}
			if err := store.SaveAuth(c.Request.Context(), snapshot); err != nil {
				log.Printf("failed to cache auth snapshot for user %s: %v", userID, err)
			}
		}
		c.Next()
	}
}

// UserID returns the authenticated user id set by RequireUser.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
