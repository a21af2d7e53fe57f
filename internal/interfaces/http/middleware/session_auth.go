package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"research-nest.backend/pkg/redis"
)

const (
	// SessionCookieName is the cookie carrying the opaque session id
	SessionCookieName = "session_id"
	// UserIDKey is the context key for the authenticated user ID
	UserIDKey = "userId"
)

// SessionAuth gates mutating routes behind a valid session. The session id
// comes from an httpOnly cookie; the session itself lives in Redis. Every
// failure mode collapses to the same 401 so nothing about session state leaks.
func SessionAuth(store *redis.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
			})
			return
		}

		session, err := store.GetSession(c.Request.Context(), sessionID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
			})
			return
		}

		userID, err := uuid.Parse(session.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
			})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// GetUserID gets the authenticated user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	val, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := val.(uuid.UUID)
	return userID, ok
}
