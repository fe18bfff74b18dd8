package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chirpy/backend/internal/auth"
)

const authUserIDKey = "auth_user_id"

type authenticator interface {
	Authenticate(token string) (uuid.UUID, error)
}

// AuthMiddleware is the gate for protected routes: it extracts the bearer
// token, validates it, and stores the authenticated user ID on the context.
// Every failure is the same 401.
func AuthMiddleware(svc authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.GetBearerToken(c.Request.Header)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		userID, err := svc.Authenticate(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Set(authUserIDKey, userID)
		c.Next()
	}
}

// AuthUserID returns the user ID set by AuthMiddleware.
func AuthUserID(c *gin.Context) (uuid.UUID, bool) {
	if value, ok := c.Get(authUserIDKey); ok {
		if userID, ok := value.(uuid.UUID); ok {
			return userID, true
		}
	}
	return uuid.Nil, false
}
