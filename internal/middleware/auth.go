package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/calendar-api/internal/constants"
	apierrors "github.com/yukikurage/calendar-api/internal/errors"
	"github.com/yukikurage/calendar-api/internal/token"
)

const bearerPrefix = "Bearer "

// RequireAuth checks for a valid Bearer token on the request and injects
// the decoded identity into the context for downstream handlers.
func RequireAuth(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, bearerPrefix) {
			apierrors.Unauthorized(c, "No token provided")
			c.Abort()
			return
		}

		claims, err := tokens.Verify(strings.TrimPrefix(authHeader, bearerPrefix))
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyUserEmail, claims.Email)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(uint64)
	return id, ok
}

// GetUserEmail retrieves the current user's email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(constants.ContextKeyUserEmail)
	if !exists {
		return "", false
	}

	e, ok := email.(string)
	return e, ok
}
