package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hrithikcode/TO-DO-LIST/internal/service"
)

const (
	ContextUser    = "current_user"
	ContextSession = "current_session"
)

// Auth validates the bearer session credential and loads the user into the
// request context. Revoked and expired tokens are both a 401.
func Auth(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_token"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		user, session, err := auth.Authenticate(c.Request.Context(), tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		c.Set(ContextUser, user)
		c.Set(ContextSession, session)

		c.Next()
	}
}
