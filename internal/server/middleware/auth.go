package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/draftbox/mediaroute/internal/domain"
)

// Auth checks for a valid Bearer token in the Authorization header. An
// empty key list disables authentication (local development).
func Auth(validKeys []string) gin.HandlerFunc {
	keyMap := make(map[string]bool)
	for _, k := range validKeys {
		keyMap[k] = true
	}

	return func(c *gin.Context) {
		if len(keyMap) == 0 {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				domain.UnauthorizedError("Missing Authorization header"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				domain.UnauthorizedError("Invalid Authorization header format"))
			return
		}

		if !keyMap[parts[1]] {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				domain.UnauthorizedError("Invalid API Key"))
			return
		}

		c.Next()
	}
}
