package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "cashbook/internal/errors"
)

// RelayAuth guards the notification relay routes. A request passes with a
// matching X-API-Key header, or with a valid owner bearer token when owner
// auth is enabled. With neither mechanism configured the routes are open.
func RelayAuth(secret string, authEnabled bool, apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authEnabled && apiKey == "" {
			c.Next()
			return
		}

		if apiKey != "" {
			key := c.GetHeader("X-API-Key")
			if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) == 1 {
				c.Next()
				return
			}
		}

		if authEnabled {
			token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
			if ok {
				if _, err := ParseAccessToken(secret, token); err == nil {
					c.Set("owner", true)
					c.Next()
					return
				}
			}
		}

		abortWithError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid or missing credentials"))
	}
}
