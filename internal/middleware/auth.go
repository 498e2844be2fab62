package middleware

import (
	"net/http"
	"strings"

	"taskhive/internal/pkg/token"

	"github.com/gin-gonic/gin"
)

const principalUIDKey = "principal_uid"

// accessVerifier is the slice of the token codec the middleware needs.
type accessVerifier interface {
	Verify(raw string) (*token.Claims, error)
}

// PrincipalUID returns the authenticated principal id stashed by
// Auth, or "" when the request never passed it.
func PrincipalUID(c *gin.Context) string {
	return c.GetString(principalUIDKey)
}

// Auth enforces a Bearer access token on protected routes. Any
// failure is a generic 401: the response does not distinguish
// missing, malformed, expired, or forged tokens.
func Auth(codec accessVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			abortUnauthorized(c, "Missing or invalid Authorization header")
			return
		}

		raw := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if raw == "" {
			abortUnauthorized(c, "Empty token")
			return
		}

		claims, err := codec.Verify(raw)
		if err != nil {
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set(principalUIDKey, claims.PrincipalUID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   gin.H{"code": "UNAUTHORIZED", "message": message},
	})
}
