package stubserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const contextKeyClaims = "claims"

// requireAuth validates a Bearer JWT from the Authorization header and
// stores its claims on the context.
func requireAuth(tokens *Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortMessage(c, http.StatusUnauthorized, "Authorization token is required")
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")
		if raw == header {
			abortMessage(c, http.StatusUnauthorized, "Authorization header must be a Bearer token")
			return
		}

		claims, err := tokens.Validate(raw)
		if err != nil {
			abortMessage(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set(contextKeyClaims, claims)
		c.Next()
	}
}

// requireAdmin rejects non-administrator callers. The client hides
// admin affordances too, but the server is the actual authority.
func requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := getClaims(c)
		if claims == nil || !claims.Admin {
			abortMessage(c, http.StatusForbidden, "Administrator access required")
			return
		}
		c.Next()
	}
}

// getClaims retrieves the JWT claims from the Gin context.
func getClaims(c *gin.Context) *Claims {
	val, exists := c.Get(contextKeyClaims)
	if !exists {
		return nil
	}
	claims, ok := val.(*Claims)
	if !ok {
		return nil
	}
	return claims
}
