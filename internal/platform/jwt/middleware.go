package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextClaims is the gin context key under which verified claims are stored.
const ContextClaims = "authClaims"

// Verifier validates bearer tokens for the middleware.
// Following Go convention: the interface is defined by the consumer
// (middleware), not the provider (Manager).
type Verifier interface {
	// Verify parses and validates a token string and returns its claims.
	Verify(token string) (*Claims, error)
}

// AuthRequired returns a Gin middleware function that validates bearer
// tokens and restricts access to authenticated users only.
// A missing token is answered with 403, an invalid or expired one with 401.
func AuthRequired(verifier Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "No token provided!"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. Verify JWT signature and expiry
		claims, err := verifier.Verify(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized!"})
			return
		}

		// 3. Attach claims and pass control to the next handler
		c.Set(ContextClaims, claims)
		c.Next()
	}
}

// ClaimsFromContext returns the verified claims attached by AuthRequired.
func ClaimsFromContext(c *gin.Context) (*Claims, bool) {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*Claims)
	return claims, ok
}
