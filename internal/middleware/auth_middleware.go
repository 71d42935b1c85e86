package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/academy-api/pkg/auth"
)

// Context keys set by RequireAuth
const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// AuthMiddleware authenticates requests against bearer tokens issued by the
// external identity provider. Header only — this service sets no cookies.
type AuthMiddleware struct {
	verifier *auth.JWTVerifier
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(verifier *auth.JWTVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// RequireAuth rejects requests without a valid Bearer token. On success the
// verified user id (uuid.UUID) and role are stored in the gin context. No
// store access happens before this check passes.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			c.Abort()
			return
		}

		claims, err := m.verifier.VerifyToken(parts[1])
		if err != nil {
			log.Printf("[Auth] Token rejected: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			log.Printf("[Auth] Token rejected: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// AdminOnly rejects callers whose token does not carry the admin role.
// Must run after RequireAuth.
func (m *AuthMiddleware) AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists || role.(string) != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin rights required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
