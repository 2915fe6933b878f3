package middleware

import (
	"net/http"
	"strings"

	"planbuilder/utils"

	"github.com/gin-gonic/gin"
)

// OwnerIDKey is where the authenticated guest owner id lands in the gin
// context.
const OwnerIDKey = "ownerID"

// GuestAuthMiddleware authenticates the anonymous drafting session: a
// guest JWT issued by the auth endpoint, carried as a Bearer token. The
// subject becomes the owner id every draft operation is scoped to.
func GuestAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		ownerID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(OwnerIDKey, ownerID)
		c.Next()
	}
}
