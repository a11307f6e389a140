package middleware

import (
	"net/http"
	"strings"

	"mentorhub/utils"

	"github.com/gin-gonic/gin"
)

// requireRole validates the bearer token, checks its hash against the stored
// auth session (so revoked tokens fail even before expiry) and pins the
// expected role claim. The account ID lands in the context under ctxKey.
func requireRole(role, ctxKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		subject, tokenRole, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		if tokenRole != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
			return
		}

		storedHash, err := utils.GetAuthSession(utils.GetAuthCacheClient(), subject)
		if err != nil || storedHash != utils.HashToken(tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session revoked or expired"})
			return
		}

		c.Set(ctxKey, subject)
		c.Next()
	}
}

// MentorAuthMiddleware guards mentor-only routes.
func MentorAuthMiddleware() gin.HandlerFunc {
	return requireRole("mentor", "mentorID")
}

// MenteeAuthMiddleware guards mentee-only routes.
func MenteeAuthMiddleware() gin.HandlerFunc {
	return requireRole("mentee", "menteeID")
}

// AdminAuthMiddleware guards the admin surface.
func AdminAuthMiddleware() gin.HandlerFunc {
	return requireRole("admin", "adminID")
}
