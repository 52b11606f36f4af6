package middleware

import (
	"net/http"
	"strings"

	"shutterbook/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AdminAuthMiddleware checks the bearer key against the configured bcrypt
// hash. With no hash configured, admin endpoints are disabled outright.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		hash := config.AppConfig.AdminKeyHash
		if hash == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access is not configured"})
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		key := strings.TrimPrefix(authHeader, "Bearer ")

		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
