package middleware

import (
	"net/http"
	"strings"

	"bistro_boss/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	AuthEmailKey = "authEmail"
)

// JWTAuthMiddleware rejects requests without a valid bearer token and stores the
// token's email under AuthEmailKey.
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims, err := jwtUtil.ValidateToken(parts[1])
		if err != nil {
			log.Debugf("rejected token from %s: %v", c.ClientIP(), err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}

		c.Set(AuthEmailKey, claims.Email)
		c.Next()
	}
}

// AuthEmail returns the email stored by JWTAuthMiddleware
func AuthEmail(c *gin.Context) (string, bool) {
	email := c.GetString(AuthEmailKey)
	return email, email != ""
}
