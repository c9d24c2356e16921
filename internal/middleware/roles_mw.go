package middleware

import (
	"context"
	"net/http"

	"bistro_boss/internal/model"

	"github.com/gin-gonic/gin"
)

// UserLookup finds the stored user for an authenticated email
type UserLookup interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// AdminMiddleware lets the request through only when the stored role of the
// authenticated user is admin. It must run after JWTAuthMiddleware.
func AdminMiddleware(users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := AuthEmail(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}

		user, err := users.FindByEmail(c.Request.Context(), email)
		if err != nil {
			log.Errorf("admin check for %s failed: %v", email, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify role"})
			return
		}
		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
			return
		}

		c.Next()
	}
}
