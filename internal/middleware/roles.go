package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barber-booking/internal/models"
)

// RequireRole gates a route to the given roles. Runs after
// AuthMiddleware, which already rejected unknown role values.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		role, exists := c.Get(ContextUserRole)
		if !exists || !allowed[role.(string)] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient_role"})
			return
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}

func RequireBarber() gin.HandlerFunc {
	return RequireRole(models.RoleBarber, models.RoleAdmin)
}
