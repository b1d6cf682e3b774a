package middleware

import (
	"net/http"

	"github.com/ramneet9/Food-DEL/internal/auth"

	"github.com/gin-gonic/gin"
)

// CustomerOnly gates routes to customer accounts.
func CustomerOnly() gin.HandlerFunc {
	return requireRole(auth.RoleCustomer)
}

// OwnerOnly gates routes to restaurant-owner accounts.
func OwnerOnly() gin.HandlerFunc {
	return requireRole(auth.RoleRestaurantOwner)
}

func requireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("userRole")
		if role == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "role missing"})
			return
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	}
}
