package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resolvehub/internal/domain"
	"resolvehub/internal/pkg/response"
)

// RequireProviderRole limits a route to the service-provider role family.
func RequireProviderRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if !domain.UserRole(role.(string)).IsProvider() {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: provider role required")
			c.Abort()
			return
		}

		c.Next()
	}
}
