package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole is the authorization policy evaluated after authentication and
// before the core operation runs. Compose it per route group instead of
// folding role checks into handlers.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, _ := c.Get(ContextUserRole)
		if current != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"status":     "error",
				"error_code": "forbidden_role",
				"message":    "No tienes permiso para acceder a esta ruta.",
			})
			return
		}
		c.Next()
	}
}
