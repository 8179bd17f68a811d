package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PhiHoang41/lumina-backend/internal/models"
	"github.com/PhiHoang41/lumina-backend/internal/utils"
)

// RequireAdmin rejects requests whose authenticated principal is not an
// ADMIN. It assumes AuthMiddleware ran earlier and stored the role.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != string(models.RoleAdmin) {
			utils.Error(c, http.StatusForbidden, "You do not have permission to perform this action")
			c.Abort()
			return
		}
		c.Next()
	}
}
