package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freight-marketplace/pkg/utils"
)

func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userType, exists := c.Get("userType")
		if !exists {
			utils.ErrorResponse(c, http.StatusForbidden, "Role not found in context")
			c.Abort()
			return
		}

		role := userType.(string)

		for _, allowedRole := range allowedRoles {
			if role == allowedRole {
				c.Next()
				return
			}
		}

		utils.ErrorResponse(c, http.StatusForbidden, "Insufficient permissions")
		c.Abort()
	}
}

func ShipperOnly() gin.HandlerFunc {
	return RoleMiddleware("shipper")
}

func TransporterOnly() gin.HandlerFunc {
	return RoleMiddleware("transporter")
}
