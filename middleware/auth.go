package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/templetrust/sevaledger/utils"
)

// AdminAuthMiddleware guards the administrator surface with a bearer
// token. Intentionally shallow: one admin identity, no roles.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.LogError("Missing Authorization header for admin route %s", c.Request.URL.Path)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login for access"})
			c.Abort()
			return
		}

		tokenString := strings.Replace(authHeader, "Bearer ", "", 1)
		adminID, err := utils.ValidateAdminToken(tokenString)
		if err != nil {
			utils.LogError("Invalid admin token: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login for access"})
			c.Abort()
			return
		}

		c.Set("admin_id", adminID)
		c.Next()
	}
}
