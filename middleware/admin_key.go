package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// AdminKeyMiddleware gates mutating blog endpoints behind the shared
// x-admin-key header. An unset server key is a misconfiguration (500),
// a missing or wrong client key is 401.
func AdminKeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == "OPTIONS" {
			c.Next()
			return
		}
		adminKey := os.Getenv("ADMIN_KEY")
		if adminKey == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ADMIN_KEY not set on server"})
			c.Abort()
			return
		}
		key := c.GetHeader("x-admin-key")
		if key == "" || key != adminKey {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized (admin key missing/invalid)"})
			c.Abort()
			return
		}
		c.Next()
	}
}
