package middleware

import (
	"net/http"
	"strings"

	"booststudio/internal/auth"

	"github.com/gin-gonic/gin"
)

const (
	adminIDKey      = "admin_id"
	sessionTokenKey = "session_token"
)

// RequireAdmin gates admin routes behind a valid session token
// (Authorization: Bearer <token>).
func RequireAdmin(sessions *auth.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		token = strings.TrimSpace(token)

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Non autorisé - Token manquant",
			})
			return
		}

		adminID, err := sessions.Validate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": err.Error(),
			})
			return
		}

		c.Set(adminIDKey, adminID)
		c.Set(sessionTokenKey, token)
		c.Next()
	}
}

// GetAdminID returns the authenticated admin identity, empty when the route
// is not behind RequireAdmin.
func GetAdminID(c *gin.Context) string {
	return c.GetString(adminIDKey)
}

// GetSessionToken returns the raw bearer token of the current request.
func GetSessionToken(c *gin.Context) string {
	return c.GetString(sessionTokenKey)
}
