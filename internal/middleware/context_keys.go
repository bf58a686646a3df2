package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/rmirandadev06/dashboard-braseiro/internal/core/domain"
)

const (
	userIDKey   = contextKey("userID")
	userRoleKey = contextKey("userRole")
)

// GetUserIDFromContext retrieves the authenticated user ID from the request
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetUserRoleFromContext retrieves the authenticated user's role from the
// request context.
func GetUserRoleFromContext(c *gin.Context) (domain.UserRole, bool) {
	role, ok := c.Request.Context().Value(userRoleKey).(domain.UserRole)
	if !ok {
		return "", false
	}
	return role, true
}
