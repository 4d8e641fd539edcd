package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/civicwatch/api-go/models"
)

type contextKey string

// UserContextKey is where AuthRequired stores the resolved *models.User.
const UserContextKey contextKey = "currentUser"

// GetUser returns the authenticated user resolved by the auth middleware, or
// nil when the request was not authenticated.
func GetUser(c *gin.Context) *models.User {
	val, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}
	if user, ok := val.(*models.User); ok {
		return user
	}
	return nil
}
