package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Jeffrey-mu/weight-loss/models"
	"github.com/Jeffrey-mu/weight-loss/services"
	"github.com/Jeffrey-mu/weight-loss/utils"
)

const (
	ctxUserID    = "userID"
	ctxAdminUser = "adminUser"
)

// AuthRequired verifies the bearer token and attaches the subject user
// id to the request context. Requests without a valid token never reach
// the handler.
func AuthRequired(tokens *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header required"})
			return
		}

		userID, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		c.Set(ctxUserID, userID)
		c.Next()
	}
}

// AdminRequired runs after AuthRequired. It loads the full identity and
// asks the policy; a vanished identity is 401, a denied one 403.
func AdminRequired(users *services.UserService, policy *services.AdminPolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := UserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		user, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		if !policy.IsAdmin(user) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			return
		}

		c.Set(ctxAdminUser, user)
		c.Next()
	}
}

// UserID returns the authenticated user id set by AuthRequired.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ctxUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// AdminUser returns the identity loaded by AdminRequired.
func AdminUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(ctxAdminUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
