package middleware

import (
	"errors"
	"strings"

	"jotbox/services"
	"jotbox/utils"

	"github.com/gin-gonic/gin"
)

// UserIDKey is the context key under which the resolved caller identity is
// stored. It is the sole authorization input for everything downstream.
const UserIDKey = "user_id"

// AuthMiddleware is the access-control gateway: it extracts the bearer token,
// resolves it to a user id, and binds that identity to the request. Requests
// without a valid identity never reach a handler.
func AuthMiddleware(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.Unauthorized(c, services.ErrTokenMissing.Error())
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := tokens.Validate(tokenString)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTokenExpired):
				utils.Unauthorized(c, services.ErrTokenExpired.Error())
			default:
				utils.Unauthorized(c, services.ErrTokenInvalid.Error())
			}
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// CallerID returns the identity bound by AuthMiddleware.
func CallerID(c *gin.Context) (string, bool) {
	userID := c.GetString(UserIDKey)
	return userID, userID != ""
}
