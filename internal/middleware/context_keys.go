package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

type contextKey string

const (
	userIDKey     = contextKey("userID")
	authMethodKey = contextKey("authMethod")
	loggerCtxKey  = contextKey("logger")
)

// Authentication methods recorded under authMethodKey.
const (
	AuthMethodJWT      = "jwt"
	AuthMethodAPIToken = "api_token"
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(userIDKey)); exists {
		userID, ok := v.(string)
		return userID, ok && userID != ""
	}
	return UserIDFromCtx(c.Request.Context())
}

// UserIDFromCtx retrieves the authenticated user ID from a request context.
func UserIDFromCtx(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// setAuthenticatedUser records userID on both the Gin and the request context and
// tags the request logger with it.
func setAuthenticatedUser(c *gin.Context, userID, method string) {
	c.Set(string(userIDKey), userID)
	c.Set(string(authMethodKey), method)

	ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
	ctx = WithLogger(ctx, GetLoggerFromCtx(ctx).With("user_id", userID))
	c.Request = c.Request.WithContext(ctx)
}

func isAuthenticated(c *gin.Context) bool {
	_, exists := c.Get(string(authMethodKey))
	return exists
}
