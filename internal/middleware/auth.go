package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/leadvault_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware creates a Gin middleware handler that validates Bearer access tokens.
// Requests already authenticated by APITokenAuth pass straight through.
func AuthMiddleware(tokenSvc services.TokenSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isAuthenticated(c) {
			c.Next()
			return
		}
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		userID, err := tokenSvc.ValidateAccessToken(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			logger.Debug("Invalid access token", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		setAuthenticatedUser(c, userID, AuthMethodJWT)
		c.Next()
	}
}
