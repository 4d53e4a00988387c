package middleware

import (
	"net/http"

	"github.com/SscSPs/leadvault_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// APITokenHeader carries a long-lived API token.
const APITokenHeader = "x-api-key"

// APITokenAuth authenticates requests carrying an API token. Requests without
// the header continue to the Bearer middleware; a presented but invalid token is rejected.
func APITokenAuth(tokenSvc services.APITokenSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader(APITokenHeader)
		if apiKey == "" {
			c.Next()
			return
		}

		user, err := tokenSvc.ValidateToken(c.Request.Context(), apiKey)
		if err != nil {
			GetLoggerFromCtx(c.Request.Context()).Debug("Rejected API token", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API token"})
			return
		}

		setAuthenticatedUser(c, user.UserID, AuthMethodAPIToken)
		c.Next()
	}
}
