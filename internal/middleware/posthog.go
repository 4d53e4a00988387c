package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/leadvault_backend/internal/platform/analytics"
	"github.com/gin-gonic/gin"
)

// PosthogMiddleware creates a Gin middleware handler that tracks successful authenticated calls with PostHog.
func PosthogMiddleware(client *analytics.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !client.IsInitialized() {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		// "/api/leads/:id" -> "api_leads_:id"
		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if method, ok := c.Get(string(authMethodKey)); ok {
			props["auth_method"] = method
		}
		client.Enqueue(userID, eventName, props)
	}
}

// PosthogEvent sends a custom event for the authenticated user of c.
func PosthogEvent(c *gin.Context, client *analytics.Client, eventName string, properties map[string]any) {
	if !client.IsInitialized() {
		return
	}
	userID, exists := GetUserIDFromContext(c)
	if !exists {
		return
	}
	if properties == nil {
		properties = make(map[string]any)
	}
	properties["method"] = c.Request.Method
	properties["path"] = c.Request.URL.Path
	client.Enqueue(userID, eventName, properties)
}
