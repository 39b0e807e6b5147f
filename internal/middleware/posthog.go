package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/salesmaster_cloud/internal/utils"
	"github.com/gin-gonic/gin"
)

// routesToSkip contains method and route pairs that should not be tracked by PostHog.
var routesToSkip = map[string]bool{
	"GET /health":                   true,
	"GET /api/v1/records/stream":    true,
	"GET /api/v1/imports/:uploadID": true,
	"GET /api/v1/imports/fields":    true,
	"GET /api/v1/session":           true,
}

func skipTracking(method, fullPath string) bool {
	return routesToSkip[method+" "+fullPath]
}

// PosthogMiddleware creates a Gin middleware handler that tracks API events with PostHog
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || skipTracking(c.Request.Method, c.FullPath()) {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		session, exists := GetSessionFromContext(c)
		if !exists {
			return
		}

		// "/api/v1/records/:id/draft" -> "api_v1_records_:id_draft"
		eventName := strings.TrimPrefix(c.FullPath(), "/")
		eventName = strings.ReplaceAll(eventName, "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
			"role":        string(session.Role),
		}
		if session.VendorName != "" {
			props["vendor"] = session.VendorName
		}

		posthogClient.Enqueue(session.SessionID, eventName, props)
	}
}
