package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// localOperator identifies events when auth is disabled.
const localOperator = "local"

// EventSink receives usage events.
type EventSink interface {
	Enabled() bool
	Enqueue(distinctID string, event string, properties map[string]any)
}

// UsageEvents records one event per successful request, named after the
// matched route (e.g. GET /api/entries/:id -> "get_api_entries_id").
func UsageEvents(sink EventSink) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sink == nil || !sink.Enabled() {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		event := routeEventName(c.Request.Method, c.FullPath())
		if event == "" {
			return
		}

		operator, ok := GetOperatorFromContext(c)
		if !ok {
			operator = localOperator
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"route":       c.FullPath(),
			"status_code": c.Writer.Status(),
		}
		if format := c.Query("format"); format != "" {
			props["format"] = format
		}
		sink.Enqueue(operator, event, props)
	}
}

func routeEventName(method, fullPath string) string {
	path := strings.Trim(fullPath, "/")
	if path == "" {
		return ""
	}
	path = strings.ReplaceAll(path, ":", "")
	path = strings.ReplaceAll(path, "/", "_")
	path = strings.ReplaceAll(path, "-", "_")
	return strings.ToLower(method) + "_" + path
}
