package respond

import (
	"github.com/gin-gonic/gin"

	"docanalyzer-backend/internal/shared/telemetry"
)

// ErrorResponse is the error envelope returned to clients. Storage
// failures are reported with a generic message; details stay in logs.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error sends a structured error response and logs the failure with
// request context.
func Error(c *gin.Context, status int, message string) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}
