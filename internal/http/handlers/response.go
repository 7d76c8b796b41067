// Package handlers provides HTTP handler implementations for the public API.
//
// This file holds the response helpers every endpoint goes through. Failures
// always serialize to the ErrorResponse envelope with a stable machine code
// from errors.go, so clients can branch on `code` and quote `request_id` when
// filing a problem. Successes are plain JSON of the handler's response type.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lexcraft/go-legal-backend/internal/http/middleware"
)

// ErrorResponse is the error envelope returned by every endpoint. RequestID
// echoes the X-Request-ID response header so a client error can be matched
// to its server log line.
type ErrorResponse struct {
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable machine-readable code (see errors.go constants)
	Code string `json:"code" example:"not_found"`
	// Human-readable message, safe to show to users
	Message string `json:"message" example:"resource not found"`
}

// fail aborts the request with an ErrorResponse at the given status. Server
// errors (5xx) additionally log through the request-scoped logger; client
// errors are the caller's fault and stay out of the error log.
func fail(c *gin.Context, status int, code, msg string) {
	if status >= http.StatusInternalServerError {
		middleware.LoggerFrom(c).Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, ErrorResponse{
		RequestID: c.Writer.Header().Get("X-Request-ID"),
		Code:      code,
		Message:   msg,
	})
}

// Fail exposes fail to other packages; the router uses it for its NoRoute
// and NoMethod fallbacks.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// ok writes body as JSON with the given status.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// noContent answers 204 for operations with nothing to return.
func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
