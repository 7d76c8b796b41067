// Package middleware holds the Gin middleware shared across the HTTP API.
//
// This file carries the observability trio: RequestID assigns or propagates
// a correlation ID, Logger emits one structured access line per request and
// parks a request-scoped zerolog.Logger in the context, and Recovery turns
// panics into JSON 500 responses without losing the correlation ID. Install
// them in that order so every log line and error body carries the ID.
// LoggerFrom hands the request-scoped logger to handlers and services.
package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// requestIDKey is the Gin context key holding the correlation ID.
	requestIDKey = "requestID"
	// requestIDHeader carries the correlation ID on the wire.
	requestIDHeader = "X-Request-ID"
	// ctxKeyLogger is the Gin context key holding the request-scoped logger.
	ctxKeyLogger = "logger"
	// maxQueryLogLength caps how much of the raw query string is logged.
	maxQueryLogLength = 2048
)

// RequestID reuses an incoming X-Request-ID when the client supplied one and
// generates a UUIDv4 otherwise. The ID is stored in the context and echoed on
// the response so clients can quote it when reporting a problem.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(requestIDKey, rid)
		c.Writer.Header().Set(requestIDHeader, rid)
		c.Next()
	}
}

// routePath prefers the matched route pattern over the raw URL path, falling
// back to the latter for unmatched requests so 404s still log something.
func routePath(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return c.Request.URL.Path
}

// Logger writes one access-log line per request and attaches a
// request-scoped zerolog.Logger under ctxKeyLogger for downstream use.
//
// The line includes method, route, correlation and user IDs, client IP,
// user agent, referer, the (truncated) query string, sizes in both
// directions, status and latency. Outcome picks the level: requests that
// collected Gin errors or returned 5xx log at error, 4xx at warn, the rest
// at info.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		rid, _ := c.Get(requestIDKey)
		uid, _ := c.Get("userID")

		scoped := log.With().
			Str("method", c.Request.Method).
			Str("path", routePath(c)).
			Str("request_id", asString(rid)).
			Str("user_id", asString(uid)).
			Str("remote_ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Str("referer", c.Request.Referer()).
			Str("query", truncate(c.Request.URL.RawQuery, maxQueryLogLength)).
			Int64("bytes_in", c.Request.ContentLength). // -1 when unknown
			Logger()
		c.Set(ctxKeyLogger, &scoped)

		c.Next()

		outcome := scoped.With().
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Int("bytes_out", c.Writer.Size()).
			Logger()

		var ev *zerolog.Event
		switch status := c.Writer.Status(); {
		case len(c.Errors) > 0:
			ev = outcome.Error().Str("errors", c.Errors.String())
		case status >= http.StatusInternalServerError:
			ev = outcome.Error()
		case status >= http.StatusBadRequest:
			ev = outcome.Warn()
		default:
			ev = outcome.Info()
		}
		ev.Msg("request")
	}
}

// Recovery converts a handler panic into a JSON 500 with the standard error
// envelope, or a bare 500 when the handler already wrote part of a response.
// The panic value and stack are logged either way.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				writePanicResponse(c, rec)
			}
		}()
		c.Next()
	}
}

func writePanicResponse(c *gin.Context, rec any) {
	rid, _ := c.Get(requestIDKey)
	log.Error().
		Interface("panic", rec).
		Bytes("stack", debug.Stack()).
		Str("request_id", asString(rid)).
		Msg("panic recovered")

	if c.Writer.Written() {
		// Too late for a JSON body.
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Header("Content-Type", "application/json")
	c.Header(requestIDHeader, asString(rid))
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"request_id": asString(rid),
		"code":       "internal_error",
		"message":    "internal server error",
	})
}

// LoggerFrom returns the request-scoped logger attached by Logger, or the
// global logger when none is attached. The result is never nil.
func LoggerFrom(c *gin.Context) *zerolog.Logger {
	if v, ok := c.Get(ctxKeyLogger); ok {
		if lg, ok := v.(*zerolog.Logger); ok {
			return lg
		}
	}
	l := log.With().Logger()
	return &l
}

// asString reads a context value as a string, empty for anything else.
func asString(v any) string {
	s, _ := v.(string)
	return s
}

// truncate caps s at max bytes, marking the cut with an ellipsis. max <= 0
// disables the cap. Byte truncation can split a rune, which is fine for log
// output.
func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
