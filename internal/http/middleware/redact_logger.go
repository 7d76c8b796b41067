// Package middleware holds the Gin middleware shared across the HTTP API.
//
// This file implements RedactingLogger, the access logger used on routes
// whose query strings and headers may carry personal data: client names,
// emails, phone numbers, bar numbers. Request and response bodies are never
// logged at all; metadata is scrubbed before it reaches the log stream.
// Scrubbing narrows the exposure but does not replace keeping PII out of
// URLs in the first place.
package middleware

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Patterns are applied in declaration order. UUIDs and dashed SSNs go before
// the phone pattern so their digit runs are not half-eaten by it; the phone
// pattern is the loosest and runs last.
var piiPatterns = []struct {
	re          *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)\b[0-9a-f]{8}\-[0-9a-f]{4}\-[1-5][0-9a-f]{3}\-[89ab][0-9a-f]{3}\-[0-9a-f]{12}\b`), "[REDACTED:id]"},
	// Dashed form only; undashed nine-digit runs fall to the phone pattern.
	{regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`), "[REDACTED:ssn]"},
	{regexp.MustCompile(`(?i)\b[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}\b`), "[REDACTED:email]"},
	// Matches "+1 212-555-1212", "212 555 1212", "(212) 555-1212".
	{regexp.MustCompile(`\b(?:\+?\d{1,3}[ .-]?)?(?:\(?\d{2,4}\)?[ .-]?)?\d{3,4}[ .-]?\d{4}\b`), "[REDACTED:phone]"},
}

// redactPII substitutes every recognized identifier in s.
func redactPII(s string) string {
	if s == "" {
		return s
	}
	for _, p := range piiPatterns {
		s = p.re.ReplaceAllString(s, p.replacement)
	}
	return s
}

// RedactOptions configures RedactingLogger. MaskHeaders lists extra header
// names (case-insensitive) whose values are replaced wholesale with
// "[REDACTED]", on top of the built-in Authorization, Cookie and Set-Cookie.
type RedactOptions struct {
	MaskHeaders []string
}

// maskSet merges the built-in sensitive headers with extra names, lowercased.
func maskSet(extra []string) map[string]struct{} {
	m := map[string]struct{}{
		"authorization": {},
		"cookie":        {},
		"set-cookie":    {},
	}
	for _, h := range extra {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			m[h] = struct{}{}
		}
	}
	return m
}

// scrubHeaders flattens request headers into a loggable map. Masked headers
// lose their value entirely; the rest are pattern-redacted.
func scrubHeaders(h http.Header, mask map[string]struct{}) map[string]string {
	out := make(map[string]string, len(h))
	for k, vv := range h {
		if _, masked := mask[strings.ToLower(k)]; masked {
			out[k] = "[REDACTED]"
			continue
		}
		out[k] = redactPII(strings.Join(vv, ", "))
	}
	return out
}

// RedactingLogger returns an access-log middleware with PII scrubbing.
//
// Each request logs method, route, scrubbed query and headers, status, size
// and latency. 5xx responses log at error, 4xx at warn, everything else at
// info. The request ID is taken from the X-Request-ID response header when
// upstream middleware set one, falling back to the request header.
func RedactingLogger(opts RedactOptions) gin.HandlerFunc {
	mask := maskSet(opts.MaskHeaders)

	return func(c *gin.Context) {
		start := time.Now()

		// Capture before handlers run; they may mutate the request.
		path := routePath(c)
		safeQuery := redactPII(c.Request.URL.RawQuery)
		safeHeaders := scrubHeaders(c.Request.Header, mask)

		c.Next()

		status := c.Writer.Status()
		reqID := c.Writer.Header().Get(requestIDHeader)
		if reqID == "" {
			reqID = c.GetHeader(requestIDHeader)
		}

		ev := log.Info()
		switch {
		case status >= http.StatusInternalServerError:
			ev = log.Error()
		case status >= http.StatusBadRequest:
			ev = log.Warn()
		}

		ev.
			Str("request_id", reqID).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", safeQuery).
			Int("status", status).
			Int("bytes", c.Writer.Size()).
			Dur("latency", time.Since(start)).
			Interface("headers", safeHeaders).
			Msg("http_request")
	}
}
