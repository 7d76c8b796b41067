// Package middleware holds the Gin middleware shared across the HTTP API.
//
// This file provides SecurityHeaders, a hardening middleware for a JSON API
// running behind a reverse proxy. It covers the conservative header set
// (nosniff, frame denial, referrer suppression), optional browser feature
// policies and cache suppression, and HSTS for deployments that terminate
// TLS end-to-end. No Content-Security-Policy is emitted; that only matters
// for HTML responses.
package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// SecurityOptions configures the headers emitted by SecurityHeaders.
//
// EnableHSTS must only be set when traffic is HTTPS the whole way, including
// the proxy-to-app hop; the header is still withheld on any request that
// arrives over plain HTTP. HSTSMaxAge falls back to 180 days when zero or
// negative. NoStore adds Cache-Control: no-store plus the legacy Pragma and
// Expires forms for responses that must never be cached. EnablePolicy adds
// Permissions-Policy and X-Permitted-Cross-Domain-Policies, which browsers
// honor and other clients ignore.
type SecurityOptions struct {
	EnableHSTS   bool
	HSTSMaxAge   time.Duration
	NoStore      bool
	EnablePolicy bool
}

// SecurityHeaders returns middleware that attaches security headers to every
// response.
//
// Always set: X-Content-Type-Options: nosniff, X-Frame-Options: DENY, and
// Referrer-Policy: no-referrer. The optional groups follow SecurityOptions.
// Strict-Transport-Security is emitted only when EnableHSTS is set and the
// request is HTTPS (direct TLS or X-Forwarded-Proto: https). When an
// X-Request-ID response header is present it is added to
// Access-Control-Expose-Headers so browser clients can correlate errors with
// server logs; an existing expose list is appended to, never clobbered.
func SecurityHeaders(opt SecurityOptions) gin.HandlerFunc {
	maxAge := int(opt.HSTSMaxAge.Seconds())
	if maxAge <= 0 {
		maxAge = int((180 * 24 * time.Hour).Seconds())
	}
	// The value never varies per request, so build it once.
	hstsValue := "max-age=" + strconv.Itoa(maxAge) + "; includeSubDomains; preload"

	return func(c *gin.Context) {
		h := c.Writer.Header()

		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")

		if opt.EnablePolicy {
			h.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=(), payment=()")
			h.Set("X-Permitted-Cross-Domain-Policies", "none")
		}

		if opt.NoStore {
			h.Set("Cache-Control", "no-store")
			h.Set("Pragma", "no-cache")
			h.Set("Expires", "0")
		}

		if opt.EnableHSTS && isHTTPS(c.Request) {
			h.Set("Strict-Transport-Security", hstsValue)
		}

		if rid := h.Get("X-Request-ID"); rid != "" {
			const hdr = "Access-Control-Expose-Headers"
			switch cur := h.Get(hdr); {
			case cur == "":
				h.Set(hdr, "X-Request-ID")
			case !strings.Contains(cur, "X-Request-ID"):
				h.Set(hdr, cur+", X-Request-ID")
			}
		}

		c.Next()
	}
}

// isHTTPS reports whether the request used HTTPS, either terminated here
// (r.TLS != nil) or at a proxy that set X-Forwarded-Proto: https.
func isHTTPS(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}
