// Package middleware holds the Gin middleware shared across the HTTP API.
//
// This file adds idempotency support for the generation endpoints. Clients
// send an Idempotency-Key header on POSTs they may retry; the middleware
// validates the key, stashes it in the context, and asks a storage-backed
// lookup whether a completed result already exists for the same caller,
// path and key. On a hit it flags the request as a replay and exempts it
// from rate limiting, leaving the actual replay response to the handler,
// which knows where the persisted result lives. Persistence stays behind
// the narrow IdempotencyLookup func type.
package middleware

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// HeaderIdempotencyKey is the request header carrying the client's retry
// key. A client reuses the same value across retries of one semantic
// operation so duplicates can be collapsed.
const HeaderIdempotencyKey = "Idempotency-Key"

// Context keys for idempotency state. Unexported; read them through
// GetIdempotencyKey, IsReplay and IsRateBypass.
const (
	ctxKeyIdemKey    = "idem.key"
	ctxKeyIdemReplay = "idem.replay" // bool: true when a stored replay exists
	ctxKeyRateBypass = "rate.bypass" // bool: true to skip rate limiting
)

// defaultKeyPattern is an RFC-7230-ish token plus the separators UUIDs and
// timestamps commonly carry.
var defaultKeyPattern = regexp.MustCompile(`^[A-Za-z0-9._~\-:]+$`)

// GetIdempotencyKey returns the validated key stashed by
// IdempotencyValidator, with ok reporting presence. Handlers read the key
// through this accessor rather than the raw header so they only ever see
// validated values.
func GetIdempotencyKey(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxKeyIdemKey)
	if !ok {
		return "", false
	}
	s, _ := v.(string)
	return s, s != ""
}

// IsReplay reports whether this request duplicates a previously completed
// operation. Handlers use it to serve the persisted result instead of
// generating again.
func IsReplay(c *gin.Context) bool {
	v, ok := c.Get(ctxKeyIdemReplay)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// IdempotencyOptions configures header validation. MaxLen caps the accepted
// key length, defaulting to 200 when zero or negative. Pattern restricts the
// allowed characters, defaulting to defaultKeyPattern when nil. TTL windows
// are the lookup's concern, not the validator's.
type IdempotencyOptions struct {
	MaxLen  int
	Pattern *regexp.Regexp
}

// IdempotencyLookup answers whether a successful, still-valid result exists
// for (userID, scope, key) at the given time. Scope is the request path, so
// the same key against different resources never collides. Errors mean the
// lookup itself failed and must not block normal processing.
type IdempotencyLookup func(ctx context.Context, userID, scope, key string, now time.Time) (exists bool, err error)

// IdempotencyValidator validates the Idempotency-Key header when present and
// marks detected replays in the request context.
//
// Requests without the header pass through untouched. A malformed key is
// rejected with 400 before any handler runs. A valid key is stashed for
// GetIdempotencyKey; when lookup (if non-nil) reports a prior completed
// result, the replay and rate-bypass flags are both set, so a replayed
// generation does not spend the caller's rate budget. The middleware never
// writes the cached payload itself.
func IdempotencyValidator(opts IdempotencyOptions, lookup IdempotencyLookup) gin.HandlerFunc {
	maxLen := opts.MaxLen
	if maxLen <= 0 {
		maxLen = 200
	}
	pat := opts.Pattern
	if pat == nil {
		pat = defaultKeyPattern
	}

	return func(c *gin.Context) {
		key := c.GetHeader(HeaderIdempotencyKey)
		if key == "" {
			c.Next()
			return
		}
		if len(key) > maxLen || !pat.MatchString(key) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"request_id": c.Writer.Header().Get(requestIDHeader),
				"code":       "bad_idempotency_key",
				"message":    "invalid Idempotency-Key",
			})
			return
		}

		c.Set(ctxKeyIdemKey, key)

		if lookup != nil {
			exists, _ := lookup(c.Request.Context(), userIDFromCtx(c), c.Request.URL.Path, key, time.Now().UTC())
			if exists {
				c.Set(ctxKeyIdemReplay, true)
				c.Set(ctxKeyRateBypass, true)
			}
		}

		c.Next()
	}
}

// userIDFromCtx resolves the caller identity the same way handlers do:
// the "userID" context value from upstream auth, then the X-User-ID header,
// then the development fallback. Replay detection and replay serving must
// agree on the caller or retries would never match.
func userIDFromCtx(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	if c.Request != nil {
		if h := strings.TrimSpace(c.Request.Header.Get("X-User-ID")); h != "" {
			return h
		}
	}
	return "demo-user"
}
