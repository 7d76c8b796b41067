package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRedactPII(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"email", "reach sarah.mitchell@mitchelllaw.com today", "reach [REDACTED:email] today"},
		{"phone", "call 415-555-0101 now", "call [REDACTED:phone] now"},
		{"ssn dashed", "ssn 123-45-6789 on file", "ssn [REDACTED:ssn] on file"},
		{"uuid", "id 123e4567-e89b-12d3-a456-426614174000 ok", "id [REDACTED:id] ok"},
		{"clean text", "motion for summary judgment", "motion for summary judgment"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := redactPII(tc.in); got != tc.want {
				t.Fatalf("redactPII(%q) = %q; want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestMaskSet(t *testing.T) {
	m := maskSet([]string{" X-Api-Key ", "", "COOKIE"})
	for _, want := range []string{"authorization", "cookie", "set-cookie", "x-api-key"} {
		if _, ok := m[want]; !ok {
			t.Errorf("maskSet missing %q: %#v", want, m)
		}
	}
	if len(m) != 4 {
		t.Errorf("maskSet size = %d; want 4 (blank dropped, cookie deduped)", len(m))
	}
}

func TestScrubHeaders(t *testing.T) {
	h := http.Header{}
	h.Set("Authorization", "Bearer secret")
	h.Set("X-Custom", "email a@b.com")
	h.Add("Accept", "application/json")
	h.Add("Accept", "text/plain")

	out := scrubHeaders(h, maskSet(nil))
	if out["Authorization"] != "[REDACTED]" {
		t.Fatalf("Authorization not masked: %q", out["Authorization"])
	}
	if out["X-Custom"] != "email [REDACTED:email]" {
		t.Fatalf("X-Custom not pattern-redacted: %q", out["X-Custom"])
	}
	if out["Accept"] != "application/json, text/plain" {
		t.Fatalf("multi-value header not joined: %q", out["Accept"])
	}
}

func TestRedactingLogger_ScrubsQueryAndHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLogger(t)

	r := gin.New()
	// Upstream middleware normally sets the response request-id header.
	r.Use(func(c *gin.Context) {
		c.Header("X-Request-ID", "rid-resp")
		c.Next()
	})
	r.Use(RedactingLogger(RedactOptions{MaskHeaders: []string{"X-Api-Key"}}))
	r.GET("/lawyers/:id", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	q := "email=a.b+tag@example.com&phone=+1-555-123-4567&ssn=123-45-6789&id=123e4567-e89b-12d3-a456-426614174000"
	req := httptest.NewRequest(http.MethodGet, "/lawyers/123?"+q, nil)
	req.Header.Set("Authorization", "Bearer secret")
	req.Header.Set("Cookie", "sid=topsecret")
	req.Header.Set("X-Api-Key", "shhh")
	// PII in an unmasked header gets pattern-redacted, not blanked.
	req.Header.Set("X-Custom", "email a@b.com id=123e4567-e89b-12d3-a456-426614174000 ssn 123-45-6789 phone 555-123-4567")
	// The response header must win over this one.
	req.Header.Set("X-Request-ID", "rid-req")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	logs := buf.String()
	for _, want := range []string{
		`"level":"info"`,
		`"path":"/lawyers/:id"`, // route pattern, not the raw URL
		`"request_id":"rid-resp"`,
		`[REDACTED:email]`,
		`[REDACTED:phone]`,
		`[REDACTED:ssn]`,
		`[REDACTED:id]`,
		`"Authorization":"[REDACTED]"`,
		`"Cookie":"[REDACTED]"`,
		`"X-Api-Key":"[REDACTED]"`,
		`"X-Custom":"email [REDACTED:email] id=[REDACTED:id] ssn [REDACTED:ssn] phone [REDACTED:phone]"`,
	} {
		if !strings.Contains(logs, want) {
			t.Errorf("log line missing %s:\n%s", want, logs)
		}
	}
	// The raw values must be gone entirely.
	for _, leak := range []string{"a.b+tag@example.com", "topsecret", "shhh"} {
		if strings.Contains(logs, leak) {
			t.Errorf("log line leaked %q:\n%s", leak, logs)
		}
	}
}

func TestRedactingLogger_LevelsAndRequestIDFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLogger(t)

	// No upstream request-id middleware here: the logger falls back to the
	// request header.
	r := gin.New()
	r.Use(RedactingLogger(RedactOptions{}))
	r.GET("/warn", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/error", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for path, rid := range map[string]string{"/warn": "rid-warn", "/error": "rid-err"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("X-Request-ID", rid)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
	}

	logs := buf.String()
	if !strings.Contains(logs, `"level":"warn"`) || !strings.Contains(logs, `"request_id":"rid-warn"`) {
		t.Fatalf("warn log or its request_id fallback missing:\n%s", logs)
	}
	if !strings.Contains(logs, `"level":"error"`) || !strings.Contains(logs, `"request_id":"rid-err"`) {
		t.Fatalf("error log or its request_id fallback missing:\n%s", logs)
	}
}
