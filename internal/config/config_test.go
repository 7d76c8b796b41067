package config

import (
	"os"
	"reflect"
	"strconv"
	"strings"
	"testing"
	"time"
)

// Tests mutate process env via t.Setenv, which also guards against t.Parallel
// misuse within this package.

func TestMustLoad_PanicsOnInvalidConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")
	defer func() {
		if recover() == nil {
			t.Fatalf("MustLoad should panic on invalid config")
		}
	}()
	_ = MustLoad()
}

func TestMustLoad_DefaultsAreValid(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("MustLoad should not panic on valid defaults, got: %v", r)
		}
	}()
	if cfg := MustLoad(); cfg.APIBasePath == "" {
		t.Fatalf("unexpected empty config from MustLoad")
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Port != "8004" {
		t.Errorf("Port = %q; want 8004", cfg.Port)
	}
	if cfg.APIBasePath != "/api/v1" {
		t.Errorf("APIBasePath = %q; want /api/v1", cfg.APIBasePath)
	}
	if cfg.DBPath != "legal_intelligence.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.AI.Model != "gemini-2.5-flash-lite" || cfg.AI.Temperature != 0.7 || cfg.AI.MaxTokens != 8000 {
		t.Errorf("AI defaults unexpected: %+v", cfg.AI)
	}
	if len(cfg.PracticeAreas) != 10 {
		t.Errorf("len(PracticeAreas) = %d; want 10", len(cfg.PracticeAreas))
	}
	if len(cfg.ComplianceFrameworks) != 7 {
		t.Errorf("len(ComplianceFrameworks) = %d; want 7", len(cfg.ComplianceFrameworks))
	}
}

func TestLoad_OverridesAndNormalization(t *testing.T) {
	t.Setenv("PORT", "8088")
	t.Setenv("READ_TIMEOUT", "2s")
	t.Setenv("READ_HEADER_TIMEOUT", "1s")
	t.Setenv("WRITE_TIMEOUT", "3s")
	t.Setenv("IDLE_TIMEOUT", "4s")
	t.Setenv("MAX_HEADER_BYTES", "8192")
	t.Setenv("GIN_MODE", "weird")    // normalizes to release
	t.Setenv("LOG_LEVEL", "warning") // alias for warn
	t.Setenv("LOG_PRETTY", "yes")
	t.Setenv("SWAGGER_ENABLED", "on")
	t.Setenv("API_BASE_PATH", "api/v1/") // missing slash, trailing slash
	t.Setenv("DATABASE_PATH", "db.sqlite")
	t.Setenv("SEED_ON_START", "1")
	t.Setenv("GEMINI_API_KEY", "k-123")
	t.Setenv("AI_TEMPERATURE", "0.3")
	t.Setenv("AI_MAX_TOKENS", "4096")
	t.Setenv("AI_TIMEOUT", "30s")
	t.Setenv("AI_FAKE", "off")
	t.Setenv("RATE_RPS", "x")      // unparseable, default applies
	t.Setenv("RATE_BURST", "nope") // unparseable, default applies
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.com , , http://b ")
	t.Setenv("ENABLE_HSTS", "TRUE")
	t.Setenv("HSTS_MAX_AGE", "24h")
	t.Setenv("IDEMPOTENCY_TTL", "48h")
	t.Setenv("OTEL_ENABLED", "1")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "otel:4317")
	t.Setenv("OTEL_EXPORTER_OTLP_INSECURE", "0")
	t.Setenv("OTEL_SERVICE_NAME", "svc")
	t.Setenv("OTEL_TRACES_SAMPLER_ARG", "0.75")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Port != "8088" || cfg.MaxHeaderBytes != 8192 {
		t.Errorf("server basics unexpected: %+v", cfg)
	}
	if cfg.ReadTimeout != 2*time.Second || cfg.ReadHeaderTimeout != time.Second ||
		cfg.WriteTimeout != 3*time.Second || cfg.IdleTimeout != 4*time.Second {
		t.Errorf("timeouts unexpected: %+v", cfg)
	}
	if cfg.GinMode != "release" {
		t.Errorf("GinMode = %q; want normalized release", cfg.GinMode)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q; want warn (warning alias)", cfg.LogLevel)
	}
	if !cfg.LogPretty || !cfg.SwaggerEnabled {
		t.Errorf("bool envs not parsed: pretty=%v swagger=%v", cfg.LogPretty, cfg.SwaggerEnabled)
	}
	if cfg.APIBasePath != "/api/v1" {
		t.Errorf("APIBasePath = %q; want /api/v1", cfg.APIBasePath)
	}
	if cfg.DBPath != "db.sqlite" || !cfg.SeedOnStart {
		t.Errorf("persistence unexpected: %+v", cfg)
	}
	if cfg.AI.APIKey != "k-123" || cfg.AI.Temperature != 0.3 ||
		cfg.AI.MaxTokens != 4096 || cfg.AI.Timeout != 30*time.Second || cfg.AI.Fake {
		t.Errorf("AI fields unexpected: %+v", cfg.AI)
	}
	if cfg.RateRPS != 5.0 || cfg.RateBurst != 10 {
		t.Errorf("rate fallback defaults unexpected: rps=%v burst=%d", cfg.RateRPS, cfg.RateBurst)
	}
	if want := []string{"https://a.com", "http://b"}; !reflect.DeepEqual(cfg.CORS.AllowedOrigins, want) {
		t.Errorf("CORS origins = %#v; want %#v", cfg.CORS.AllowedOrigins, want)
	}
	if !cfg.Security.EnableHSTS || cfg.Security.HSTSMaxAge != 24*time.Hour {
		t.Errorf("security unexpected: %+v", cfg.Security)
	}
	if cfg.IdempotencyTTL != 48*time.Hour {
		t.Errorf("IdempotencyTTL = %v; want 48h", cfg.IdempotencyTTL)
	}
	if !cfg.OTEL.Enabled || cfg.OTEL.Endpoint != "otel:4317" || cfg.OTEL.Insecure ||
		cfg.OTEL.ServiceName != "svc" || cfg.OTEL.SampleRatio != 0.75 {
		t.Errorf("OTEL unexpected: %+v", cfg.OTEL)
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	cases := []struct {
		name    string
		key     string
		value   string
		wantSub string
	}{
		{"invalid log level", "LOG_LEVEL", "verbose", "LOG_LEVEL"},
		{"blank port", "PORT", "   ", "PORT must not be empty"},
		{"zero read timeout", "READ_TIMEOUT", "0s", "timeouts must be positive"},
		{"zero header cap", "MAX_HEADER_BYTES", "0", "MAX_HEADER_BYTES"},
		{"blank db path", "DATABASE_PATH", "   ", "DATABASE_PATH must not be empty"},
		{"blank model", "AI_MODEL", "   ", "AI_MODEL"},
		{"temperature out of range", "AI_TEMPERATURE", "2.5", "AI_TEMPERATURE"},
		{"zero max tokens", "AI_MAX_TOKENS", "0", "AI_MAX_TOKENS"},
		{"zero generation timeout", "AI_TIMEOUT", "0s", "AI_TIMEOUT"},
		{"negative rps", "RATE_RPS", "-1", "RATE_RPS"},
		{"zero burst", "RATE_BURST", "0", "RATE_BURST"},
		{"negative hsts age", "HSTS_MAX_AGE", "-1s", "HSTS_MAX_AGE"},
		{"zero idempotency ttl", "IDEMPOTENCY_TTL", "0s", "IDEMPOTENCY_TTL"},
		{"sample ratio above one", "OTEL_TRACES_SAMPLER_ARG", "1.5", "OTEL_TRACES_SAMPLER_ARG"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tc.wantSub) {
				t.Fatalf("Load() err = %v; want substring %q", err, tc.wantSub)
			}
		})
	}
}

func TestGetenv(t *testing.T) {
	t.Setenv("X_EMPTY", "")
	if getenv("X_EMPTY", "d") != "d" {
		t.Errorf("empty var should fall back to default")
	}
	t.Setenv("X_SET", "val")
	if getenv("X_SET", "d") != "val" {
		t.Errorf("set var should be read")
	}
}

func TestTypedGetters(t *testing.T) {
	t.Setenv("F_VALID", "3.14")
	t.Setenv("F_BAD", "abc")
	if getfloat("F_VALID", 0) != 3.14 || getfloat("F_BAD", 1.23) != 1.23 || getfloat("F_UNSET", 9.9) != 9.9 {
		t.Errorf("getfloat behavior unexpected")
	}

	t.Setenv("I_VALID", "42")
	t.Setenv("I_BAD", "4.2")
	if getint("I_VALID", 0) != 42 || getint("I_BAD", 7) != 7 || getint("I_UNSET", 3) != 3 {
		t.Errorf("getint behavior unexpected")
	}

	t.Setenv("D_VALID", "150ms")
	t.Setenv("D_BAD", "soon")
	if getdur("D_VALID", time.Second) != 150*time.Millisecond ||
		getdur("D_BAD", 2*time.Second) != 2*time.Second ||
		getdur("D_UNSET", time.Minute) != time.Minute {
		t.Errorf("getdur behavior unexpected")
	}
}

func TestGetbool(t *testing.T) {
	for i, v := range []string{"1", "true", "TRUE", " yes ", "Y", "on", "On"} {
		k := "B_T_" + strconv.Itoa(i)
		t.Setenv(k, v)
		if !getbool(k, false) {
			t.Errorf("getbool(%q) = false; want true", v)
		}
	}
	for i, v := range []string{"0", "false", "FALSE", " no ", "N", "off", "Off"} {
		k := "B_F_" + strconv.Itoa(i)
		t.Setenv(k, v)
		if getbool(k, true) {
			t.Errorf("getbool(%q) = true; want false", v)
		}
	}
	t.Setenv("B_EMPTY", "")
	if !getbool("B_EMPTY", true) || getbool("B_EMPTY", false) {
		t.Errorf("unset/empty must yield the default")
	}
	t.Setenv("B_GARBAGE", "maybe")
	if !getbool("B_GARBAGE", true) {
		t.Errorf("unrecognized value must yield the default")
	}
}

func TestSplitCSV(t *testing.T) {
	if out := splitCSV(""); out != nil {
		t.Errorf("splitCSV(\"\") = %#v; want nil", out)
	}
	if out := splitCSV(" , ,, "); out != nil {
		t.Errorf("splitCSV of only blanks = %#v; want nil", out)
	}
	want := []string{"a", "b", "c"}
	if got := splitCSV(" a, ,b ,  c  ,"); !reflect.DeepEqual(got, want) {
		t.Errorf("splitCSV = %#v; want %#v", got, want)
	}
}

func TestNormalizeBasePath(t *testing.T) {
	cases := map[string]string{
		"":         "/",
		" / ":      "/",
		"v1":       "/v1",
		"/v1/":     "/v1",
		"/api/v1":  "/api/v1",
		"api/v1//": "/api/v1",
	}
	for in, want := range cases {
		if got := normalizeBasePath(in); got != want {
			t.Errorf("normalizeBasePath(%q) = %q; want %q", in, got, want)
		}
	}
}

// Keep ambient env from leaking into default-sensitive tests.
func TestMain(m *testing.M) {
	os.Unsetenv("PORT")
	os.Exit(m.Run())
}
