// Package config loads application settings from the environment, applies
// defaults, and validates the result. Everything tunable lives here: server
// timeouts, logging, the database path, rate limits, the generation model,
// and tracing.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// CORSConfig lists the origins allowed to call the API cross-origin.
type CORSConfig struct {
	AllowedOrigins []string
}

// SecurityConfig gates the HSTS response header.
type SecurityConfig struct {
	EnableHSTS bool
	HSTSMaxAge time.Duration
}

// OTELConfig carries the OpenTelemetry exporter settings.
type OTELConfig struct {
	Enabled     bool    // OTEL_ENABLED
	Endpoint    string  // OTEL_EXPORTER_OTLP_ENDPOINT, host:port
	Insecure    bool    // OTEL_EXPORTER_OTLP_INSECURE, plaintext when true
	ServiceName string  // OTEL_SERVICE_NAME (e.g. "go-legal-backend")
	SampleRatio float64 // OTEL_TRACES_SAMPLER_ARG, fraction in [0,1]
}

// AIConfig defines the settings for the hosted generation model. The fake
// generator replaces the remote call with canned local output so the server
// can run without an API key in development and tests.
type AIConfig struct {
	APIKey      string        // GEMINI_API_KEY
	Model       string        // AI_MODEL
	BaseURL     string        // AI_BASE_URL
	Temperature float64       // AI_TEMPERATURE in [0..2]
	MaxTokens   int           // AI_MAX_TOKENS
	Timeout     time.Duration // AI_TIMEOUT per generation call
	Fake        bool          // AI_FAKE
}

// Config is the full runtime configuration, grouped by concern.
type Config struct {
	// App
	AppName     string // APP_NAME
	Environment string // ENVIRONMENT: development|staging|production

	// Server
	Port              string        // digits only, no colon
	ReadTimeout       time.Duration // full-request read budget
	ReadHeaderTimeout time.Duration // header read budget
	WriteTimeout      time.Duration // e.g. 120s; must cover a generation call
	IdleTimeout       time.Duration // keep-alive idle window
	MaxHeaderBytes    int           // request header cap in bytes
	GinMode           string        // debug|release|test

	// Logging / Docs
	LogLevel       string // debug|info|warn|error|fatal|panic
	LogPretty      bool   // console writer instead of JSON
	SwaggerEnabled bool   // serve /swagger, development only
	APIBasePath    string // mount point for the versioned API

	// Persistence
	DBPath      string // SQLite path
	SeedOnStart bool   // load sample data at startup (development aid)

	// Domain reference lists, exposed by the config endpoint and used as
	// drafting/compliance defaults.
	PracticeAreas        []string
	ComplianceFrameworks []string

	// Generation model
	AI AIConfig

	// Rate limiting
	RateRPS   float64 // sustained tokens per second (>= 0)
	RateBurst int     // burst capacity (>= 1)

	// Web protection
	CORS     CORSConfig
	Security SecurityConfig

	// Idempotency
	IdempotencyTTL time.Duration // replay window for an Idempotency-Key

	// Observability
	OTEL OTELConfig
}

// MustLoad is Load for main(): any validation failure is fatal.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load builds the Config from the environment in three steps: read with
// defaults, normalize the enum-ish fields, then validate ranges.
func Load() (Config, error) {
	cfg := Config{
		// App
		AppName:     getenv("APP_NAME", "Legal Intelligence System"),
		Environment: strings.ToLower(getenv("ENVIRONMENT", "development")),

		// Server
		Port:              getenv("PORT", "8004"),
		ReadTimeout:       getdur("READ_TIMEOUT", 15*time.Second),
		ReadHeaderTimeout: getdur("READ_HEADER_TIMEOUT", 10*time.Second),
		WriteTimeout:      getdur("WRITE_TIMEOUT", 120*time.Second),
		IdleTimeout:       getdur("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes:    getint("MAX_HEADER_BYTES", 1<<20),
		GinMode:           strings.ToLower(getenv("GIN_MODE", "release")),

		// Logging / Docs
		LogLevel:       strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogPretty:      getbool("LOG_PRETTY", false),
		SwaggerEnabled: getbool("SWAGGER_ENABLED", false),
		APIBasePath:    normalizeBasePath(getenv("API_BASE_PATH", "/api/v1")),

		// Persistence
		DBPath:      getenv("DATABASE_PATH", "legal_intelligence.db"),
		SeedOnStart: getbool("SEED_ON_START", false),

		// Domain reference lists
		PracticeAreas: splitCSV(getenv("DEFAULT_PRACTICE_AREAS",
			"Corporate Law,Criminal Law,Civil Litigation,Intellectual Property,Employment Law,Tax Law,Real Estate,Family Law,Immigration Law,Environmental Law")),
		ComplianceFrameworks: splitCSV(getenv("COMPLIANCE_FRAMEWORKS",
			"GDPR,HIPAA,SOX,CCPA,PCI-DSS,ISO 27001,FCPA")),

		// Generation model
		AI: AIConfig{
			APIKey:      getenv("GEMINI_API_KEY", ""),
			Model:       getenv("AI_MODEL", "gemini-2.5-flash-lite"),
			BaseURL:     getenv("AI_BASE_URL", "https://generativelanguage.googleapis.com"),
			Temperature: getfloat("AI_TEMPERATURE", 0.7),
			MaxTokens:   getint("AI_MAX_TOKENS", 8000),
			Timeout:     getdur("AI_TIMEOUT", 90*time.Second),
			Fake:        getbool("AI_FAKE", false),
		},

		// Rate limiting
		RateRPS:   getfloat("RATE_RPS", 5.0),
		RateBurst: getint("RATE_BURST", 10),

		// Web protection
		CORS: CORSConfig{
			AllowedOrigins: splitCSV(getenv("CORS_ALLOWED_ORIGINS", "")),
		},
		Security: SecurityConfig{
			EnableHSTS: getbool("ENABLE_HSTS", false),
			HSTSMaxAge: getdur("HSTS_MAX_AGE", 180*24*time.Hour),
		},

		// Idempotency
		IdempotencyTTL: getdur("IDEMPOTENCY_TTL", 24*time.Hour),

		// Tracing export
		OTEL: OTELConfig{
			Enabled:     getbool("OTEL_ENABLED", false),
			Endpoint:    getenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			Insecure:    getbool("OTEL_EXPORTER_OTLP_INSECURE", true),
			ServiceName: getenv("OTEL_SERVICE_NAME", "go-legal-backend"),
			SampleRatio: getfloat("OTEL_TRACES_SAMPLER_ARG", 1.0),
		},
	}

	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// normalize folds aliases and silently repairs values that have a safe
// interpretation. Anything that cannot be repaired is left for validate.
func (c *Config) normalize() {
	if c.LogLevel == "warning" {
		c.LogLevel = "warn"
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		c.GinMode = "release"
	}
}

func (c *Config) validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error", "fatal", "panic":
	default:
		return errors.New("LOG_LEVEL must be one of: debug, info, warn, error, fatal, panic")
	}
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("PORT must not be empty")
	}
	if c.ReadTimeout <= 0 || c.ReadHeaderTimeout <= 0 || c.WriteTimeout <= 0 || c.IdleTimeout <= 0 {
		return errors.New("timeouts must be positive durations")
	}
	if c.MaxHeaderBytes <= 0 {
		return errors.New("MAX_HEADER_BYTES must be > 0")
	}
	if strings.TrimSpace(c.DBPath) == "" {
		return errors.New("DATABASE_PATH must not be empty")
	}
	if strings.TrimSpace(c.AI.Model) == "" {
		return errors.New("AI_MODEL must not be empty")
	}
	if c.AI.Temperature < 0 || c.AI.Temperature > 2 {
		return errors.New("AI_TEMPERATURE must be between 0 and 2")
	}
	if c.AI.MaxTokens <= 0 {
		return errors.New("AI_MAX_TOKENS must be > 0")
	}
	if c.AI.Timeout <= 0 {
		return errors.New("AI_TIMEOUT must be > 0")
	}
	if c.RateRPS < 0 {
		return errors.New("RATE_RPS must be >= 0")
	}
	if c.RateBurst < 1 {
		return errors.New("RATE_BURST must be >= 1")
	}
	if c.Security.HSTSMaxAge < 0 {
		return errors.New("HSTS_MAX_AGE must be >= 0")
	}
	if c.IdempotencyTTL <= 0 {
		return errors.New("IDEMPOTENCY_TTL must be > 0")
	}
	if c.OTEL.SampleRatio < 0 || c.OTEL.SampleRatio > 1 {
		return errors.New("OTEL_TRACES_SAMPLER_ARG must be in [0,1]")
	}
	return nil
}

// Env getters. An unset or empty variable always falls back to the default;
// so does a value that fails to parse, keeping a typo from taking the server
// down when the default is serviceable.

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getfloat(k string, def float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func getint(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getbool(k string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(k))) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	}
	return def
}

func getdur(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

// splitCSV splits on commas, trims each entry, and drops blanks. An
// effectively empty input yields nil.
func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// normalizeBasePath reduces p to a clean "/segment[/...]" form; blank input
// means the root path.
func normalizeBasePath(p string) string {
	trimmed := strings.Trim(strings.TrimSpace(p), "/")
	if trimmed == "" {
		return "/"
	}
	return "/" + trimmed
}
