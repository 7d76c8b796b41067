// Package httpapi wires the Gin transport to the application services. All
// cross-cutting concerns live here: tracing, correlation IDs, redacting
// request logs, panic recovery, metrics, body limits, idempotency, rate
// limiting, CORS, security headers and compression. Handlers and services
// receive their dependencies through RegisterRoutes and stay free of
// router-level policy.
package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	_ "github.com/lexcraft/go-legal-backend/docs" // generated swagger docs
	"github.com/lexcraft/go-legal-backend/internal/config"
	"github.com/lexcraft/go-legal-backend/internal/domain"
	"github.com/lexcraft/go-legal-backend/internal/http/handlers"
	"github.com/lexcraft/go-legal-backend/internal/http/middleware"
	"github.com/lexcraft/go-legal-backend/internal/llm"
	"github.com/lexcraft/go-legal-backend/internal/repo"
	"github.com/lexcraft/go-legal-backend/internal/search"
	"github.com/lexcraft/go-legal-backend/internal/services"
)

// lawyerRepoShim adapts the repo free functions to the services.LawyerRepo
// interface, keeping the service layer off the concrete repo package.
type lawyerRepoShim struct{}

// CreateLawyer proxies repo.CreateLawyer.
func (lawyerRepoShim) CreateLawyer(ctx context.Context, db *gorm.DB, lawyer *domain.Lawyer) error {
	return repo.CreateLawyer(ctx, db, lawyer)
}

// GetLawyer proxies repo.GetLawyer.
func (lawyerRepoShim) GetLawyer(ctx context.Context, db *gorm.DB, id int64) (*domain.Lawyer, error) {
	return repo.GetLawyer(ctx, db, id)
}

// GetLawyerByBarNumber proxies repo.GetLawyerByBarNumber.
func (lawyerRepoShim) GetLawyerByBarNumber(ctx context.Context, db *gorm.DB, barNumber string) (*domain.Lawyer, error) {
	return repo.GetLawyerByBarNumber(ctx, db, barNumber)
}

// CountLawyers proxies repo.CountLawyers (pagination support).
func (lawyerRepoShim) CountLawyers(ctx context.Context, db *gorm.DB, practiceArea, jurisdiction string) (int64, error) {
	return repo.CountLawyers(ctx, db, practiceArea, jurisdiction)
}

// ListLawyersPage proxies repo.ListLawyersPage (pagination support).
func (lawyerRepoShim) ListLawyersPage(ctx context.Context, db *gorm.DB, practiceArea, jurisdiction string, offset, limit int) ([]domain.Lawyer, error) {
	return repo.ListLawyersPage(ctx, db, practiceArea, jurisdiction, offset, limit)
}

// libraryShim implements handlers.LibraryService over the in-memory precedent
// index plus the statute and stats queries. Jurisdiction filtering happens
// after ranking because the index snapshot is not segmented by jurisdiction.
type libraryShim struct {
	db  *gorm.DB
	idx search.Index
}

// SearchPrecedents ranks the library against the query and keeps at most
// limit hits from the requested jurisdiction (any jurisdiction when empty).
func (l libraryShim) SearchPrecedents(ctx context.Context, query, jurisdiction string, limit int) ([]handlers.PrecedentHit, error) {
	if l.idx == nil {
		return []handlers.PrecedentHit{}, nil
	}
	// Over-fetch when a jurisdiction filter applies so the filtered result
	// can still fill up.
	k := limit
	if jurisdiction != "" {
		k = limit * 4
	}
	out := make([]handlers.PrecedentHit, 0, limit)
	for _, hit := range l.idx.TopK(query, k) {
		if jurisdiction != "" && !strings.EqualFold(hit.Precedent.Jurisdiction, jurisdiction) {
			continue
		}
		out = append(out, handlers.PrecedentHit{Precedent: hit.Precedent, Score: hit.Score})
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// SearchStatutes proxies repo.SearchStatutes.
func (l libraryShim) SearchStatutes(ctx context.Context, query, jurisdiction, category string, limit int) ([]domain.Statute, error) {
	return repo.SearchStatutes(ctx, l.db, query, jurisdiction, category, limit)
}

// DatabaseStats proxies repo.DatabaseStats.
func (l libraryShim) DatabaseStats(ctx context.Context) (map[string]int64, error) {
	return repo.DatabaseStats(ctx, l.db)
}

// corsConfig builds the shared CORS policy. An empty origin list opens the
// API to every origin; credentials stay off in both modes.
func corsConfig(origins []string) cors.Config {
	cc := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "If-None-Match", "X-User-ID", middleware.HeaderIdempotencyKey},
		ExposeHeaders: []string{"X-Request-ID", "Content-Length", "ETag", "Idempotency-Replayed"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = origins
	}
	return cc
}

// RegisterRoutes attaches the middleware stack and every HTTP endpoint to the
// given engine. The order is load-bearing:
//
//  1. otelgin tracing (when enabled), so every later hop lands in the span
//  2. RequestID before anything that logs
//  3. RedactingLogger, scrubbing PII out of request logs
//  4. Recovery, so panics surface as JSON 500s carrying the request id
//  5. body size cap
//  6. Prometheus collectors
//  7. idempotency validator, which flags replays for the limiter to bypass
//  8. per-user/IP token bucket
//  9. CORS, then security headers
//  10. gzip compression
//
// /healthz, /metrics and the swagger UI (when enabled) sit outside the
// versioned API group.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, gen llm.Generator, idx search.Index, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	if cfg.OTEL.Enabled {
		r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))
	}

	r.Use(middleware.RequestID())

	r.Use(middleware.RedactingLogger(middleware.RedactOptions{
		MaskHeaders: []string{"X-API-Key"},
	}))

	r.Use(middleware.Recovery())

	// Request bodies are JSON commands, never uploads; 1 MiB is generous.
	r.Use(limitBody(1 << 20))

	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Replay detection consults the idempotency table; lookup failures count
	// as misses so a degraded database never blocks traffic.
	r.Use(middleware.IdempotencyValidator(
		middleware.IdempotencyOptions{MaxLen: 200},
		func(ctx context.Context, userID, scope, key string, now time.Time) (bool, error) {
			rec, err := repo.GetIdempotency(ctx, db, userID, scope, key, now)
			return err == nil && rec != nil, nil
		},
	))

	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())
	r.Use(rl.Handler())

	// With no allowlist the ACAO header is pinned to * before gin-contrib/cors
	// runs, so plain health checks without an Origin see it too. With an
	// allowlist, echo matching origins back (plus Vary) ahead of enforcement.
	if len(cfg.CORS.AllowedOrigins) == 0 {
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
	} else {
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			origin := c.GetHeader("Origin")
			if _, ok := allowed[origin]; ok {
				h := c.Writer.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Add("Vary", "Origin")
			}
			c.Next()
		})
	}
	r.Use(cors.New(corsConfig(cfg.CORS.AllowedOrigins)))

	// HSTS is config-gated and only ever sent over HTTPS.
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Generated documents easily run to tens of KiB of JSON.
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Interactive API docs (generated by swag); off outside development.
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	lawyerSvc := services.NewLawyerService(db, lawyerRepoShim{})
	caseSvc := services.NewCaseService(db)

	aiSvc := services.NewOrchestrator(db, gen)
	aiSvc.PrecedentIndex = idx
	aiSvc.DefaultFrameworks = cfg.ComplianceFrameworks

	approvalSvc := services.NewApprovalService(db)
	feedbackSvc := services.NewFeedbackService(db)
	librarySvc := libraryShim{db: db, idx: idx}

	h := handlers.New(lawyerSvc, caseSvc, aiSvc, approvalSvc, feedbackSvc, librarySvc).
		WithIdempotencyTTL(cfg.IdempotencyTTL)

	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		// Lawyers
		api.POST("/lawyers", h.CreateLawyer)
		api.GET("/lawyers", h.ListLawyers)
		api.GET("/lawyers/:id", h.GetLawyer)
		api.GET("/lawyers/:id/summary", h.GetLawyerSummary)
		api.GET("/lawyers/:id/cases", h.ListLawyerCases)

		// Cases
		api.POST("/cases", h.CreateCase)
		api.GET("/cases/by-number/:caseNumber", h.GetCaseByNumber)
		api.GET("/cases/:id", h.GetCase)
		api.PATCH("/cases/:id/status", h.UpdateCaseStatus)
		api.POST("/cases/:id/documents", h.AttachDocument)
		api.GET("/cases/:id/documents", h.ListCaseDocuments)

		// Intelligence
		api.POST("/research/case-law", h.ResearchCaseLaw)
		api.POST("/analyze/contract", h.AnalyzeContract)
		api.POST("/assess/compliance", h.AssessCompliance)
		api.POST("/draft/document", h.DraftDocument)
		api.POST("/strategy/litigation/:caseId", h.DevelopStrategy)
		api.POST("/analyze/comprehensive/:caseId", h.AnalyzeComprehensive)

		// Approvals
		api.POST("/approvals", h.RequestApproval)
		api.POST("/approvals/:id/approve", h.ApproveContent)
		api.POST("/approvals/:id/reject", h.RejectContent)
		api.GET("/approvals/pending", h.ListPendingApprovals)
		api.GET("/approvals/history", h.GetApprovalHistory)
		api.GET("/approvals/:id/status", h.GetApprovalStatus)

		// Feedback
		api.POST("/feedback", h.SubmitFeedback)
		api.GET("/feedback", h.ListFeedback)
		api.GET("/feedback/low-rated", h.ListLowRatedFeedback)
		api.GET("/feedback/summary", h.GetFeedbackSummary)
		api.GET("/feedback/improvement-areas", h.GetImprovementAreas)
		api.GET("/feedback/:id", h.GetFeedback)
		api.POST("/feedback/:id/addressed", h.MarkFeedbackAddressed)

		// Library
		api.GET("/precedents/search", h.SearchPrecedents)
		api.GET("/statutes/search", h.SearchStatutes)
		api.GET("/stats/database", h.GetDatabaseStats)
	}
}

// limitBody caps request body reads at maxBytes via http.MaxBytesReader;
// oversized bodies error out on the handler's first read.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" and "" as the root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
