package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/lexcraft/go-legal-backend/internal/config"
	httpapi "github.com/lexcraft/go-legal-backend/internal/http"
	"github.com/lexcraft/go-legal-backend/internal/llm"
	"github.com/lexcraft/go-legal-backend/internal/observability"
	"github.com/lexcraft/go-legal-backend/internal/repo"
	"github.com/lexcraft/go-legal-backend/internal/search"
	"github.com/lexcraft/go-legal-backend/internal/sysutil"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the legal intelligence API server",
	Long: `Start the REST API server.

Configuration comes from the environment (see .env.example for the full
list of variables). With SEED_ON_START=true the demonstration dataset is
loaded before the server accepts traffic. The server shuts down gracefully
on SIGINT or SIGTERM.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	loadEnv()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	sysutil.ConfigureLogging(cfg.LogLevel, cfg.LogPretty)
	gin.SetMode(cfg.GinMode)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	shutdownTracing, err := observability.SetupOTel(ctx, cfg.OTEL, buildVersion())
	if err != nil {
		return fmt.Errorf("tracing setup: %w", err)
	}

	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database %s: %w", cfg.DBPath, err)
	}
	defer closeDB(db)

	if err := repo.AutoMigrate(db); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	if cfg.OTEL.Enabled {
		// Trace SQL alongside HTTP spans. Query variables are omitted: the
		// same PII posture as the redacting request logger.
		if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics(), tracing.WithoutQueryVariables())); err != nil {
			return fmt.Errorf("database tracing plugin: %w", err)
		}
	}

	if cfg.SeedOnStart {
		counts, err := repo.SeedSampleData(ctx, db)
		if err != nil {
			return fmt.Errorf("seed sample data: %w", err)
		}
		logSeedCounts(counts)
	}

	gen, err := newGenerator(cfg.AI)
	if err != nil {
		return err
	}

	// The precedent index is immutable once built; restart (or reseed and
	// restart) to pick up new library rows.
	precedents, err := repo.ListPrecedents(ctx, db, false)
	if err != nil {
		return fmt.Errorf("load precedent library: %w", err)
	}
	idx := search.NewIndex(precedents)

	r := gin.New()
	httpapi.RegisterRoutes(r, db, gen, idx, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("environment", cfg.Environment).
			Str("version", buildVersion()).
			Int("precedents_indexed", len(precedents)).
			Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return fmt.Errorf("http server: %w", err)
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("tracing shutdown")
	}
	log.Info().Msg("server stopped")
	return nil
}

// newGenerator selects the hosted generation client or the local fake. The
// real client refuses to start without an API key; failing here beats
// serving 502s on every generation endpoint later.
func newGenerator(ai config.AIConfig) (llm.Generator, error) {
	if ai.Fake {
		log.Warn().Msg("AI_FAKE enabled: generation endpoints return canned local output")
		return llm.Static{Text: fakeGenerationText}, nil
	}
	if ai.APIKey == "" {
		return nil, errors.New("GEMINI_API_KEY is required (or set AI_FAKE=true for development)")
	}
	return llm.NewClient(ai.APIKey,
		llm.WithModel(ai.Model),
		llm.WithBaseURL(ai.BaseURL),
		llm.WithTemperature(ai.Temperature),
		llm.WithMaxTokens(ai.MaxTokens),
		llm.WithTimeout(ai.Timeout),
	), nil
}

// fakeGenerationText stands in for model output in development so the
// approval and feedback flows can be exercised end to end without a key.
const fakeGenerationText = "## Preliminary Analysis (generated offline)\n\n" +
	"AI_FAKE is enabled, so this response was produced locally without calling " +
	"the generation API. Set GEMINI_API_KEY and unset AI_FAKE to receive real " +
	"analysis.\n\n" +
	"- The matter presents no unusual procedural posture on these facts.\n" +
	"- Verify the cited precedents and statutes before relying on any conclusion.\n"

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warn().Err(err).Msg("database close")
	}
}

func logSeedCounts(c repo.SeedCounts) {
	log.Info().
		Int("lawyers", c.Lawyers).
		Int("cases", c.Cases).
		Int("documents", c.Documents).
		Int("statutes", c.Statutes).
		Int("precedents", c.Precedents).
		Msg("sample data loaded")
}
