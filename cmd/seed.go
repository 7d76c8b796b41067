package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexcraft/go-legal-backend/internal/config"
	"github.com/lexcraft/go-legal-backend/internal/repo"
	"github.com/lexcraft/go-legal-backend/internal/sysutil"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load sample lawyers, cases, documents, statutes and precedents",
	Long: `Load a small demonstration dataset into the configured database.

Rows are keyed by their natural unique columns (bar number, case number,
statute code, citation), so rerunning the command never duplicates data.
Use DATABASE_PATH to point at a different SQLite file.`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	loadEnv()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	sysutil.ConfigureLogging(cfg.LogLevel, cfg.LogPretty)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database %s: %w", cfg.DBPath, err)
	}
	defer closeDB(db)

	if err := repo.AutoMigrate(db); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	counts, err := repo.SeedSampleData(ctx, db)
	if err != nil {
		return fmt.Errorf("seed sample data: %w", err)
	}
	logSeedCounts(counts)
	return nil
}
