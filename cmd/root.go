// Package cmd defines the command-line interface: serve (the default) runs
// the HTTP API, seed loads the demonstration dataset. All runtime settings
// come from the environment, optionally primed from an env file.
package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/lexcraft/go-legal-backend/internal/sysutil"
)

// version is injected at build time via -ldflags "-X ...cmd.version=v1.2.3".
var version string

// envFile is an optional path to a dotenv file loaded before config parsing.
var envFile string

var rootCmd = &cobra.Command{
	Use:   "legal-backend",
	Short: "Legal intelligence API server",
	Long: `legal-backend serves the Legal Intelligence REST API: lawyer and case
management, AI-assisted research, drafting, compliance and strategy
generation, approval workflow, feedback collection, and a searchable
precedent and statute library.

Running the binary without a subcommand starts the server.`,
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = buildVersion()
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "",
		"dotenv file to load before reading the environment")
}

// buildVersion falls back to "dev" when the binary was built without ldflags.
func buildVersion() string {
	return sysutil.FirstNonEmpty(version, "dev")
}

// loadEnv primes the process environment from a dotenv file. A missing
// default .env is fine; an explicitly requested file that fails to load is
// worth a warning but not a refusal to start.
func loadEnv() {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			log.Warn().Err(err).Str("path", envFile).Msg("env file not loaded")
		}
		return
	}
	_ = godotenv.Load()
}
