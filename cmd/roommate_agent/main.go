// Package main provides the roommate_agent CLI: offline preference learning
// over JSON files and the HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/jonathan/roommate-matcher/internal/config"
	"github.com/jonathan/roommate-matcher/internal/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool

	// cfg is populated by the root command before any subcommand runs.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "roommate_agent",
	Short: "Roommate preference engine",
	Long: "Roommate preference engine: learns a user's roommate preferences from swipes and onboarding answers, " +
		"scores and ranks candidate roommates, and serves the same operations over a REST API.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML or JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging and detailed output")
}

// setup loads configuration and initializes logging.
func setup(_ *cobra.Command, _ []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	logCfg := logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
		Output: os.Stderr,
	}
	if verbose {
		logCfg.Level = "debug"
	}
	logging.Init(logCfg)
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
