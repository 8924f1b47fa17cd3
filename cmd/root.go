package cmd

import (
	"fmt"
	"log/slog"
	"os"

	cfgpkg "github.com/Baydnn/telemetry-pipeline/internal/config"
	"github.com/Baydnn/telemetry-pipeline/internal/logging"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	// Global flags (wired to config in loadConfig)
	cfgFile string
	verbose bool

	// Loaded configuration
	cfg *cfgpkg.Global

	// Root logger, tagged with a run id once config is loaded. Until then
	// commands log through slog's default handler.
	logger = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "telemetry-pipeline",
	Short: "Telemetry Pipeline CLI: turn EV telemetry captures into Markdown reports",
	Long:  `Telemetry Pipeline is a CLI tool that validates electric-vehicle telemetry captures (CSV or XLSX), computes speed and per-column statistics, and reports WARNING events and threshold breaches as a Markdown document.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.telemetry-pipeline/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	logger = logging.New(level, cfg.LogFormat).With(slog.String("run_id", uuid.NewString()))
	slog.SetDefault(logger)
}
