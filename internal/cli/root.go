package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/marchaud/anomalykit/internal/config"
	"github.com/marchaud/anomalykit/internal/logger"
)

var (
	// Global flags
	cfgFile string
	jsonOut bool
	verbose bool

	// Version info (set from main)
	Version = "0.1.0"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "anomalykit",
	Short: "Classifier configuration for security analytics",
	Long: `Anomalykit manages the machine-learning classifier configurations of a
security-analytics pipeline: supervised, semi-supervised and unsupervised
methods, their hyperparameter search grids, and the supervision labels each
learning paradigm requires from annotated datasets.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// SetVersion sets the version for the CLI
func SetVersion(v string) {
	Version = v
	rootCmd.Version = v
}

// loadConfig returns the effective toolkit configuration.
func loadConfig() *config.Config {
	return config.LoadOrDefault(cfgFile)
}

// newLogger builds the CLI logger from the configuration and flags.
func newLogger(cfg *config.Config) *slog.Logger {
	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	return logger.New(level, cfg.Logging.Format)
}
