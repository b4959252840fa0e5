package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-factpage/internal/config"
	"github.com/goliatone/go-factpage/internal/observability"
)

var (
	// Global flags
	configPath  string
	verbose     bool
	metricsFile string

	logger  *zap.Logger
	metrics *observability.Metrics
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "factpage",
	Short: "Render product records into static Product Facts pages",
	Long: `factpage reads product records from data/<slug>.json and writes
static HTML pages to products/<slug>-generated.html, laid out for search
engines and AI assistants to ingest.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapCfg := zap.NewProductionConfig()
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if metricsFile != "" {
			cfg.MetricsFile = metricsFile
		}
		metrics = observability.NewMetrics()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default factpage.yaml when present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&metricsFile, "metrics-file", "", "write prometheus metrics to this file after the run")

	rootCmd.AddCommand(renderCmd, inspectCmd, auditCmd)
}

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

// run executes the root command, then flushes logs and metrics whether or not
// the command failed. Cobra skips post-run hooks on error, and failure
// counters matter most on failed runs.
func run() error {
	logger, metrics = nil, nil

	err := rootCmd.Execute()
	if logger != nil {
		_ = logger.Sync()
	}
	if werr := metrics.WriteTextfile(cfg.MetricsFile); werr != nil {
		werr = fmt.Errorf("write metrics: %w", werr)
		rootCmd.PrintErrln("Error:", werr)
		return errors.Join(err, werr)
	}
	return err
}
