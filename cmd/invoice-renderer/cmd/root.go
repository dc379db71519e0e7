package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-renderer/internal/config"
	"github.com/rezonia/invoice-renderer/internal/logger"
)

var (
	version = "1.0.0"

	// Global flags
	verbose      bool
	outputFormat string
	configFile   string

	cfg *config.Config
	log *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "invoice-renderer",
	Short: "Compute invoice totals and render invoices",
	Long: `Invoice Renderer computes invoice totals and renders invoices into
interchangeable layouts that always show identical figures.

Supports:
  - Totals: subtotal, discount, tax, shipping and grand total
  - Adjustments as flat amounts or percentages of the subtotal
  - Templates: template-1 (Classic), template-2 (Modern), template-3 (Receipto)
  - Output as standalone HTML or a JSON document tree

Examples:
  # Compute totals for a payload
  invoice-renderer totals invoice.json

  # Render an invoice with the Receipto layout
  invoice-renderer render invoice.json -t template-3 -o invoice.html

  # Validate several payloads
  invoice-renderer validate invoices/

  # Start the HTTP API
  invoice-renderer serve --address :8080`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "table", "Output format (json, table, csv)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: ~/.config/invoice-renderer/config.yaml, env: INVOICE_RENDERER_CONFIG)")
}

// initConfig loads the config file, overlays environment variables and
// builds the logger
func initConfig(cmd *cobra.Command, args []string) error {
	if configFile == "" {
		configFile = os.Getenv(config.EnvPrefix + "CONFIG")
	}
	if configFile == "" {
		configFile = config.DefaultConfigPath()
	}

	loaded, err := config.Load(configFile)
	if err != nil {
		return err
	}
	cfg = loaded

	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	log, err = logger.NewLogger(logger.Config{Level: level, Development: verbose || cfg.Server.Debug})
	if err != nil {
		return err
	}

	printVerbose("Using config %s\n", configFile)
	return nil
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
