package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-renderer/internal/server"
)

var (
	serverAddr   string
	serverDebug  bool
	readTimeout  time.Duration
	writeTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server for computing and rendering invoices.

The API provides endpoints for:
  - GET  /api/v1/templates          - List templates
  - POST /api/v1/totals             - Compute totals, returns the snapshot
  - POST /api/v1/validate           - Validate a payload
  - POST /api/v1/render/:template   - Render a payload (?format=html|json)
  - POST /api/v1/render             - Render {template, format, invoice}
  - GET  /health                    - Health check

Flags override the config file and INVOICE_RENDERER_* environment variables.

Examples:
  # Start server on default port
  invoice-renderer serve

  # Start on custom port
  invoice-renderer serve --address :9090

  # Start in debug mode
  invoice-renderer serve --debug`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", "", "Server listen address (default: server.address from config)")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 0, "HTTP read timeout (default: server.read_timeout from config)")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", 0, "HTTP write timeout (default: server.write_timeout from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	config := &server.Config{
		Address:         cfg.Server.Address,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		Debug:           cfg.Server.Debug || serverDebug,
		DefaultTemplate: cfg.TemplateID(),
		Format:          cfg.FormatOptions(),
		Logger:          log,
	}
	if serverAddr != "" {
		config.Address = serverAddr
	}
	if readTimeout > 0 {
		config.ReadTimeout = readTimeout
	}
	if writeTimeout > 0 {
		config.WriteTimeout = writeTimeout
	}

	srv := server.NewServer(config)

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Infow("starting server",
		"address", config.Address,
		"default_template", config.DefaultTemplate,
		"convention", config.Format.Convention,
	)

	return srv.Run(ctx)
}
