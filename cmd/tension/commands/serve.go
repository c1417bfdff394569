package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dyluth/tension/internal/config"
	"github.com/dyluth/tension/internal/printer"
	"github.com/dyluth/tension/internal/server"
)

var (
	serveAddr    string
	serveVerbose bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculators over HTTP",
	Long: `Serve the calculators over HTTP: a JSON API, SVG swatch and chart
endpoints, and a small form page at /.

If tension.yml exists in the working directory, its gauge and preferences
fill in requests that omit them.

Examples:
  tension serve
  tension serve --addr :9090 --verbose`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Address to listen on")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Debug-level logging")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	zapCfg := zap.NewProductionConfig()
	if serveVerbose {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zapCfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	cfg, err := config.LoadIfPresent(config.DefaultPath)
	if err != nil {
		return err
	}
	if cfg != nil {
		logger.Info("loaded config", zap.String("path", config.DefaultPath))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	printer.Info("Listening on %s (Ctrl+C to stop)\n", serveAddr)
	srv := server.New(server.Options{Logger: logger, Config: cfg})
	return srv.Run(ctx, serveAddr)
}
