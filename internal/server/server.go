// Package server exposes the gauge calculators over HTTP: a JSON API, SVG
// swatch and chart endpoints, and a small form page that drives them. Every
// request is computed from its inputs alone; nothing is stored between calls.
package server

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dyluth/tension/internal/config"
)

//go:embed static/index.html
var indexHTML []byte

// Options configures a Server. Logger defaults to a no-op logger; Config is
// the optional tension.yml, used to fill in a missing personal gauge and the
// overflow preference.
type Options struct {
	Logger *zap.Logger
	Config *config.Config
}

// Server routes gauge-conversion requests to the plan builders.
type Server struct {
	engine *gin.Engine
	logger *zap.Logger
	cfg    *config.Config
}

// New builds a Server with recovery and request logging installed.
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(logger))

	s := &Server{engine: engine, logger: logger, cfg: opts.Config}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/", s.handleIndex)
	s.engine.GET("/healthz", s.handleHealthz)

	api := s.engine.Group("/api")
	api.POST("/size", s.handleSize)
	api.POST("/pickup", s.handlePickup)
	api.POST("/border", s.handleBorder)
	api.POST("/spread", s.handleSpread)
	api.GET("/swatch.svg", s.handleSwatchSVG)
	api.GET("/chart.svg", s.handleChartSVG)
}

// Handler exposes the routing tree, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully with
// a five second grace period for in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.engine}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Info("server listening", zap.String("addr", addr))

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
