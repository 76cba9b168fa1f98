// Package server exposes the expense tools, the categories resource,
// and operational endpoints over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tallyfolk/tally/internal/categories"
	"github.com/tallyfolk/tally/internal/tracker"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Config holds the HTTP surface settings.
type Config struct {
	Addr    string
	Origins []string
}

// Server wires the tool routes, middleware, and lifecycle together.
type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
	tracker    *tracker.Service
	categories *categories.Provider
	store      Pinger
}

// New assembles the router. gin runs in release mode; access logging
// belongs to the requestLogger middleware.
func New(cfg Config, svc *tracker.Service, provider *categories.Provider, store Pinger) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery(), requestID(), requestLogger(), corsMiddleware(cfg.Origins))

	s := &Server{
		engine:     engine,
		tracker:    svc,
		categories: provider,
		store:      store,
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           engine,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       60 * time.Second,
			MaxHeaderBytes:    1 << 16,
		},
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	tools := s.engine.Group("/v1/tools")
	tools.POST("/add_expense", s.handleAdd)
	tools.POST("/credit_expense", s.handleCredit)
	tools.POST("/list_expenses", s.handleList)
	tools.POST("/summarize", s.handleSummarize)
	tools.POST("/delete_expenses", s.handleDelete)
	tools.POST("/update_expenses", s.handleUpdate)

	s.engine.GET("/v1/resources/categories", s.handleCategories)
	s.engine.GET("/healthz", s.handleHealthz)
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	slog.Info("HTTP server listening", "addr", s.httpServer.Addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}
