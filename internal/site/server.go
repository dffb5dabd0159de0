// Package site serves the portfolio page and its HTMX fragments.
package site

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/alvesoscar517-cloud/portfolio/internal/config"
	"github.com/alvesoscar517-cloud/portfolio/internal/content"
	"github.com/gin-gonic/gin"
)

// Server renders the page from an immutable catalog.
type Server struct {
	cfg       config.Config
	catalog   *content.Catalog
	logger    *slog.Logger
	engine    *gin.Engine
	server    *http.Server
	startTime time.Time
}

// NewServer builds the router. Templates are parsed here so a broken
// template fails startup rather than the first request.
func NewServer(cfg config.Config, catalog *content.Catalog, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:       cfg,
		catalog:   catalog,
		logger:    logger,
		startTime: time.Now(),
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestID(), accessLog(logger))
	r.SetHTMLTemplate(tmpl)

	r.Static("/images", cfg.ImagesDir)
	r.Static("/static", cfg.StaticDir)

	r.GET("/", s.handleIndex)
	r.GET("/projects/:id", s.handleProject)
	r.GET("/projects/:id/preview/:index", s.handlePreview)
	r.GET("/projects/:id/screenshots/:index", s.handleScreenshot)
	r.GET("/healthz", s.handleHealth)
	r.NoRoute(s.handleNotFound)

	s.engine = r
	s.server = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}
	return s, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe blocks until the server stops. A graceful Shutdown is not
// reported as an error.
func (s *Server) ListenAndServe() error {
	s.logger.Info("listening", "addr", s.server.Addr)
	err := s.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests until ctx expires. Calling it before
// ListenAndServe makes ListenAndServe return immediately.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
