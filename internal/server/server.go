// Package server serves the rendered pages over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/tesserae/tesserae-web/internal/registry"
	"github.com/tesserae/tesserae-web/internal/site"
)

// Config holds server configuration.
type Config struct {
	Port     int
	AllowAll bool // allow all CORS origins (dev mode)
}

// Server serves every page of a site plus a small JSON API over the catalog.
type Server struct {
	cfg        Config
	site       *site.Site
	log        *slog.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server for s. A nil logger uses slog.Default.
func New(cfg Config, s *site.Site, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	srv := &Server{cfg: cfg, site: s, log: logger}
	srv.router = srv.buildRouter()
	return srv
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	if prefix := PagePrefix(s.site.Registry()); prefix != "" {
		r.Route(prefix, func(r chi.Router) {
			registerPages(r, s.site, s.log)
		})
	} else {
		registerPages(r, s.site, s.log)
	}
	registerAPI(r, s.site)

	return r
}

// PagePrefix is the path of the html base. Pages are mounted beneath it so
// that the links they render resolve on this server.
func PagePrefix(reg registry.Registry) string {
	u, err := url.Parse(reg.Root(registry.BaseHTML))
	if err != nil {
		return ""
	}
	return strings.TrimRight(u.Path, "/")
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Start listens on the configured port until Shutdown is called.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.log.Info("tesserae server listening", "addr", addr, "pages", len(s.site.Catalog().Pages()), "prefix", PagePrefix(s.site.Registry()))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
