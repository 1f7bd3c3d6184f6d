package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tesserae/tesserae-web/internal/page"
	"github.com/tesserae/tesserae-web/internal/site"
)

// registerPages mounts one GET route per catalog page.
func registerPages(r chi.Router, s *site.Site, log *slog.Logger) {
	for _, cfg := range s.Catalog().Pages() {
		r.Get(cfg.Path, handlePage(s, cfg, log))
	}
}

func handlePage(s *site.Site, cfg page.Config, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := s.RenderPage(&buf, cfg); err != nil {
			log.Error("rendering page", "page", cfg.ID, "request_id", middleware.GetReqID(r.Context()), "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(buf.Bytes())
	}
}

// registerAPI mounts the read-only catalog endpoints under /api/pages.
func registerAPI(r chi.Router, s *site.Site) {
	r.Route("/api/pages", func(r chi.Router) {
		r.Get("/", handleListPages(s))
		r.Get("/{id}", handleGetPage(s))
	})
}

type pageSummary struct {
	ID       string        `json:"id"`
	Path     string        `json:"path"`
	Title    string        `json:"title"`
	Category page.Category `json:"category"`
	URL      string        `json:"url"`
}

func handleListPages(s *site.Site) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reg := s.Registry()
		pages := s.Catalog().Pages()
		out := make([]pageSummary, 0, len(pages))
		for _, p := range pages {
			out = append(out, pageSummary{ID: p.ID, Path: p.Path, Title: p.Title, Category: p.Category, URL: reg.HTML(p.Path)})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func handleGetPage(s *site.Site) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		cfg, ok := s.Catalog().Page(id)
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": site.ErrPageNotFound.Error() + ": " + id})
			return
		}
		writeJSON(w, http.StatusOK, cfg)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
