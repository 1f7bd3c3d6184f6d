// Package site renders the pages declared in a catalog, either on demand or
// as a static export.
package site

import (
	"errors"
	"fmt"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/tesserae/tesserae-web/internal/catalog"
	"github.com/tesserae/tesserae-web/internal/layout"
	"github.com/tesserae/tesserae-web/internal/nav"
	"github.com/tesserae/tesserae-web/internal/page"
	"github.com/tesserae/tesserae-web/internal/panel"
	"github.com/tesserae/tesserae-web/internal/registry"
)

// ErrPageNotFound is returned when no page has the requested id.
var ErrPageNotFound = errors.New("page not found")

// Site binds a catalog to a composer.
type Site struct {
	cat      *catalog.Catalog
	composer *layout.Composer
	opts     panel.Options
	md       goldmark.Markdown
}

// New creates a Site. The panel options apply to every search page.
func New(cat *catalog.Catalog, composer *layout.Composer, opts panel.Options) (*Site, error) {
	if cat == nil || composer == nil {
		return nil, errors.New("site: catalog and composer are required")
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("site: %w", err)
	}
	return &Site{
		cat:      cat,
		composer: composer,
		opts:     opts,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}, nil
}

// Catalog returns the catalog the site serves.
func (s *Site) Catalog() *catalog.Catalog { return s.cat }

// Registry returns the registry links are built from.
func (s *Site) Registry() registry.Registry { return s.composer.Registry() }

// Render writes the page with the given id.
func (s *Site) Render(w io.Writer, id string) error {
	cfg, ok := s.cat.Page(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrPageNotFound, id)
	}
	return s.RenderPage(w, cfg)
}

// RenderPage writes cfg, which need not be part of the catalog.
func (s *Site) RenderPage(w io.Writer, cfg page.Config) error {
	reg := s.Registry()
	in := layout.Input{
		Page:      cfg,
		SearchNav: nav.SearchNav(reg, s.cat.Menu(), cfg.Identity()),
		Body:      s.body(cfg),
	}
	if cfg.LanguageNav {
		in.LanguageNav = nav.Languages(reg, s.cat.Languages(), s.cat.LanguageNavPages(), cfg)
	}
	return s.composer.Compose(w, in)
}
