package site

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"

	"github.com/tesserae/tesserae-web/internal/page"
	"github.com/tesserae/tesserae-web/internal/progress"
)

// ErrFileCollision is returned when two selected pages would be written to
// the same file, as "/" and "/index.html" are.
var ErrFileCollision = errors.New("pages share an output file")

// ManifestFile is written at the root of every export.
const ManifestFile = "manifest.json"

// Manifest describes one export.
type Manifest struct {
	BuildID     string          `json:"build_id"`
	GeneratedAt time.Time       `json:"generated_at"`
	Pages       []ManifestEntry `json:"pages"`
}

// ManifestEntry maps a page to the file it was written to.
type ManifestEntry struct {
	ID   string `json:"id"`
	Path string `json:"path"`
	File string `json:"file"`
}

// Select returns the pages whose id or path (without the leading slash)
// matches one of the doublestar patterns. No patterns selects every page.
func (s *Site) Select(patterns []string) ([]page.Config, error) {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid page pattern %q", p)
		}
	}
	pages := s.cat.Pages()
	if len(patterns) == 0 {
		return pages, nil
	}
	var out []page.Config
	for _, cfg := range pages {
		if matchAny(patterns, cfg.ID) || matchAny(patterns, strings.TrimPrefix(cfg.Path, "/")) {
			out = append(out, cfg)
		}
	}
	return out, nil
}

func matchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}

// OutputFile maps a page route to a file under the export root: "/" becomes
// index.html, "/french" becomes french/index.html, and routes that already
// end in .html are kept.
func OutputFile(route string) string {
	route = strings.Trim(path.Clean("/"+route), "/")
	switch {
	case route == "":
		return "index.html"
	case strings.HasSuffix(route, ".html"):
		return route
	default:
		return route + "/index.html"
	}
}

// Export renders the selected pages into dir and writes the manifest. Each
// page is rendered fully before its file is created.
func (s *Site) Export(dir string, patterns []string, reporter progress.Reporter) (Manifest, error) {
	if reporter == nil {
		reporter = progress.Nop{}
	}
	pages, err := s.Select(patterns)
	if err != nil {
		return Manifest{}, err
	}
	if len(pages) == 0 {
		return Manifest{}, fmt.Errorf("no pages match %v", patterns)
	}
	files := make(map[string]string, len(pages))
	for _, cfg := range pages {
		rel := OutputFile(cfg.Path)
		if rel == ManifestFile || strings.HasPrefix(rel, ManifestFile+"/") {
			return Manifest{}, fmt.Errorf("%w: page %q would replace the manifest", ErrFileCollision, cfg.ID)
		}
		if other, ok := files[rel]; ok {
			return Manifest{}, fmt.Errorf("%w: %q and %q both map to %s", ErrFileCollision, other, cfg.ID, rel)
		}
		files[rel] = cfg.ID
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Manifest{}, err
	}

	m := Manifest{BuildID: uuid.NewString(), GeneratedAt: time.Now().UTC()}

	reporter.Start(len(pages))
	defer reporter.Finish()
	for i, cfg := range pages {
		var buf bytes.Buffer
		if err := s.RenderPage(&buf, cfg); err != nil {
			return Manifest{}, err
		}
		rel := OutputFile(cfg.Path)
		out := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return Manifest{}, err
		}
		if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
			return Manifest{}, fmt.Errorf("writing %s: %w", rel, err)
		}
		m.Pages = append(m.Pages, ManifestEntry{ID: cfg.ID, Path: cfg.Path, File: rel})
		reporter.Update(i+1, cfg.ID)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return Manifest{}, err
	}
	if err := os.WriteFile(filepath.Join(dir, ManifestFile), data, 0o644); err != nil {
		return Manifest{}, fmt.Errorf("writing manifest: %w", err)
	}
	return m, nil
}
