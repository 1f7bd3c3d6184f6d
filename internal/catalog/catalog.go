// Package catalog holds the declarations of every page the site serves,
// together with the menus, tool links and text lists the partials need.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tesserae/tesserae-web/internal/nav"
	"github.com/tesserae/tesserae-web/internal/page"
	"github.com/tesserae/tesserae-web/internal/registry"
)

// ErrDuplicatePage is returned when two pages share an id or a path.
var ErrDuplicatePage = errors.New("duplicate page")

// ErrReservedPath is returned when a page claims a route the server uses
// for itself.
var ErrReservedPath = errors.New("reserved page path")

// ReservedPaths are routes owned by the server. A page may not use one of
// them or any path beneath it.
var ReservedPaths = []string{"/healthz", "/api"}

func reserved(path string) bool {
	for _, r := range ReservedPaths {
		if path == r || strings.HasPrefix(path, r+"/") {
			return true
		}
	}
	return false
}

// Tool is a link to an auxiliary tool the site does not implement itself.
type Tool struct {
	Title       string        `yaml:"title" json:"title"`
	Base        registry.Base `yaml:"base" json:"base"`
	Path        string        `yaml:"path" json:"path"`
	Description string        `yaml:"description" json:"description"`
}

// URL resolves the tool's link against reg.
func (t Tool) URL(reg registry.Registry) string { return reg.URL(t.Base, t.Path) }

// File is the YAML layout of a catalog file. Sections left empty fall back
// to the built-in defaults.
type File struct {
	Languages []page.Language     `yaml:"languages"`
	Texts     map[string][]string `yaml:"texts"`
	Menu      []nav.Entry         `yaml:"menu"`
	Tools     []Tool              `yaml:"tools"`
	Pages     []page.Config       `yaml:"pages"`
}

// Catalog is the validated, read-only set of page declarations.
type Catalog struct {
	languages []page.Language
	texts     map[string][]string
	menu      []nav.Entry
	tools     []Tool
	pages     []page.Config
	byID      map[string]int
	byPath    map[string]int
	warnings  []string
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(File{})
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return c
}

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a catalog from YAML.
func Parse(data []byte) (*Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	return New(f)
}

// New validates f and builds a Catalog.
func New(f File) (*Catalog, error) {
	if len(f.Languages) == 0 {
		f.Languages = DefaultLanguages
	}
	if f.Texts == nil {
		f.Texts = DefaultTexts
	}
	if len(f.Menu) == 0 {
		f.Menu = DefaultMenu
	}
	if len(f.Tools) == 0 {
		f.Tools = DefaultTools
	}
	if len(f.Pages) == 0 {
		f.Pages = DefaultPages()
	}

	c := &Catalog{
		languages: append([]page.Language(nil), f.Languages...),
		texts:     make(map[string][]string, len(f.Texts)),
		menu:      append([]nav.Entry(nil), f.Menu...),
		tools:     append([]Tool(nil), f.Tools...),
		byID:      make(map[string]int, len(f.Pages)),
		byPath:    make(map[string]int, len(f.Pages)),
	}
	for lang, texts := range f.Texts {
		c.texts[lang] = append([]string(nil), texts...)
	}

	for i, e := range c.menu {
		if !e.Base.Valid() {
			return nil, fmt.Errorf("menu entry %d (%s): unknown base %q", i, e.Label, e.Base)
		}
		if e.Label == "" || e.Category == "" {
			return nil, fmt.Errorf("menu entry %d: label and category are required", i)
		}
	}
	for i, t := range c.tools {
		if !t.Base.Valid() {
			return nil, fmt.Errorf("tool %d (%s): unknown base %q", i, t.Title, t.Base)
		}
		if t.Title == "" {
			return nil, fmt.Errorf("tool %d: title is required", i)
		}
	}

	for _, p := range f.Pages {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if reserved(p.Path) {
			return nil, fmt.Errorf("%w: page %q uses %q", ErrReservedPath, p.ID, p.Path)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: id %q", ErrDuplicatePage, p.ID)
		}
		if _, dup := c.byPath[p.Path]; dup {
			return nil, fmt.Errorf("%w: path %q", ErrDuplicatePage, p.Path)
		}
		c.byID[p.ID] = len(c.pages)
		c.byPath[p.Path] = len(c.pages)
		c.pages = append(c.pages, p)

		if p.Body == page.BodySearch && !p.SelectionValid() {
			c.warnings = append(c.warnings, fmt.Sprintf(
				"page %q: selected feature %q is not one of [%s]; the panel will render with nothing selected",
				p.ID, p.SelectedFeature, strings.Join(p.Features.Keys(), ", ")))
		}
	}
	return c, nil
}

// Pages returns every page in declaration order.
func (c *Catalog) Pages() []page.Config {
	return append([]page.Config(nil), c.pages...)
}

// Page looks a page up by id.
func (c *Catalog) Page(id string) (page.Config, bool) {
	i, ok := c.byID[id]
	if !ok {
		return page.Config{}, false
	}
	return c.pages[i], true
}

// PageByPath looks a page up by its route.
func (c *Catalog) PageByPath(path string) (page.Config, bool) {
	i, ok := c.byPath[path]
	if !ok {
		return page.Config{}, false
	}
	return c.pages[i], true
}

// LanguageNavPages returns the search pages offered by language navigation.
func (c *Catalog) LanguageNavPages() []page.Config {
	var out []page.Config
	for _, p := range c.pages {
		if p.Body == page.BodySearch {
			out = append(out, p)
		}
	}
	return out
}

// Languages returns the known languages.
func (c *Catalog) Languages() []page.Language {
	return append([]page.Language(nil), c.languages...)
}

// OfferedLanguages returns the known languages that some page searches in
// or that have a text list, in declaration order. These are the languages
// a search form can usefully offer.
func (c *Catalog) OfferedLanguages() []page.Language {
	used := make(map[string]bool)
	for _, p := range c.pages {
		if p.Body == page.BodySearch {
			used[p.Lang.Source] = true
			used[p.Lang.Target] = true
		}
	}
	for lang, texts := range c.texts {
		if len(texts) > 0 {
			used[lang] = true
		}
	}
	var out []page.Language
	for _, l := range c.languages {
		if used[l.Code] {
			out = append(out, l)
		}
	}
	return out
}

// Texts returns the known text ids per language. The map is a copy.
func (c *Catalog) Texts() map[string][]string {
	out := make(map[string][]string, len(c.texts))
	for lang, texts := range c.texts {
		out[lang] = append([]string(nil), texts...)
	}
	return out
}

// Menu returns the search navigation entries.
func (c *Catalog) Menu() []nav.Entry {
	return append([]nav.Entry(nil), c.menu...)
}

// Tools returns the auxiliary tool links.
func (c *Catalog) Tools() []Tool {
	return append([]Tool(nil), c.tools...)
}

// Warnings lists recoverable problems found while building the catalog.
func (c *Catalog) Warnings() []string {
	return append([]string(nil), c.warnings...)
}
