// Package layout composes a full page from the shared partials.
//
// A page is always assembled in the same order: head, top banner, search
// navigation, language navigation (only when the page asks for it), body and
// footer. Every partial receives the same View by value, so no partial can
// change what a later one sees.
package layout

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/tesserae/tesserae-web/internal/nav"
	"github.com/tesserae/tesserae-web/internal/page"
	"github.com/tesserae/tesserae-web/internal/registry"
)

// ErrMissingPartial is returned when a slot has no template.
var ErrMissingPartial = errors.New("missing partial")

//go:embed templates/*.html
var defaultTemplates embed.FS

// Slot names one partial of the layout.
type Slot string

const (
	SlotHead        Slot = "head"
	SlotTopBanner   Slot = "top_banner"
	SlotSearchNav   Slot = "search_nav"
	SlotLanguageNav Slot = "language_nav"
	SlotBody        Slot = "body"
	SlotFooter      Slot = "footer"
)

// Sequence is the fixed order partials are written in.
var Sequence = []Slot{SlotHead, SlotTopBanner, SlotSearchNav, SlotLanguageNav, SlotBody, SlotFooter}

// Info is the site-wide text shown by the head, banner and footer.
type Info struct {
	Title       string `yaml:"title" koanf:"title"`
	Author      string `yaml:"author" koanf:"author"`
	Keywords    string `yaml:"keywords" koanf:"keywords"`
	Description string `yaml:"description" koanf:"description"`
	Logo        string `yaml:"logo" koanf:"logo"`
	Footer      string `yaml:"footer" koanf:"footer"`
}

// View is the data every partial is executed with.
type View struct {
	Page        page.Config
	Registry    registry.Registry
	Site        Info
	SearchNav   []nav.Item
	LanguageNav nav.LanguageNav
	Body        template.HTML
}

// Body produces the page-specific content. It sees the same View as the
// partials, minus the Body field itself.
type Body func(v View) (template.HTML, error)

// Input is one page to compose.
type Input struct {
	Page        page.Config
	SearchNav   []nav.Item
	LanguageNav nav.LanguageNav
	Body        Body
}

// Composer renders pages. It is safe for concurrent use.
type Composer struct {
	tmpl *template.Template
	reg  registry.Registry
	info Info
}

// New parses every *.html file in fsys and checks that each slot in
// Sequence is defined.
func New(fsys fs.FS, reg registry.Registry, info Info) (*Composer, error) {
	tmpl, err := template.ParseFS(fsys, "*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing partials: %w", err)
	}
	for _, slot := range Sequence {
		if tmpl.Lookup(string(slot)) == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingPartial, slot)
		}
	}
	return &Composer{tmpl: tmpl, reg: reg, info: info}, nil
}

// Default builds a Composer from the embedded partials.
func Default(reg registry.Registry, info Info) (*Composer, error) {
	sub, err := fs.Sub(defaultTemplates, "templates")
	if err != nil {
		return nil, err
	}
	return New(sub, reg, info)
}

// Registry returns the registry pages are composed against.
func (c *Composer) Registry() registry.Registry { return c.reg }

// Compose writes the page to w. Nothing is written unless every partial
// renders.
func (c *Composer) Compose(w io.Writer, in Input) error {
	view := View{
		Page:        in.Page,
		Registry:    c.reg,
		Site:        c.info,
		SearchNav:   in.SearchNav,
		LanguageNav: in.LanguageNav,
	}

	var buf bytes.Buffer
	for _, slot := range Sequence {
		if slot == SlotLanguageNav && !in.Page.LanguageNav {
			continue
		}
		if slot == SlotBody && in.Body != nil {
			body, err := in.Body(view)
			if err != nil {
				return fmt.Errorf("page %s: rendering body: %w", in.Page.ID, err)
			}
			view.Body = body
		}
		if err := c.renderSlot(&buf, slot, view); err != nil {
			return fmt.Errorf("page %s: %w", in.Page.ID, err)
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}

func (c *Composer) renderSlot(w io.Writer, slot Slot, view View) error {
	t := c.tmpl.Lookup(string(slot))
	if t == nil {
		return fmt.Errorf("%w: %s", ErrMissingPartial, slot)
	}
	if err := t.Execute(w, view); err != nil {
		return fmt.Errorf("rendering %s: %w", slot, err)
	}
	return nil
}
