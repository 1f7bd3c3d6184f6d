package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/tesserae/tesserae-web/internal/layout"
	"github.com/tesserae/tesserae-web/internal/page"
	"github.com/tesserae/tesserae-web/internal/panel"
)

//go:embed bodies/*.html
var bodyFS embed.FS

var bodies = template.Must(template.ParseFS(bodyFS, "bodies/*.html"))

// clientScript is the script the search form depends on, served from the
// html base.
const clientScript = "tesserae.js"

type toolLink struct {
	Title       string
	URL         string
	Description string
}

type bodyData struct {
	Page      page.Config
	Intro     template.HTML
	HelpURL   string
	ScriptURL string
	Panel     template.HTML
	Tools     []toolLink
}

func (s *Site) body(cfg page.Config) layout.Body {
	return func(v layout.View) (template.HTML, error) {
		intro, err := s.markdown(cfg.Intro)
		if err != nil {
			return "", err
		}
		data := bodyData{Page: cfg, Intro: intro}

		switch cfg.Body {
		case page.BodySearch:
			data.ScriptURL = v.Registry.HTML(clientScript)
			data.HelpURL = s.helpURL(v)
			in := panel.FromPage(cfg, s.cat.OfferedLanguages(), s.cat.Texts())
			data.Panel, err = panel.Build(v.Registry, in, s.opts).HTML()
			if err != nil {
				return "", err
			}
		case page.BodyTools:
			for _, t := range s.cat.Tools() {
				data.Tools = append(data.Tools, toolLink{Title: t.Title, URL: t.URL(v.Registry), Description: t.Description})
			}
		case page.BodyText:
		default:
			return "", fmt.Errorf("unknown body %q", cfg.Body)
		}

		var buf bytes.Buffer
		if err := bodies.ExecuteTemplate(&buf, string(cfg.Body), data); err != nil {
			return "", err
		}
		return template.HTML(buf.String()), nil
	}
}

// helpURL links to the first help page of the catalog, if any.
func (s *Site) helpURL(v layout.View) string {
	for _, p := range s.cat.Pages() {
		if p.Category == page.CategoryHelp {
			return v.Registry.HTML(p.Path)
		}
	}
	return ""
}

// markdown renders catalog-authored prose. Raw HTML in the source is dropped.
func (s *Site) markdown(src string) (template.HTML, error) {
	if src == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}
