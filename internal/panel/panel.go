// Package panel builds the advanced search form embedded in search pages.
// The form only prepares a submission to the external search script; no
// search is performed here.
package panel

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/tesserae/tesserae-web/internal/page"
	"github.com/tesserae/tesserae-web/internal/registry"
)

//go:embed advanced.html
var templateFS embed.FS

var tmpl = template.Must(template.ParseFS(templateFS, "advanced.html"))

// Units are the comparison units the search script accepts.
var Units = []page.Feature{
	{Key: "line", Label: "line"},
	{Key: "phrase", Label: "phrase"},
}

// Options are the deployment-wide defaults for the form's advanced fields.
type Options struct {
	SearchScript string  `yaml:"search_script" koanf:"search_script"`
	Unit         string  `yaml:"unit" koanf:"unit"`
	Stopwords    int     `yaml:"stopwords" koanf:"stopwords"`
	MaxDistance  int     `yaml:"max_distance" koanf:"max_distance"`
	Cutoff       float64 `yaml:"cutoff" koanf:"cutoff"`
}

// DefaultOptions mirrors the defaults of the Tesserae search form.
func DefaultOptions() Options {
	return Options{
		SearchScript: "read_table.pl",
		Unit:         "line",
		Stopwords:    10,
		MaxDistance:  999,
		Cutoff:       0,
	}
}

// Validate checks the options before any page is rendered.
func (o Options) Validate() error {
	if o.SearchScript == "" {
		return fmt.Errorf("panel.search_script is required")
	}
	known := false
	for _, u := range Units {
		if u.Key == o.Unit {
			known = true
		}
	}
	if !known {
		return fmt.Errorf("panel.unit %q must be line or phrase", o.Unit)
	}
	if o.Stopwords < 0 || o.MaxDistance < 0 || o.Cutoff < 0 {
		return fmt.Errorf("panel stopwords, max_distance and cutoff must be non-negative")
	}
	return nil
}

// Option is one <option> of a selector.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Input is everything the panel reads.
type Input struct {
	Lang            page.LanguagePair
	Defaults        page.DefaultSelection
	Features        page.FeatureSet
	SelectedFeature string
	Languages       []page.Language
	// Texts lists known text ids per language code. May be nil.
	Texts map[string][]string
}

// FromPage copies the panel's fields out of a page declaration.
func FromPage(cfg page.Config, langs []page.Language, texts map[string][]string) Input {
	return Input{
		Lang:            cfg.Lang,
		Defaults:        cfg.Defaults,
		Features:        cfg.Features,
		SelectedFeature: cfg.SelectedFeature,
		Languages:       langs,
		Texts:           texts,
	}
}

// Panel is the form's view model.
type Panel struct {
	Action      string
	SourceLang  string
	TargetLang  string
	SourceLangs []Option
	TargetLangs []Option
	SourceTexts []Option
	TargetTexts []Option
	Features    []Option
	Units       []Option
	Stopwords   int
	MaxDistance int
	Cutoff      float64
}

// Build computes the view model. Features keep their declared order and
// only the one equal to SelectedFeature is pre-selected; when the selection
// is not a declared key nothing is pre-selected.
func Build(reg registry.Registry, in Input, opts Options) Panel {
	p := Panel{
		Action:      reg.CGI(opts.SearchScript),
		SourceLang:  in.Lang.Source,
		TargetLang:  in.Lang.Target,
		SourceLangs: languageOptions(in.Languages, in.Lang.Source),
		TargetLangs: languageOptions(in.Languages, in.Lang.Target),
		SourceTexts: textOptions(in.Texts[in.Lang.Source], in.Defaults.SourceText),
		TargetTexts: textOptions(in.Texts[in.Lang.Target], in.Defaults.TargetText),
		Stopwords:   opts.Stopwords,
		MaxDistance: opts.MaxDistance,
		Cutoff:      opts.Cutoff,
	}
	for _, f := range in.Features.Features() {
		p.Features = append(p.Features, Option{
			Value:    f.Key,
			Label:    f.Label,
			Selected: f.Key == in.SelectedFeature,
		})
	}
	for _, u := range Units {
		p.Units = append(p.Units, Option{Value: u.Key, Label: u.Label, Selected: u.Key == opts.Unit})
	}
	return p
}

// Selected returns the pre-selected feature key, or "" when none is.
func (p Panel) Selected() string {
	for _, f := range p.Features {
		if f.Selected {
			return f.Value
		}
	}
	return ""
}

// Render writes the form.
func (p Panel) Render(w io.Writer) error {
	return tmpl.ExecuteTemplate(w, "advanced", p)
}

// HTML renders the form for embedding in another template.
func (p Panel) HTML() (template.HTML, error) {
	var buf bytes.Buffer
	if err := p.Render(&buf); err != nil {
		return "", fmt.Errorf("rendering advanced panel: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// languageOptions lists langs with current selected, appending current when
// it is not a known language so the selector still reflects the page.
func languageOptions(langs []page.Language, current string) []Option {
	opts := make([]Option, 0, len(langs)+1)
	found := false
	for _, l := range langs {
		sel := l.Code == current
		found = found || sel
		label := l.Name
		if label == "" {
			label = l.Code
		}
		opts = append(opts, Option{Value: l.Code, Label: label, Selected: sel})
	}
	if !found && current != "" {
		opts = append(opts, Option{Value: current, Label: current, Selected: true})
	}
	return opts
}

// textOptions lists texts with def selected, putting def first when it is
// not among texts.
func textOptions(texts []string, def string) []Option {
	opts := make([]Option, 0, len(texts)+1)
	found := false
	for _, t := range texts {
		if t == def {
			found = true
			break
		}
	}
	if !found && def != "" {
		opts = append(opts, Option{Value: def, Label: def, Selected: true})
	}
	for _, t := range texts {
		opts = append(opts, Option{Value: t, Label: t, Selected: t == def})
	}
	return opts
}
