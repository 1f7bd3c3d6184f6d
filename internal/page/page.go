package page

import (
	"errors"
	"fmt"
	"strings"
)

// Category tags a page for the search navigation.
type Category string

const (
	CategorySearch Category = "search"
	CategoryTools  Category = "tools"
	CategoryHelp   Category = "help"
)

// BodyKind selects how a page's main content is built.
type BodyKind string

const (
	// BodySearch renders the intro followed by the advanced search panel.
	BodySearch BodyKind = "search"
	// BodyTools renders the intro followed by the sibling tool list.
	BodyTools BodyKind = "tools"
	// BodyText renders the intro only.
	BodyText BodyKind = "text"
)

// LanguagePair is the (source, target) languages of a search page.
// Source may equal Target for intra-language search.
type LanguagePair struct {
	Source string `yaml:"source" json:"source"`
	Target string `yaml:"target" json:"target"`
}

// IsZero reports whether neither language is set.
func (p LanguagePair) IsZero() bool { return p.Source == "" && p.Target == "" }

// DefaultSelection holds the corpus text ids pre-selected on a page.
// Ids follow author.work[.part] but are not checked here.
type DefaultSelection struct {
	SourceText string `yaml:"source_text" json:"source_text"`
	TargetText string `yaml:"target_text" json:"target_text"`
}

// Language is a language code with its display name.
type Language struct {
	Code string `yaml:"code" json:"code"`
	Name string `yaml:"name" json:"name"`
}

// Identity is what navigation needs to know about the current page.
type Identity struct {
	Category Category
	ID       string
}

// Config is the per-page declaration every partial is rendered from.
type Config struct {
	ID              string           `yaml:"id" json:"id"`
	Path            string           `yaml:"path" json:"path"`
	Title           string           `yaml:"title" json:"title"`
	Category        Category         `yaml:"category" json:"category"`
	Body            BodyKind         `yaml:"body" json:"body"`
	LanguageNav     bool             `yaml:"language_nav" json:"language_nav"`
	Lang            LanguagePair     `yaml:"lang" json:"lang"`
	Defaults        DefaultSelection `yaml:"defaults" json:"defaults"`
	Features        FeatureSet       `yaml:"features" json:"features"`
	SelectedFeature string           `yaml:"selected_feature" json:"selected_feature"`
	Intro           string           `yaml:"intro" json:"intro,omitempty"`
}

// Identity returns the page's navigation identity.
func (c Config) Identity() Identity {
	return Identity{Category: c.Category, ID: c.ID}
}

// SelectionValid reports whether SelectedFeature names a declared feature.
func (c Config) SelectionValid() bool {
	return c.Features.Has(c.SelectedFeature)
}

// Validate checks the declaration. Search pages must be fully populated;
// other bodies may leave the language and feature fields empty. An unknown
// SelectedFeature is not an error: see SelectionValid.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.ID) == "" {
		errs = append(errs, errors.New("id is required"))
	}
	if !strings.HasPrefix(c.Path, "/") {
		errs = append(errs, fmt.Errorf("path %q must start with /", c.Path))
	}
	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, errors.New("title is required"))
	}
	if c.Category == "" {
		errs = append(errs, errors.New("category is required"))
	}

	switch c.Body {
	case BodySearch:
		if c.Lang.Source == "" || c.Lang.Target == "" {
			errs = append(errs, errors.New("search pages need both lang.source and lang.target"))
		}
		if c.Defaults.SourceText == "" || c.Defaults.TargetText == "" {
			errs = append(errs, errors.New("search pages need both default texts"))
		}
		if c.Features.Len() == 0 {
			errs = append(errs, errors.New("search pages need at least one feature"))
		}
		if c.SelectedFeature == "" {
			errs = append(errs, errors.New("search pages need a selected_feature"))
		}
	case BodyTools, BodyText:
		if c.LanguageNav && (c.Lang.Source == "" || c.Lang.Target == "") {
			errs = append(errs, errors.New("language_nav needs both lang.source and lang.target"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown body %q", c.Body))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("page %q: %w", c.ID, errors.Join(errs...))
}
