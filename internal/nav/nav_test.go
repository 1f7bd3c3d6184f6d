package nav

import (
	"testing"

	"github.com/tesserae/tesserae-web/internal/page"
	"github.com/tesserae/tesserae-web/internal/registry"
)

func testRegistry(t *testing.T) registry.Registry {
	t.Helper()
	reg, err := registry.New(registry.Endpoints{
		HTML:  "http://localhost/tesserae/html/",
		CSS:   "http://localhost/tesserae/css",
		CGI:   "http://localhost/tesserae/cgi-bin",
		Image: "http://localhost/tesserae/images",
		Text:  "http://localhost/tesserae/texts",
	})
	if err != nil {
		t.Fatalf("registry.New: %v", err)
	}
	return reg
}

var menu = []Entry{
	{Category: page.CategorySearch, Label: "Search", Base: registry.BaseHTML, Path: "/"},
	{Category: page.CategoryTools, Label: "Other Tools", Base: registry.BaseHTML, Path: "/tools"},
	{Category: page.CategoryHelp, Label: "Help", Base: registry.BaseHTML, Path: "/help"},
}

func TestSearchNavMarksToolsActive(t *testing.T) {
	items := SearchNav(testRegistry(t), menu, page.Identity{Category: page.CategoryTools, ID: "tools"})
	if len(items) != 3 {
		t.Fatalf("items = %d, want 3", len(items))
	}
	if items[0].Active {
		t.Error("search entry should not be active on a tools page")
	}
	if !items[1].Active {
		t.Error("tools entry should be active on a tools page")
	}
	if items[2].Active {
		t.Error("help entry should not be active")
	}
	if items[1].Href != "http://localhost/tesserae/html/tools" {
		t.Errorf("tools href = %q", items[1].Href)
	}
	if items[0].Href != "http://localhost/tesserae/html" {
		t.Errorf("search href = %q", items[0].Href)
	}
}

func TestSearchNavExactlyOneActive(t *testing.T) {
	for _, cat := range []page.Category{page.CategorySearch, page.CategoryTools, page.CategoryHelp} {
		active := 0
		for _, it := range SearchNav(testRegistry(t), menu, page.Identity{Category: cat}) {
			if it.Active {
				active++
			}
		}
		if active != 1 {
			t.Errorf("category %s: %d active entries, want 1", cat, active)
		}
	}
}

var langs = []page.Language{{Code: "la", Name: "Latin"}, {Code: "fr", Name: "French"}}

var searchPages = []page.Config{
	{ID: "latin", Path: "/", Lang: page.LanguagePair{Source: "la", Target: "la"}},
	{ID: "french", Path: "/french", Lang: page.LanguagePair{Source: "fr", Target: "fr"}},
	{ID: "french-latin", Path: "/french-latin", Lang: page.LanguagePair{Source: "la", Target: "fr"}},
}

func TestLanguagesSameSourceAndTarget(t *testing.T) {
	current := searchPages[0]
	got := Languages(testRegistry(t), langs, searchPages, current)

	if len(got.Source) != 2 || len(got.Target) != 2 {
		t.Fatalf("selectors = %d source, %d target; want 2 and 2", len(got.Source), len(got.Target))
	}
	if got.Source[0].Label != "Latin" || !got.Source[0].Active {
		t.Errorf("source[0] = %+v, want active Latin", got.Source[0])
	}
	if got.Target[0].Label != "Latin" || !got.Target[0].Active {
		t.Errorf("target[0] = %+v, want active Latin", got.Target[0])
	}
	if got.Source[1].Active || got.Target[1].Active {
		t.Error("French should not be active on the Latin page")
	}
}

func TestLanguagesPreferCurrentCounterpart(t *testing.T) {
	current := searchPages[1] // fr -> fr
	got := Languages(testRegistry(t), langs, searchPages, current)

	// Source "la" with current target "fr" resolves to the la->fr page.
	var latinSource Item
	for _, it := range got.Source {
		if it.Label == "Latin" {
			latinSource = it
		}
	}
	if latinSource.Href != "http://localhost/tesserae/html/french-latin" {
		t.Errorf("Latin source href = %q", latinSource.Href)
	}

	// Target "la" has no fr->la page, so it falls back to the first la target.
	var latinTarget Item
	for _, it := range got.Target {
		if it.Label == "Latin" {
			latinTarget = it
		}
	}
	if latinTarget.Href != "http://localhost/tesserae/html" {
		t.Errorf("Latin target href = %q", latinTarget.Href)
	}
}

func TestLanguagesUnknownCodeUsesCode(t *testing.T) {
	pages := []page.Config{{ID: "greek", Path: "/greek", Lang: page.LanguagePair{Source: "grc", Target: "grc"}}}
	got := Languages(testRegistry(t), langs, pages, pages[0])
	if got.Source[0].Label != "grc" {
		t.Errorf("label = %q, want grc", got.Source[0].Label)
	}
}

func TestLanguagesEmpty(t *testing.T) {
	got := Languages(testRegistry(t), langs, nil, page.Config{})
	if !got.Empty() {
		t.Error("no pages should produce an empty LanguageNav")
	}
}
