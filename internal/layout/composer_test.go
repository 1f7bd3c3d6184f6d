package layout

import (
	"bytes"
	"errors"
	"html/template"
	"regexp"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/tesserae/tesserae-web/internal/nav"
	"github.com/tesserae/tesserae-web/internal/page"
	"github.com/tesserae/tesserae-web/internal/registry"
)

func testRegistry(t *testing.T) registry.Registry {
	t.Helper()
	reg, err := registry.New(registry.Endpoints{
		HTML:  "http://localhost/tesserae/html",
		CSS:   "http://localhost/tesserae/css/",
		CGI:   "http://localhost/tesserae/cgi-bin",
		Image: "http://localhost/tesserae/images",
		Text:  "http://localhost/tesserae/texts",
	})
	if err != nil {
		t.Fatalf("registry.New: %v", err)
	}
	return reg
}

var info = Info{
	Title:       "Tesserae",
	Author:      "Tesserae Project",
	Keywords:    "intertext, latin",
	Description: "Intertext analyzer",
	Logo:        "Tesserae.png",
	Footer:      "Tesserae Project",
}

var menu = []nav.Entry{
	{Category: page.CategorySearch, Label: "Search", Base: registry.BaseHTML, Path: "/"},
	{Category: page.CategoryTools, Label: "Other Tools", Base: registry.BaseHTML, Path: "/tools"},
}

func toolsPage() page.Config {
	return page.Config{ID: "tools", Path: "/tools", Title: "Other Search Tools", Category: page.CategoryTools, Body: page.BodyTools}
}

func latinPage() page.Config {
	return page.Config{
		ID:              "latin",
		Path:            "/",
		Title:           "Latin Search",
		Category:        page.CategorySearch,
		Body:            page.BodySearch,
		LanguageNav:     true,
		Lang:            page.LanguagePair{Source: "la", Target: "la"},
		Defaults:        page.DefaultSelection{SourceText: "catullus.carmina", TargetText: "vergil.georgics.part.1"},
		Features:        page.MustFeatureSet(page.Feature{Key: "stem", Label: "lemma"}),
		SelectedFeature: "stem",
	}
}

func staticBody(html string) Body {
	return func(View) (template.HTML, error) { return template.HTML(html), nil }
}

func compose(t *testing.T, c *Composer, cfg page.Config) string {
	t.Helper()
	reg := c.Registry()
	langs := []page.Language{{Code: "la", Name: "Latin"}}
	in := Input{
		Page:        cfg,
		SearchNav:   nav.SearchNav(reg, menu, cfg.Identity()),
		LanguageNav: nav.Languages(reg, langs, []page.Config{latinPage()}, cfg),
		Body:        staticBody("<h1>" + cfg.Title + "</h1>"),
	}
	var buf bytes.Buffer
	if err := c.Compose(&buf, in); err != nil {
		t.Fatalf("Compose: %v", err)
	}
	return buf.String()
}

func TestDefaultComposer(t *testing.T) {
	if _, err := Default(testRegistry(t), info); err != nil {
		t.Fatalf("Default: %v", err)
	}
}

func TestComposeOrder(t *testing.T) {
	c, err := Default(testRegistry(t), info)
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	html := compose(t, c, latinPage())

	markers := []string{"<!DOCTYPE html>", `id="header"`, `id="nav_main"`, `id="nav_sub"`, `id="main"`, `id="footer"`, "</html>"}
	last := -1
	for _, m := range markers {
		idx := strings.Index(html, m)
		if idx < 0 {
			t.Fatalf("marker %q missing from page", m)
		}
		if idx < last {
			t.Errorf("marker %q out of order", m)
		}
		last = idx
	}
	if !strings.Contains(html, "<title>Tesserae | Latin Search</title>") {
		t.Error("head should carry the page title")
	}
}

func TestComposeSkipsLanguageNav(t *testing.T) {
	c, err := Default(testRegistry(t), info)
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	html := compose(t, c, toolsPage())
	if strings.Contains(html, `id="nav_sub"`) {
		t.Error("language navigation should be omitted when the page does not request it")
	}
	if !strings.Contains(html, `id="footer"`) {
		t.Error("footer must still be rendered")
	}
}

func TestScenarioToolsNavigationActive(t *testing.T) {
	c, err := Default(testRegistry(t), info)
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	html := compose(t, c, toolsPage())

	if !strings.Contains(html, `<li class="active"><a href="http://localhost/tesserae/html/tools">Other Tools</a></li>`) {
		t.Errorf("tools entry should be active:\n%s", html)
	}
	if !strings.Contains(html, `<li><a href="http://localhost/tesserae/html">Search</a></li>`) {
		t.Errorf("search entry should not be active:\n%s", html)
	}
}

func TestScenarioSameLanguagePair(t *testing.T) {
	c, err := Default(testRegistry(t), info)
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	html := compose(t, c, latinPage())
	for _, id := range []string{`id="nav_source"`, `id="nav_target"`} {
		if !strings.Contains(html, id) {
			t.Errorf("language navigation missing %s", id)
		}
	}
	if n := strings.Count(html, `<li class="active"><a href="http://localhost/tesserae/html">Latin</a></li>`); n != 2 {
		t.Errorf("Latin should be active in both selectors, found %d", n)
	}
}

var hrefPattern = regexp.MustCompile(`(?:href|src)="([^"]*)"`)

func TestLinksComeFromRegistry(t *testing.T) {
	reg := testRegistry(t)
	c, err := Default(reg, info)
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	html := compose(t, c, latinPage())

	roots := []string{}
	for _, b := range registry.Bases {
		roots = append(roots, reg.Root(b))
	}
	for _, m := range hrefPattern.FindAllStringSubmatch(html, -1) {
		link := m[1]
		ok := false
		for _, root := range roots {
			if link == root || strings.HasPrefix(link, root+"/") {
				ok = true
			}
		}
		if !ok {
			t.Errorf("link %q is not built from a registry base", link)
		}
		if strings.Contains(strings.TrimPrefix(link, "http://"), "//") {
			t.Errorf("link %q has a doubled slash", link)
		}
	}
}

func TestComposeIsIdempotent(t *testing.T) {
	c, err := Default(testRegistry(t), info)
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	first := compose(t, c, latinPage())
	if second := compose(t, c, latinPage()); first != second {
		t.Error("two renders of the same configuration differ")
	}
}

func TestNewMissingPartial(t *testing.T) {
	fsys := fstest.MapFS{
		"head.html":         {Data: []byte(`{{define "head"}}<html>{{end}}`)},
		"top_banner.html":   {Data: []byte(`{{define "top_banner"}}{{end}}`)},
		"search_nav.html":   {Data: []byte(`{{define "search_nav"}}{{end}}`)},
		"language_nav.html": {Data: []byte(`{{define "language_nav"}}{{end}}`)},
		"body.html":         {Data: []byte(`{{define "body"}}{{.Body}}{{end}}`)},
	}
	_, err := New(fsys, testRegistry(t), info)
	if !errors.Is(err, ErrMissingPartial) {
		t.Fatalf("expected ErrMissingPartial, got %v", err)
	}
	if !strings.Contains(err.Error(), "footer") {
		t.Errorf("error should name the missing slot: %v", err)
	}
}

func TestComposeBodyErrorWritesNothing(t *testing.T) {
	c, err := Default(testRegistry(t), info)
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	var buf bytes.Buffer
	err = c.Compose(&buf, Input{
		Page: toolsPage(),
		Body: func(View) (template.HTML, error) { return "", errors.New("boom") },
	})
	if err == nil {
		t.Fatal("expected body error")
	}
	if buf.Len() != 0 {
		t.Errorf("partial page written on failure: %q", buf.String())
	}
}

func TestComposePartialExecutionError(t *testing.T) {
	fsys := fstest.MapFS{
		"head.html":         {Data: []byte(`{{define "head"}}<html>{{end}}`)},
		"top_banner.html":   {Data: []byte(`{{define "top_banner"}}{{end}}`)},
		"search_nav.html":   {Data: []byte(`{{define "search_nav"}}{{end}}`)},
		"language_nav.html": {Data: []byte(`{{define "language_nav"}}{{end}}`)},
		"body.html":         {Data: []byte(`{{define "body"}}{{.Body}}{{end}}`)},
		"footer.html":       {Data: []byte(`{{define "footer"}}{{template "copyright" .}}{{end}}`)},
	}
	c, err := New(fsys, testRegistry(t), info)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var buf bytes.Buffer
	if err := c.Compose(&buf, Input{Page: toolsPage(), Body: staticBody("x")}); err == nil {
		t.Fatal("expected an error from the footer partial")
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written when a partial fails")
	}
}
