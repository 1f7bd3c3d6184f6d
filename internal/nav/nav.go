// Package nav computes the navigation menus shown above every page. It only
// reads the endpoint registry and the identity of the page being rendered.
package nav

import (
	"github.com/tesserae/tesserae-web/internal/page"
	"github.com/tesserae/tesserae-web/internal/registry"
)

// Entry declares one item of the search navigation.
type Entry struct {
	Category page.Category `yaml:"category" json:"category"`
	Label    string        `yaml:"label" json:"label"`
	Base     registry.Base `yaml:"base" json:"base"`
	Path     string        `yaml:"path" json:"path"`
}

// Item is a rendered navigation link.
type Item struct {
	Label  string
	Href   string
	Active bool
}

// SearchNav resolves entries against reg. The entry whose category matches
// the current page is marked active.
func SearchNav(reg registry.Registry, entries []Entry, current page.Identity) []Item {
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, Item{
			Label:  e.Label,
			Href:   reg.URL(e.Base, e.Path),
			Active: e.Category == current.Category,
		})
	}
	return items
}

// LanguageNav holds the source and target language selectors.
type LanguageNav struct {
	Source []Item
	Target []Item
}

// Empty reports whether neither selector has entries.
func (l LanguageNav) Empty() bool { return len(l.Source) == 0 && len(l.Target) == 0 }

// Languages builds both selectors from the pages that take part in language
// navigation. For every source language the link goes to the page with that
// source and the current target when one exists, otherwise to the first page
// with that source; targets are resolved the same way against the current
// source. The current pair's languages are marked active.
func Languages(reg registry.Registry, langs []page.Language, pages []page.Config, current page.Config) LanguageNav {
	names := make(map[string]string, len(langs))
	for _, l := range langs {
		names[l.Code] = l.Name
	}

	var nav LanguageNav
	for _, code := range distinct(pages, func(p page.Config) string { return p.Lang.Source }) {
		target := pick(pages, func(p page.Config) bool { return p.Lang.Source == code }, func(p page.Config) bool {
			return p.Lang.Target == current.Lang.Target
		})
		nav.Source = append(nav.Source, Item{
			Label:  displayName(names, code),
			Href:   reg.HTML(target.Path),
			Active: code == current.Lang.Source,
		})
	}
	for _, code := range distinct(pages, func(p page.Config) string { return p.Lang.Target }) {
		target := pick(pages, func(p page.Config) bool { return p.Lang.Target == code }, func(p page.Config) bool {
			return p.Lang.Source == current.Lang.Source
		})
		nav.Target = append(nav.Target, Item{
			Label:  displayName(names, code),
			Href:   reg.HTML(target.Path),
			Active: code == current.Lang.Target,
		})
	}
	return nav
}

func distinct(pages []page.Config, key func(page.Config) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range pages {
		k := key(p)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// pick returns the first page matching both match and prefer, falling back
// to the first page matching match alone.
func pick(pages []page.Config, match, prefer func(page.Config) bool) page.Config {
	var fallback *page.Config
	for i := range pages {
		if !match(pages[i]) {
			continue
		}
		if prefer(pages[i]) {
			return pages[i]
		}
		if fallback == nil {
			fallback = &pages[i]
		}
	}
	if fallback == nil {
		return page.Config{}
	}
	return *fallback
}

func displayName(names map[string]string, code string) string {
	if name, ok := names[code]; ok && name != "" {
		return name
	}
	return code
}
