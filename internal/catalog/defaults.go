package catalog

import (
	"github.com/tesserae/tesserae-web/internal/nav"
	"github.com/tesserae/tesserae-web/internal/page"
	"github.com/tesserae/tesserae-web/internal/registry"
)

// DefaultLanguages are the languages the corpus is known to cover.
var DefaultLanguages = []page.Language{
	{Code: "la", Name: "Latin"},
	{Code: "grc", Name: "Greek"},
	{Code: "fr", Name: "French"},
	{Code: "en", Name: "English"},
}

// DefaultMenu is the search navigation shown on every page.
var DefaultMenu = []nav.Entry{
	{Category: page.CategorySearch, Label: "Search", Base: registry.BaseHTML, Path: "/"},
	{Category: page.CategoryTools, Label: "Other Tools", Base: registry.BaseHTML, Path: "/tools"},
	{Category: page.CategoryHelp, Label: "Help", Base: registry.BaseHTML, Path: "/help"},
}

// DefaultTools are the experimental tools listed on the tools page.
var DefaultTools = []Tool{
	{
		Title:       "Latin Multi-text search",
		Base:        registry.BaseHTML,
		Path:        "/latin-multi-text.php",
		Description: "Cross-references discovered parallels against the rest of the Latin corpus.",
	},
	{
		Title:       "Greek Multi-text search",
		Base:        registry.BaseHTML,
		Path:        "/greek-multi-text.php",
		Description: "Cross-references discovered parallels against the rest of the Greek corpus.",
	},
	{
		Title:       "LSA Search Tool",
		Base:        registry.BaseCGI,
		Path:        "/lsa.pl",
		Description: "Search for thematic similarities even where phrases have no words in common.",
	},
	{
		Title:       "Tri-gram Visualizer",
		Base:        registry.BaseHTML,
		Path:        "/3gr.php",
		Description: "Customizable, color-coded visualization of 3-gram concentrations.",
	},
	{
		Title:       "Full-Text Display",
		Base:        registry.BaseHTML,
		Path:        "/full-text.php",
		Description: "Displays the full text of the poems with references highlighted in red.",
	},
	{
		Title: "Lucan-Vergil Benchmark Test",
		Base:  registry.BaseCGI,
		Path:  "/check-recall.pl",
		Description: "Allows you to perform a search of Lucan's Pharsalia Book 1 against Vergil's Aeneid, " +
			"and compares the results against our 3000-parallel benchmark set.",
	},
}

// DefaultTexts seeds the text selectors of the search panel.
var DefaultTexts = map[string][]string{
	"la": {
		"catullus.carmina",
		"lucan.bellum_civile.part.1",
		"vergil.aeneid",
		"vergil.georgics.part.1",
	},
	"fr": {
		"apollinaire.alcools",
		"victor_hugo.legende",
		"voltaire.henriade.part.1",
	},
}

// DefaultPages returns the built-in page declarations.
func DefaultPages() []page.Config {
	return []page.Config{
		{
			ID:          "latin",
			Path:        "/",
			Title:       "Latin Search",
			Category:    page.CategorySearch,
			Body:        page.BodySearch,
			LanguageNav: false,
			Lang:        page.LanguagePair{Source: "la", Target: "la"},
			Defaults: page.DefaultSelection{
				SourceText: "catullus.carmina",
				TargetText: "vergil.georgics.part.1",
			},
			Features: page.MustFeatureSet(
				page.Feature{Key: "word", Label: "exact word"},
				page.Feature{Key: "stem", Label: "lemma"},
				page.Feature{Key: "syn", Label: "semantic"},
				page.Feature{Key: "syn_lem", Label: "lemma + semantic"},
				page.Feature{Key: "3gr", Label: "sound"},
			),
			SelectedFeature: "stem",
			Intro: "The Tesserae Musivae project aims to combine the search techniques of the " +
				"[Tesserae Project](http://tesserae.caset.buffalo.edu/) and [Musisque Deoque](http://mqdq.it/) " +
				"to provide new resources for exploring intertextual parallels in Latin literature. " +
				"Select two texts below to see a list of lines sharing two or more words " +
				"(regardless of inflectional changes).",
		},
		{
			ID:          "french",
			Path:        "/french",
			Title:       "French Search",
			Category:    page.CategorySearch,
			Body:        page.BodySearch,
			LanguageNav: true,
			Lang:        page.LanguagePair{Source: "fr", Target: "fr"},
			Defaults: page.DefaultSelection{
				SourceText: "victor_hugo.legende",
				TargetText: "apollinaire.alcools",
			},
			Features: page.MustFeatureSet(
				page.Feature{Key: "word", Label: "exact word"},
				page.Feature{Key: "stem", Label: "lemma"},
				page.Feature{Key: "3gr", Label: "sound"},
			),
			SelectedFeature: "stem",
			Intro: "The Tesserae-Obvil project aims to provide a flexible and robust web interface " +
				"for exploring intertextual parallels. Select two poems below to see a list of lines " +
				"sharing two or more words (regardless of inflectional changes).",
		},
		{
			ID:          "french-latin",
			Path:        "/french-latin",
			Title:       "French-Latin Search",
			Category:    page.CategorySearch,
			Body:        page.BodySearch,
			LanguageNav: true,
			Lang:        page.LanguagePair{Source: "la", Target: "fr"},
			Defaults: page.DefaultSelection{
				SourceText: "vergil.aeneid",
				TargetText: "voltaire.henriade.part.1",
			},
			Features: page.MustFeatureSet(
				page.Feature{Key: "f2l", Label: "French-Latin dictionary"},
			),
			SelectedFeature: "f2l",
		},
		{
			ID:       "tools",
			Path:     "/tools",
			Title:    "Other Search Tools",
			Category: page.CategoryTools,
			Body:     page.BodyTools,
			Intro: "Here you can try out some searches we're still testing. " +
				"We would appreciate any feedback you have. Caution: results may not be very stable.",
		},
		{
			ID:       "help",
			Path:     "/help",
			Title:    "Instructions",
			Category: page.CategoryHelp,
			Body:     page.BodyText,
			Intro:    helpText,
		},
	}
}

const helpText = `Choose a **source** and a **target** text, then press *Compare Texts*.
Results list every pair of lines that share at least two matching words.

## Features

- **exact word** matches identical word forms.
- **lemma** matches words sharing a dictionary headword, regardless of inflection.
- **semantic** matches words whose dictionary definitions are similar.
- **lemma + semantic** combines the two.
- **sound** matches lines sharing character tri-grams.

## Advanced options

- **Unit** compares single lines or whole phrases.
- **Number of stop words** excludes the most frequent words from matching.
- **Maximum distance** limits how far apart the matching words may be.
- **Score cutoff** hides results scoring below the given value.
`
