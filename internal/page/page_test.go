package page

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func frenchSearch() Config {
	return Config{
		ID:       "french",
		Path:     "/french",
		Title:    "French Search",
		Category: CategorySearch,
		Body:     BodySearch,
		Lang:     LanguagePair{Source: "fr", Target: "fr"},
		Defaults: DefaultSelection{SourceText: "victor_hugo.legende", TargetText: "apollinaire.alcools"},
		Features: MustFeatureSet(
			Feature{"word", "exact word"},
			Feature{"stem", "lemma"},
			Feature{"3gr", "sound"},
		),
		SelectedFeature: "stem",
	}
}

func TestFeatureSetKeepsOrder(t *testing.T) {
	fs := MustFeatureSet(
		Feature{"word", "exact word"},
		Feature{"stem", "lemma"},
		Feature{"syn", "semantic"},
		Feature{"syn_lem", "lemma + semantic"},
		Feature{"3gr", "sound"},
	)
	want := []string{"word", "stem", "syn", "syn_lem", "3gr"}
	got := fs.Keys()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("keys = %v, want %v", got, want)
	}
	if label, ok := fs.Label("syn_lem"); !ok || label != "lemma + semantic" {
		t.Errorf("Label(syn_lem) = %q, %v", label, ok)
	}
}

func TestFeatureSetRejectsDuplicates(t *testing.T) {
	_, err := NewFeatureSet(Feature{"word", "exact word"}, Feature{"word", "again"})
	if err == nil {
		t.Fatal("expected duplicate key error")
	}
	_, err = NewFeatureSet(Feature{" ", "blank"})
	if err == nil {
		t.Fatal("expected empty key error")
	}
}

func TestZeroFeatureSet(t *testing.T) {
	var fs FeatureSet
	if fs.Len() != 0 || fs.Has("word") || fs.Features() != nil {
		t.Error("zero FeatureSet should be empty")
	}
	data, err := json.Marshal(fs)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("zero set JSON = %s, want []", data)
	}
}

func TestFeatureSetYAMLOrder(t *testing.T) {
	src := `
features:
  3gr: sound
  word: exact word
  stem: lemma
`
	var doc struct {
		Features FeatureSet `yaml:"features"`
	}
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := strings.Join(doc.Features.Keys(), ","); got != "3gr,word,stem" {
		t.Errorf("keys = %s, want 3gr,word,stem", got)
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(out), "3gr: sound\n    word: exact word\n    stem: lemma") {
		t.Errorf("marshalled YAML lost order:\n%s", out)
	}
}

func TestFeatureSetYAMLDuplicate(t *testing.T) {
	src := "features:\n  word: a\n  word: b\n"
	var doc struct {
		Features FeatureSet `yaml:"features"`
	}
	if err := yaml.Unmarshal([]byte(src), &doc); err == nil {
		t.Fatal("expected duplicate key error")
	}
}

func TestFeatureSetJSONOrder(t *testing.T) {
	data, err := json.Marshal(frenchSearch().Features)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `[{"key":"word","label":"exact word"},{"key":"stem","label":"lemma"},{"key":"3gr","label":"sound"}]`
	if string(data) != want {
		t.Errorf("JSON = %s, want %s", data, want)
	}
}

func TestSelectionValid(t *testing.T) {
	cfg := frenchSearch()
	if !cfg.SelectionValid() {
		t.Error("stem should be a valid selection")
	}
	cfg.SelectedFeature = "syn"
	if cfg.SelectionValid() {
		t.Error("syn is not declared on the French page")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unknown selection must not fail validation: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid search", func(c *Config) {}, false},
		{"same language", func(c *Config) { c.Lang = LanguagePair{"la", "la"} }, false},
		{"missing id", func(c *Config) { c.ID = "" }, true},
		{"relative path", func(c *Config) { c.Path = "french" }, true},
		{"missing title", func(c *Config) { c.Title = "" }, true},
		{"missing target lang", func(c *Config) { c.Lang.Target = "" }, true},
		{"missing default text", func(c *Config) { c.Defaults.SourceText = "" }, true},
		{"no features", func(c *Config) { c.Features = FeatureSet{} }, true},
		{"no selection", func(c *Config) { c.SelectedFeature = "" }, true},
		{"unknown body", func(c *Config) { c.Body = "gallery" }, true},
		{"tools page without lang", func(c *Config) {
			c.Body = BodyTools
			c.Category = CategoryTools
			c.Lang = LanguagePair{}
			c.Features = FeatureSet{}
			c.SelectedFeature = ""
		}, false},
		{"text page with language nav but no lang", func(c *Config) {
			c.Body = BodyText
			c.Lang = LanguagePair{}
			c.LanguageNav = true
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := frenchSearch()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestIdentity(t *testing.T) {
	id := frenchSearch().Identity()
	if id.Category != CategorySearch || id.ID != "french" {
		t.Errorf("Identity = %+v", id)
	}
}
