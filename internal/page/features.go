package page

import (
	"encoding/json"
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// Feature is one comparison method offered by a search page.
type Feature struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// FeatureSet is an ordered, read-only mapping of feature key to label.
// Declaration order is display order. Build one with NewFeatureSet; the
// zero value is an empty set.
type FeatureSet struct {
	m *orderedmap.OrderedMap[string, string]
}

// NewFeatureSet builds a set from features in order. Keys must be non-empty
// and unique.
func NewFeatureSet(features ...Feature) (FeatureSet, error) {
	m := orderedmap.New[string, string]()
	for _, f := range features {
		key := strings.TrimSpace(f.Key)
		if key == "" {
			return FeatureSet{}, fmt.Errorf("feature with label %q has no key", f.Label)
		}
		if _, dup := m.Get(key); dup {
			return FeatureSet{}, fmt.Errorf("duplicate feature key %q", key)
		}
		m.Set(key, f.Label)
	}
	return FeatureSet{m: m}, nil
}

// MustFeatureSet is NewFeatureSet for literal declarations; it panics on error.
func MustFeatureSet(features ...Feature) FeatureSet {
	fs, err := NewFeatureSet(features...)
	if err != nil {
		panic(err)
	}
	return fs
}

// Len returns the number of features.
func (fs FeatureSet) Len() int {
	if fs.m == nil {
		return 0
	}
	return fs.m.Len()
}

// Has reports whether key is declared.
func (fs FeatureSet) Has(key string) bool {
	if fs.m == nil {
		return false
	}
	_, ok := fs.m.Get(key)
	return ok
}

// Label returns the label for key.
func (fs FeatureSet) Label(key string) (string, bool) {
	if fs.m == nil {
		return "", false
	}
	return fs.m.Get(key)
}

// Features returns the features in declaration order. The slice is a copy.
func (fs FeatureSet) Features() []Feature {
	if fs.m == nil {
		return nil
	}
	out := make([]Feature, 0, fs.m.Len())
	for pair := fs.m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Feature{Key: pair.Key, Label: pair.Value})
	}
	return out
}

// Keys returns the feature keys in declaration order.
func (fs FeatureSet) Keys() []string {
	features := fs.Features()
	keys := make([]string, len(features))
	for i, f := range features {
		keys[i] = f.Key
	}
	return keys
}

// MarshalJSON encodes the set as an ordered array of {key, label}.
func (fs FeatureSet) MarshalJSON() ([]byte, error) {
	features := fs.Features()
	if features == nil {
		features = []Feature{}
	}
	return json.Marshal(features)
}

// UnmarshalYAML decodes a YAML mapping, keeping the order in which keys
// appear in the document.
func (fs *FeatureSet) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: features must be a mapping of key to label", node.Line)
	}
	features := make([]Feature, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: label for feature %q must be a string", v.Line, k.Value)
		}
		features = append(features, Feature{Key: k.Value, Label: v.Value})
	}
	built, err := NewFeatureSet(features...)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*fs = built
	return nil
}

// MarshalYAML encodes the set as an ordered mapping.
func (fs FeatureSet) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range fs.Features() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: f.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Value: f.Label},
		)
	}
	return node, nil
}
