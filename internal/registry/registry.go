package registry

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidBase is returned by New when a base URL is missing or malformed.
var ErrInvalidBase = errors.New("invalid endpoint base")

// Base names one of the deployment's URL roots.
type Base string

const (
	BaseHTML  Base = "html"
	BaseCSS   Base = "css"
	BaseCGI   Base = "cgi"
	BaseImage Base = "image"
	BaseText  Base = "text"
)

// Bases lists every base in a fixed order.
var Bases = []Base{BaseHTML, BaseCSS, BaseCGI, BaseImage, BaseText}

// Valid reports whether b is one of the known bases.
func (b Base) Valid() bool {
	for _, known := range Bases {
		if b == known {
			return true
		}
	}
	return false
}

// Endpoints holds the raw base URLs as they come out of configuration.
type Endpoints struct {
	HTML  string `yaml:"html" koanf:"html" json:"html"`
	CSS   string `yaml:"css" koanf:"css" json:"css"`
	CGI   string `yaml:"cgi" koanf:"cgi" json:"cgi"`
	Image string `yaml:"image" koanf:"image" json:"image"`
	Text  string `yaml:"text" koanf:"text" json:"text"`
}

func (e Endpoints) get(b Base) string {
	switch b {
	case BaseHTML:
		return e.HTML
	case BaseCSS:
		return e.CSS
	case BaseCGI:
		return e.CGI
	case BaseImage:
		return e.Image
	case BaseText:
		return e.Text
	}
	return ""
}

// Registry is the validated, read-only set of base URLs every rendered link
// is built from. The zero value has no bases; use New.
type Registry struct {
	bases Endpoints
}

// New validates every base and returns a Registry. Bases must be absolute
// URLs with a scheme and host, or rooted paths such as "/cgi-bin".
func New(e Endpoints) (Registry, error) {
	var clean Endpoints
	for _, b := range Bases {
		raw := strings.TrimSpace(e.get(b))
		if err := checkBase(raw); err != nil {
			return Registry{}, fmt.Errorf("%w %s: %v", ErrInvalidBase, b, err)
		}
		raw = strings.TrimRight(raw, "/")
		switch b {
		case BaseHTML:
			clean.HTML = raw
		case BaseCSS:
			clean.CSS = raw
		case BaseCGI:
			clean.CGI = raw
		case BaseImage:
			clean.Image = raw
		case BaseText:
			clean.Text = raw
		}
	}
	return Registry{bases: clean}, nil
}

// CheckBase reports whether raw would be accepted as a base by New.
func CheckBase(raw string) error {
	if err := checkBase(strings.TrimSpace(raw)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBase, err)
	}
	return nil
}

func checkBase(raw string) error {
	if raw == "" {
		return errors.New("not set")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("%q must not carry a query or fragment", raw)
	}
	if u.Scheme != "" {
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("unsupported scheme %q", u.Scheme)
		}
		if u.Host == "" {
			return fmt.Errorf("%q has no host", raw)
		}
		return nil
	}
	if !strings.HasPrefix(raw, "/") {
		return fmt.Errorf("%q must be an absolute URL or a rooted path", raw)
	}
	return nil
}

// Endpoints returns a copy of the normalized bases.
func (r Registry) Endpoints() Endpoints { return r.bases }

// Root returns the normalized base for b, without a trailing slash.
func (r Registry) Root(b Base) string { return r.bases.get(b) }

// URL joins the base b with rel using exactly one separator.
func (r Registry) URL(b Base, rel string) string {
	return Join(r.bases.get(b), rel)
}

func (r Registry) HTML(rel string) string  { return r.URL(BaseHTML, rel) }
func (r Registry) CSS(rel string) string   { return r.URL(BaseCSS, rel) }
func (r Registry) CGI(rel string) string   { return r.URL(BaseCGI, rel) }
func (r Registry) Image(rel string) string { return r.URL(BaseImage, rel) }
func (r Registry) Text(rel string) string  { return r.URL(BaseText, rel) }

// Join concatenates base and rel with a single "/" between them.
// An empty rel yields the base itself; a root base ("/" or "") yields "/rel".
func Join(base, rel string) string {
	base = strings.TrimRight(base, "/")
	rel = strings.TrimLeft(rel, "/")
	if rel == "" {
		if base == "" {
			return "/"
		}
		return base
	}
	return base + "/" + rel
}
