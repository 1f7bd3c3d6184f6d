package config

import (
	"github.com/tesserae/tesserae-web/internal/layout"
	"github.com/tesserae/tesserae-web/internal/panel"
	"github.com/tesserae/tesserae-web/internal/registry"
)

// DefaultPath is where the CLI looks for configuration.
const DefaultPath = ".tesserae.yml"

// DefaultEndpoints points every base at a local install under /tesserae.
var DefaultEndpoints = registry.Endpoints{
	HTML:  "http://localhost/tesserae/html",
	CSS:   "http://localhost/tesserae/css",
	CGI:   "http://localhost/tesserae/cgi-bin",
	Image: "http://localhost/tesserae/images",
	Text:  "http://localhost/tesserae/texts",
}

// DefaultSite is the text shown in the head, banner and footer.
var DefaultSite = layout.Info{
	Title:       "Tesserae",
	Author:      "Neil Coffee, Jean-Pierre Koenig, Shakthi Poornima, Chris Forstall, Roelant Ossewaarde",
	Keywords:    "intertext, text analysis, classics, university at buffalo, latin",
	Description: "Intertext analyzer for Latin texts",
	Logo:        "Tesserae.png",
	Footer:      "Tesserae Project",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Site:      DefaultSite,
		Endpoints: DefaultEndpoints,
		Server: ServerConfig{
			Port: 8080,
		},
		Panel:     panel.DefaultOptions(),
		OutputDir: "public",
		LogLevel:  LogInfo,
	}
}
