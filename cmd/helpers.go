package cmd

import (
	"fmt"
	"log/slog"

	"github.com/tesserae/tesserae-web/internal/config"
	"github.com/tesserae/tesserae-web/internal/layout"
	"github.com/tesserae/tesserae-web/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `tesserae init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s:\n%w", cfgFile, err)
	}
	if !verbose {
		logLevel.Set(cfg.SlogLevel())
	}
	return cfg, nil
}

// buildSite wires registry, catalog and composer from cfg. Catalog warnings
// are logged, not fatal.
func buildSite(cfg *config.Config) (*site.Site, error) {
	reg, err := cfg.Registry()
	if err != nil {
		return nil, err
	}
	cat, err := cfg.Catalog()
	if err != nil {
		return nil, fmt.Errorf("loading pages: %w", err)
	}
	for _, w := range cat.Warnings() {
		slog.Warn(w)
	}
	composer, err := layout.Default(reg, cfg.Site)
	if err != nil {
		return nil, err
	}
	return site.New(cat, composer, cfg.Panel)
}
