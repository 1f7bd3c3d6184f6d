package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/tesserae/tesserae-web/internal/catalog"
	"github.com/tesserae/tesserae-web/internal/registry"
)

// EnvPrefix marks environment overrides. A double underscore separates
// nested keys: TESSERAE_SERVER__PORT sets server.port.
const EnvPrefix = "TESSERAE_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validLogLevels = map[LogLevel]slog.Level{
	LogDebug: slog.LevelDebug,
	LogInfo:  slog.LevelInfo,
	LogWarn:  slog.LevelWarn,
	LogError: slog.LevelError,
}

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Site.Title) == "" {
		errs = append(errs, errors.New("site.title is required"))
	}
	if _, err := registry.New(c.Endpoints); err != nil {
		errs = append(errs, fmt.Errorf("endpoints: %w", err))
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d is out of range", c.Server.Port))
	}
	if err := c.Panel.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("panel: %w", err))
	}
	if c.OutputDir == "" {
		errs = append(errs, errors.New("output_dir is required"))
	}
	if _, ok := validLogLevels[c.LogLevel]; !ok {
		errs = append(errs, fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel))
	}
	return errors.Join(errs...)
}

// Registry builds the endpoint registry.
func (c *Config) Registry() (registry.Registry, error) {
	return registry.New(c.Endpoints)
}

// Catalog loads pages_file, or returns the built-in catalog when it is unset.
func (c *Config) Catalog() (*catalog.Catalog, error) {
	if c.PagesFile == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(c.PagesFile)
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	if lvl, ok := validLogLevels[c.LogLevel]; ok {
		return lvl
	}
	return slog.LevelInfo
}
