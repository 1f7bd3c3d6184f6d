package config

import (
	"github.com/tesserae/tesserae-web/internal/layout"
	"github.com/tesserae/tesserae-web/internal/panel"
	"github.com/tesserae/tesserae-web/internal/registry"
)

// LogLevel is the minimum level written to the log.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// Config is the top-level configuration, corresponding to .tesserae.yml.
type Config struct {
	Site      layout.Info        `yaml:"site" koanf:"site"`
	Endpoints registry.Endpoints `yaml:"endpoints" koanf:"endpoints"`
	Server    ServerConfig       `yaml:"server" koanf:"server"`
	Panel     panel.Options      `yaml:"panel" koanf:"panel"`
	PagesFile string             `yaml:"pages_file,omitempty" koanf:"pages_file"`
	OutputDir string             `yaml:"output_dir" koanf:"output_dir"`
	LogLevel  LogLevel           `yaml:"log_level" koanf:"log_level"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
