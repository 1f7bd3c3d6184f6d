package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/tesserae/tesserae-web/internal/registry"
)

// siblingBase derives a default base for another asset kind from the html
// base: http://host/tesserae/html becomes http://host/tesserae/<name>.
func siblingBase(html, name string) string {
	html = strings.TrimRight(strings.TrimSpace(html), "/")
	root := 0
	if i := strings.Index(html, "://"); i >= 0 {
		root = i + len("://")
	}
	if i := strings.LastIndex(html, "/"); i >= root {
		return html[:i+1] + name
	}
	return html + "/" + name
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.New("port must be a number")
	}
	if n <= 0 || n > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	return nil
}

func validatePagesFile(s string) error {
	if s == "" {
		return nil
	}
	if _, err := os.Stat(s); err != nil {
		return fmt.Errorf("cannot read %s", s)
	}
	return nil
}

// RunWizard asks for the deployment settings, saves them to path and
// returns the resulting Config.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to tesserae! Let's configure this deployment.")
	fmt.Println()

	cfg := DefaultConfig()

	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: cfg.Site.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}
	cfg.Site.Title = title

	htmlPrompt := promptui.Prompt{
		Label:    "Base URL of the html pages",
		Default:  cfg.Endpoints.HTML,
		Validate: registry.CheckBase,
	}
	htmlBase, err := htmlPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("html base: %w", err)
	}
	cfg.Endpoints.HTML = htmlBase

	others := []struct {
		label  string
		name   string
		target *string
	}{
		{"Base URL of the stylesheets", "css", &cfg.Endpoints.CSS},
		{"Base URL of the search scripts", "cgi-bin", &cfg.Endpoints.CGI},
		{"Base URL of the images", "images", &cfg.Endpoints.Image},
		{"Base URL of the texts", "texts", &cfg.Endpoints.Text},
	}
	for _, o := range others {
		p := promptui.Prompt{
			Label:    o.label,
			Default:  siblingBase(htmlBase, o.name),
			Validate: registry.CheckBase,
		}
		v, err := p.Run()
		if err != nil {
			return nil, fmt.Errorf("%s base: %w", o.name, err)
		}
		*o.target = v
	}

	modePrompt := promptui.Select{
		Label: "Which pages should be served",
		Items: []string{
			"built-in: Latin, French and French-Latin search, tools, help",
			"custom: read pages from a YAML file",
		},
	}
	mode, _, err := modePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("page selection: %w", err)
	}
	if mode == 1 {
		pagesPrompt := promptui.Prompt{
			Label:    "Pages file",
			Default:  "pages.yml",
			Validate: validatePagesFile,
		}
		if cfg.PagesFile, err = pagesPrompt.Run(); err != nil {
			return nil, fmt.Errorf("pages file: %w", err)
		}
	}

	portPrompt := promptui.Prompt{
		Label:    "Port to serve on",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
