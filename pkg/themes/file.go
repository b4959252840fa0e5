package themes

import (
	"fmt"
	"os"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

type manifestFile struct {
	Name     string                       `yaml:"name"`
	Version  string                       `yaml:"version"`
	Tokens   map[string]string            `yaml:"tokens"`
	Variants map[string]map[string]string `yaml:"variants"`
}

// LoadManifestFile reads a YAML (or JSON) theme file:
//
//	name: brand
//	tokens: {text: "#111"}
//	variants: {dark: {text: "#eee"}}
func LoadManifestFile(path string) (*theme.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("themes: read %s: %w", path, err)
	}
	var raw manifestFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("themes: parse %s: %w", path, err)
	}
	if raw.Name == "" {
		return nil, fmt.Errorf("themes: %s: name is required", path)
	}

	manifest := &theme.Manifest{
		Name:    raw.Name,
		Version: raw.Version,
		Tokens:  raw.Tokens,
	}
	if len(raw.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(raw.Variants))
		for name, tokens := range raw.Variants {
			manifest.Variants[name] = theme.Variant{Tokens: tokens}
		}
	}
	return manifest, nil
}
