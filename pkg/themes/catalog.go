package themes

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
)

// Resolved is a theme selection flattened into the tokens the styles
// fragment reads.
type Resolved struct {
	Theme   string
	Variant string
	Tokens  map[string]string
}

// Catalog holds theme manifests and satisfies theme.ThemeSelector so any
// go-theme aware caller can swap in its own selector.
type Catalog struct {
	mu             sync.RWMutex
	manifests      map[string]*theme.Manifest
	defaultTheme   string
	defaultVariant string
}

var _ theme.ThemeSelector = (*Catalog)(nil)

// NewCatalog creates an empty catalog using defaultTheme and defaultVariant
// when Select receives empty names.
func NewCatalog(defaultTheme, defaultVariant string) *Catalog {
	return &Catalog{
		manifests:      make(map[string]*theme.Manifest),
		defaultTheme:   strings.TrimSpace(defaultTheme),
		defaultVariant: strings.TrimSpace(defaultVariant),
	}
}

// Register adds a manifest. Duplicate names return an error.
func (c *Catalog) Register(manifest *theme.Manifest) error {
	if manifest == nil {
		return errors.New("themes: manifest is required")
	}
	name := strings.TrimSpace(manifest.Name)
	if name == "" {
		return errors.New("themes: manifest name is required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.manifests[name]; exists {
		return fmt.Errorf("themes: theme %q already registered", name)
	}
	c.manifests[name] = manifest
	return nil
}

// Names returns the registered theme names, sorted.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.manifests))
	for name := range c.manifests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select resolves a theme and variant, falling back to the catalog defaults
// for empty names.
func (c *Catalog) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	name = strings.TrimSpace(name)
	variant = strings.TrimSpace(variant)
	if name == "" {
		name = c.defaultTheme
		if variant == "" {
			variant = c.defaultVariant
		}
	}

	c.mu.RLock()
	manifest, ok := c.manifests[name]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("themes: theme %q not found", name)
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("themes: theme %q has no variant %q", name, variant)
		}
	}

	return &theme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}

// Resolve flattens a selection: variant tokens override the manifest tokens.
func Resolve(selection *theme.Selection) *Resolved {
	if selection == nil {
		return nil
	}
	out := &Resolved{
		Theme:   selection.Theme,
		Variant: selection.Variant,
		Tokens:  map[string]string{},
	}
	if selection.Manifest == nil {
		return out
	}
	for key, value := range selection.Manifest.Tokens {
		out.Tokens[key] = value
	}
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			out.Tokens[key] = value
		}
	}
	return out
}

// Select runs selector and resolves the outcome in one step.
func Select(selector theme.ThemeSelector, name, variant string) (*Resolved, error) {
	if selector == nil {
		return nil, nil
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, err
	}
	return Resolve(selection), nil
}
