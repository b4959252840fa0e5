package page

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-factpage/pkg/fragments"
	"github.com/goliatone/go-factpage/pkg/record"
	"github.com/goliatone/go-factpage/pkg/render"
)

const (
	// DefaultName is the registry name of the embedded page renderer.
	DefaultName = "page"
	// TemplateName is the registry name used for external template files.
	TemplateName = "template"
)

type Option func(*config)

type config struct {
	name     string
	load     func() (string, error)
	location string
	mapping  fragments.Mapping
}

// WithName overrides the registry name.
func WithName(name string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			cfg.name = trimmed
		}
	}
}

// WithTemplatesFS reads the template named name from files.
func WithTemplatesFS(files fs.FS, name string) Option {
	return func(cfg *config) {
		if files == nil || name == "" {
			return
		}
		cfg.location = name
		cfg.load = func() (string, error) {
			data, err := fs.ReadFile(files, name)
			if err != nil {
				return "", templateErr(name, err)
			}
			return string(data), nil
		}
	}
}

// WithTemplateFile reads the template from disk on every render so edits are
// picked up without rebuilding the renderer.
func WithTemplateFile(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.location = path
		cfg.load = func() (string, error) {
			data, err := os.ReadFile(path)
			if err != nil {
				return "", templateErr(path, err)
			}
			return string(data), nil
		}
	}
}

// WithTemplateString uses tmpl verbatim.
func WithTemplateString(tmpl string) Option {
	return func(cfg *config) {
		cfg.location = "inline"
		cfg.load = func() (string, error) {
			return tmpl, nil
		}
	}
}

// WithMapping replaces the field-to-fragment mapping.
func WithMapping(mapping fragments.Mapping) Option {
	return func(cfg *config) {
		if mapping != nil {
			cfg.mapping = mapping
		}
	}
}

// Renderer substitutes record fragments into an HTML template.
type Renderer struct {
	name     string
	load     func() (string, error)
	location string
	mapping  fragments.Mapping
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a renderer. Without template options it uses the embedded
// facts page.
func New(options ...Option) (*Renderer, error) {
	cfg := config{name: DefaultName}
	WithTemplatesFS(TemplatesFS(), DefaultTemplate)(&cfg)
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.mapping == nil {
		cfg.mapping = fragments.Default()
	}
	if cfg.load == nil {
		return nil, errors.New("page renderer: template source is required")
	}

	return &Renderer{
		name:     cfg.name,
		load:     cfg.load,
		location: cfg.location,
		mapping:  cfg.mapping,
	}, nil
}

// NewFromFile is shorthand for an external template renderer.
func NewFromFile(path string, options ...Option) (*Renderer, error) {
	base := []Option{WithName(TemplateName), WithTemplateFile(path)}
	return New(append(base, options...)...)
}

func (r *Renderer) Name() string {
	return r.name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Location reports where the template is read from.
func (r *Renderer) Location() string {
	return r.location
}

func (r *Renderer) Render(ctx context.Context, rec record.Record, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tmpl, err := r.load()
	if err != nil {
		return nil, fmt.Errorf("page renderer: %w", err)
	}

	fragCtx, err := options.FragmentContext(rec)
	if err != nil {
		return nil, fmt.Errorf("page renderer: %w", err)
	}

	return []byte(r.mapping.Substitute(tmpl, fragCtx)), nil
}

func templateErr(location string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", render.ErrTemplateNotFound, location)
	}
	return fmt.Errorf("read template %s: %w", location, err)
}
