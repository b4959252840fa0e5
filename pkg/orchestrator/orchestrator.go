package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-factpage/internal/observability"
	internalLoader "github.com/goliatone/go-factpage/internal/record/loader"
	"github.com/goliatone/go-factpage/pkg/fragments"
	"github.com/goliatone/go-factpage/pkg/record"
	"github.com/goliatone/go-factpage/pkg/render"
	"github.com/goliatone/go-factpage/pkg/renderers/page"
	"github.com/goliatone/go-factpage/pkg/themes"
	"github.com/goliatone/go-factpage/pkg/writer"
)

const defaultRendererName = page.DefaultName

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom record loader.
func WithLoader(loader record.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithWriter injects the page writer used by Publish.
func WithWriter(w *writer.Writer) Option {
	return func(o *Orchestrator) {
		o.writer = w
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithMetrics records pipeline metrics on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(o *Orchestrator) {
		o.metrics = m
	}
}

// WithThemeSelector overrides the theme selector. Any go-theme selector works.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themes = selector
	}
}

// WithTransformer registers a Transformer that rewrites records before they
// are rendered.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithEscape sets the escape mode applied when a request leaves it empty.
func WithEscape(mode fragments.EscapeMode) Option {
	return func(o *Orchestrator) {
		o.escape = mode
	}
}

// Orchestrator coordinates the pipeline from record source to written page.
// It applies defaults (embedded page renderer, data/ and products/ dirs,
// built-in theme) while staying open to injection.
type Orchestrator struct {
	loader          record.Loader
	registry        *render.Registry
	defaultRenderer string
	writer          *writer.Writer
	themes          theme.ThemeSelector
	escape          fragments.EscapeMode
	transformer     Transformer
	logger          *zap.Logger
	metrics         *observability.Metrics
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one page to produce.
type Request struct {
	// Slug names the record; it selects data/<slug>.json when Source is nil
	// and names the output file.
	Slug string

	// Source overrides where the record is loaded from.
	Source record.Source

	// Record bypasses loading entirely.
	Record *record.Record

	// Renderer names the renderer. Empty selects the default.
	Renderer string

	// ThemeName and ThemeVariant select the style tokens. Empty values use
	// the selector defaults.
	ThemeName    string
	ThemeVariant string

	// RenderOptions carries the escape mode. A non-nil Theme wins over the
	// theme selection above.
	RenderOptions render.RenderOptions

	// OutputPath overrides the slug-derived output path in Publish.
	OutputPath string
}

// Result is the outcome of Generate or Publish.
type Result struct {
	Slug     string
	Renderer string
	HTML     []byte
	// Path is set by Publish.
	Path string
	// Warnings lists values written verbatim that contain markup characters.
	// Only populated in raw escape mode.
	Warnings []fragments.Finding
	// Missing lists declared record keys that fell back to defaults and that
	// no transformer filled.
	Missing []string
	// Unknown lists unrecognized top-level record keys.
	Unknown []string
}

// Generate loads, parses and renders the requested record.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Result{}, err
	}

	slug := resolveSlug(req)
	log := o.logger.With(zap.String("slug", slug))

	rec, err := o.resolveRecord(ctx, req, slug)
	if err != nil {
		return Result{}, err
	}
	if missing := rec.Missing(); len(missing) > 0 {
		log.Debug("record keys defaulted", zap.Strings("fields", missing))
	}
	if unknown := rec.Unknown(); len(unknown) > 0 {
		log.Debug("record keys ignored", zap.Strings("fields", unknown))
	}

	if err := o.applyTransformer(ctx, &rec); err != nil {
		o.metrics.Failed("transform")
		return Result{}, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		o.metrics.Failed("render")
		return Result{}, err
	}

	options, err := o.renderOptions(req)
	if err != nil {
		o.metrics.Failed("render")
		return Result{}, err
	}

	var warnings []fragments.Finding
	if options.Escape == "" || options.Escape == fragments.EscapeRaw {
		warnings = fragments.UnsafeValues(rec)
		for _, finding := range warnings {
			log.Warn("unescaped markup in record value",
				zap.String("field", finding.Field),
				zap.String("value", finding.Value))
		}
	}

	output, err := renderer.Render(ctx, rec, options)
	if err != nil {
		o.metrics.Failed("render")
		return Result{}, fmt.Errorf("orchestrator: render output: %w", err)
	}

	o.metrics.Rendered(renderer.Name(), len(output), len(warnings))
	log.Debug("page rendered",
		zap.String("renderer", renderer.Name()),
		zap.Int("bytes", len(output)))

	return Result{
		Slug:     slug,
		Renderer: renderer.Name(),
		HTML:     output,
		Warnings: warnings,
		Missing:  rec.Missing(),
		Unknown:  rec.Unknown(),
	}, nil
}

// Publish generates the page and writes it, overwriting any existing file.
func (o *Orchestrator) Publish(ctx context.Context, req Request) (Result, error) {
	result, err := o.Generate(ctx, req)
	if err != nil {
		return Result{}, err
	}

	switch {
	case req.OutputPath != "":
		err = o.writer.WriteTo(ctx, req.OutputPath, result.HTML)
		result.Path = req.OutputPath
	case result.Slug != "":
		result.Path, err = o.writer.Write(ctx, result.Slug, result.HTML)
	default:
		err = errors.New("orchestrator: slug or output path is required to publish")
	}
	if err != nil {
		o.metrics.Failed("write")
		return Result{}, err
	}

	o.logger.Info("page written",
		zap.String("slug", result.Slug),
		zap.String("path", result.Path))
	return result, nil
}

// Registry exposes the renderer registry so callers can add renderers.
func (o *Orchestrator) Registry() *render.Registry {
	return o.registry
}

func (o *Orchestrator) resolveRecord(ctx context.Context, req Request, slug string) (record.Record, error) {
	if req.Record != nil {
		return req.Record.Clone(), nil
	}

	src := req.Source
	if src == nil {
		if req.Slug == "" {
			return record.Record{}, errors.New("orchestrator: slug, source or record is required")
		}
		src = record.SourceFromSlug(req.Slug)
	}

	doc, err := o.loader.Load(ctx, src)
	if err != nil {
		o.metrics.Failed("load")
		return record.Record{}, fmt.Errorf("orchestrator: load %s: %w", slug, err)
	}

	rec, err := record.Parse(doc)
	if err != nil {
		o.metrics.Failed("parse")
		return record.Record{}, fmt.Errorf("orchestrator: parse %s: %w", slug, err)
	}
	return rec, nil
}

func (o *Orchestrator) applyTransformer(ctx context.Context, rec *record.Record) error {
	if o.transformer == nil {
		return nil
	}
	if err := o.transformer.Transform(ctx, rec); err != nil {
		return fmt.Errorf("orchestrator: transform record: %w", err)
	}
	return nil
}

func (o *Orchestrator) renderOptions(req Request) (render.RenderOptions, error) {
	options := req.RenderOptions
	if options.Escape == "" {
		options.Escape = o.escape
	}
	if options.Theme != nil || o.themes == nil {
		return options, nil
	}
	resolved, err := themes.Select(o.themes, req.ThemeName, req.ThemeVariant)
	if err != nil {
		return render.RenderOptions{}, fmt.Errorf("orchestrator: select theme: %w", err)
	}
	options.Theme = resolved
	return options, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	renderer, err := o.registry.Get(target)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.loader == nil {
		o.loader = internalLoader.New(record.NewLoaderOptions())
	}
	if o.writer == nil {
		o.writer = writer.New()
	}
	if o.themes == nil {
		o.themes = themes.Default()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := page.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}

// resolveSlug prefers the explicit slug, then derives one from the source.
func resolveSlug(req Request) string {
	if req.Slug != "" {
		return req.Slug
	}
	if req.Source == nil {
		return ""
	}
	if req.Source.Kind() == record.SourceKindSlug {
		return req.Source.Location()
	}
	base := filepath.Base(req.Source.Location())
	return strings.TrimSuffix(base, filepath.Ext(base))
}
