package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-factpage/internal/config"
	internalLoader "github.com/goliatone/go-factpage/internal/record/loader"
	"github.com/goliatone/go-factpage/internal/prompt"
	"github.com/goliatone/go-factpage/pkg/fragments"
	"github.com/goliatone/go-factpage/pkg/orchestrator"
	"github.com/goliatone/go-factpage/pkg/record"
	"github.com/goliatone/go-factpage/pkg/render"
	"github.com/goliatone/go-factpage/pkg/renderers/page"
	"github.com/goliatone/go-factpage/pkg/themes"
	"github.com/goliatone/go-factpage/pkg/writer"
)

var (
	renderInput       string
	renderOutput      string
	renderTemplate    string
	renderPreset      string
	renderRenderer    string
	renderEscape      string
	renderTheme       string
	renderThemeFile   string
	renderVariant     string
	renderDataDir     string
	renderOutputDir   string
	renderAtomic      bool
	renderInteractive bool

	// promptDriver is swapped out in tests.
	promptDriver = prompt.NewSurveyDriver()
)

var renderCmd = &cobra.Command{
	Use:   "render [slug...]",
	Short: "Render records to products/<slug>-generated.html",
	Long: `Renders each slug's data/<slug>.json into an HTML page.

With no slug the configured default slug is rendered, or with --interactive
the records found in the data directory are offered for selection.

  factpage render noco-gb40
  factpage render --input data/noco-gb40.json --output out.html
  factpage render noco-gb40 --template products/template.html`,
	RunE: runRender,
}

func init() {
	f := renderCmd.Flags()
	f.StringVar(&renderInput, "input", "", "record file to render instead of a slug")
	f.StringVar(&renderOutput, "output", "", "output file (only with a single record)")
	f.StringVar(&renderTemplate, "template", "", "external template file with {{placeholder}} markers")
	f.StringVar(&renderPreset, "preset", "", "partial record (JSON or YAML) overlaid on every record")
	f.StringVar(&renderRenderer, "renderer", "", "renderer name (page, template)")
	f.StringVar(&renderEscape, "escape", "", "value encoding: raw, escape, sanitize")
	f.StringVar(&renderTheme, "theme", "", "theme name")
	f.StringVar(&renderThemeFile, "theme-file", "", "YAML theme manifest to register")
	f.StringVar(&renderVariant, "variant", "", "theme variant")
	f.StringVar(&renderDataDir, "data-dir", "", "directory holding <slug>.json records")
	f.StringVar(&renderOutputDir, "output-dir", "", "directory receiving generated pages")
	f.BoolVar(&renderAtomic, "atomic", false, "write through a temp file and rename")
	f.BoolVarP(&renderInteractive, "interactive", "i", false, "pick records interactively")
}

func runRender(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	applyRenderFlags(&cfg)

	orch, err := buildOrchestrator(&cfg)
	if err != nil {
		return err
	}
	if registry := orch.Registry(); cfg.Renderer != "" && !registry.Has(cfg.Renderer) {
		return fmt.Errorf("%w: %q (available: %s)", render.ErrUnknownRenderer, cfg.Renderer, strings.Join(registry.List(), ", "))
	}

	requests, err := renderRequests(ctx, args)
	if err != nil {
		return err
	}
	if renderOutput != "" && len(requests) > 1 {
		return fmt.Errorf("--output needs exactly one record, got %d", len(requests))
	}

	escape, err := fragments.ParseEscapeMode(cfg.Escape)
	if err != nil {
		return err
	}

	for _, req := range requests {
		req.Renderer = cfg.Renderer
		req.ThemeName = cfg.Theme
		req.ThemeVariant = cfg.Variant
		req.RenderOptions = render.RenderOptions{Escape: escape}
		req.OutputPath = renderOutput

		result, err := orch.Publish(ctx, req)
		if err != nil {
			return err
		}
		if len(result.Warnings) > 0 {
			logger.Warn("page contains unescaped markup; rerun with --escape=escape or --escape=sanitize to encode it",
				zap.String("slug", result.Slug),
				zap.Int("values", len(result.Warnings)))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Rendered HTML written to: %s\n", result.Path)
	}
	return nil
}

func applyRenderFlags(c *config.Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&c.DataDir, renderDataDir)
	set(&c.OutputDir, renderOutputDir)
	set(&c.Template, renderTemplate)
	set(&c.Preset, renderPreset)
	set(&c.Renderer, renderRenderer)
	set(&c.Escape, renderEscape)
	set(&c.Theme, renderTheme)
	set(&c.ThemeFile, renderThemeFile)
	set(&c.Variant, renderVariant)
	if renderAtomic {
		c.Atomic = true
	}
	// An external template implies the template renderer unless one was
	// named explicitly.
	if c.Template != "" && renderRenderer == "" && (c.Renderer == "" || c.Renderer == page.DefaultName) {
		c.Renderer = page.TemplateName
	}
}

func renderRequests(ctx context.Context, args []string) ([]orchestrator.Request, error) {
	if renderInput != "" {
		return []orchestrator.Request{{Source: record.SourceFromFile(renderInput)}}, nil
	}

	slugs := args
	if len(slugs) == 0 && renderInteractive {
		picked, err := prompt.PickSlugs(ctx, promptDriver, cfg.DataDir)
		if err != nil {
			return nil, err
		}
		if len(picked) == 0 {
			return nil, prompt.ErrNoSelection
		}
		slugs = picked
	}
	if len(slugs) == 0 {
		slugs = []string{cfg.DefaultSlug}
	}

	requests := make([]orchestrator.Request, 0, len(slugs))
	for _, slug := range slugs {
		requests = append(requests, orchestrator.Request{Slug: slug})
	}
	return requests, nil
}

// buildOrchestrator wires the pipeline from resolved configuration.
func buildOrchestrator(c *config.Config) (*orchestrator.Orchestrator, error) {
	loaderOpts := []record.LoaderOption{record.WithDataDir(c.DataDir)}
	if c.AllowHTTP {
		loaderOpts = append(loaderOpts, record.WithHTTPFallback(c.HTTPTimeout))
	}

	registry := render.NewRegistry()
	pageRenderer, err := page.New()
	if err != nil {
		return nil, err
	}
	registry.MustRegister(pageRenderer)
	if c.Template != "" {
		custom, err := page.NewFromFile(c.Template)
		if err != nil {
			return nil, err
		}
		if err := registry.Replace(custom); err != nil {
			return nil, err
		}
	}

	catalog := themes.Default()
	if c.ThemeFile != "" {
		manifest, err := themes.LoadManifestFile(c.ThemeFile)
		if err != nil {
			return nil, err
		}
		if err := catalog.Register(manifest); err != nil {
			return nil, err
		}
		if c.Theme == "" {
			c.Theme = manifest.Name
		}
	}

	escape, err := fragments.ParseEscapeMode(c.Escape)
	if err != nil {
		return nil, err
	}

	options := []orchestrator.Option{
		orchestrator.WithLoader(internalLoader.New(record.NewLoaderOptions(loaderOpts...))),
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer(c.Renderer),
		orchestrator.WithWriter(writer.New(
			writer.WithOutputDir(c.OutputDir),
			writer.WithAtomic(c.Atomic),
		)),
		orchestrator.WithThemeSelector(catalog),
		orchestrator.WithEscape(escape),
		orchestrator.WithLogger(logger),
		orchestrator.WithMetrics(metrics),
	}
	if c.Preset != "" {
		preset, err := orchestrator.NewPresetTransformerFromFS(os.DirFS(filepath.Dir(c.Preset)), filepath.Base(c.Preset))
		if err != nil {
			return nil, err
		}
		options = append(options, orchestrator.WithTransformer(preset))
	}
	return orchestrator.New(options...), nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
