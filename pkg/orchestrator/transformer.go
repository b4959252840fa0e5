package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-factpage/pkg/record"
)

// Transformer rewrites a record after it is parsed and before it is
// rendered. Implementations can fix up names, add queries, or apply any
// other per-run patch without editing the data file.
type Transformer interface {
	Transform(ctx context.Context, rec *record.Record) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, rec *record.Record) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, rec *record.Record) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, rec)
}

// PresetTransformer overlays a partial record onto every record it sees. The
// preset uses the record format itself:
//
//	{
//	  "product": {"brand": "NOCO"},
//	  "specs": {"warranty": "1-year limited"},
//	  "trigger_queries": ["noco jump starter"]
//	}
//
// Object keys (meta, product, definition) patch their non-empty sub-fields,
// specs merge by name, and every other key present in the preset replaces
// the record value. Keys the preset fills are dropped from Missing.
type PresetTransformer struct {
	preset  record.Record
	present map[string]bool
}

// NewPresetTransformer parses a preset document.
func NewPresetTransformer(doc record.Document) (*PresetTransformer, error) {
	preset, err := record.Parse(doc)
	if err != nil {
		return nil, fmt.Errorf("preset transformer: %w", err)
	}
	if unknown := preset.Unknown(); len(unknown) > 0 {
		return nil, fmt.Errorf("preset transformer: unrecognized keys %s", strings.Join(unknown, ", "))
	}

	present := make(map[string]bool, len(record.Fields))
	for _, field := range record.Fields {
		present[field.Key] = true
	}
	for _, key := range preset.Missing() {
		present[key] = false
	}
	return &PresetTransformer{preset: preset, present: present}, nil
}

// NewPresetTransformerFromFS loads a preset from the provided filesystem.
// YAML presets are recognized by extension.
func NewPresetTransformerFromFS(fsys fs.FS, path string) (*PresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("preset transformer: read %s: %w", path, err)
	}
	doc, err := record.NewDocument(record.SourceFromFS(path), data)
	if err != nil {
		return nil, fmt.Errorf("preset transformer: %w", err)
	}
	return NewPresetTransformer(doc)
}

// Transform applies the preset onto rec.
func (t *PresetTransformer) Transform(ctx context.Context, rec *record.Record) error {
	if rec == nil {
		return errors.New("preset transformer: record is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	p := t.preset
	if t.present["meta"] {
		patch(&rec.Meta.ASIN, p.Meta.ASIN)
		patch(&rec.Meta.AmazonURL, p.Meta.AmazonURL)
	}
	if t.present["product"] {
		patch(&rec.Product.ProductName, p.Product.ProductName)
		patch(&rec.Product.Title, p.Product.Title)
		patch(&rec.Product.Category, p.Product.Category)
		patch(&rec.Product.Brand, p.Product.Brand)
		patch(&rec.Product.Description, p.Product.Description)
	}
	if t.present["definition"] {
		patch(&rec.Definition.WhatItIs, p.Definition.WhatItIs)
	}
	if t.present["targets"] {
		rec.Targets = append([]string(nil), p.Targets...)
	}
	if t.present["problem_solution_pairs"] {
		rec.ProblemSolutionPairs = append([]record.ProblemSolution(nil), p.ProblemSolutionPairs...)
	}
	if t.present["feature_benefit_pairs"] {
		rec.FeatureBenefitPairs = append([]record.FeatureBenefit(nil), p.FeatureBenefitPairs...)
	}
	if t.present["specs"] && p.Specs.Present() {
		rec.Specs = mergeSpecs(rec.Specs, p.Specs)
	}
	if t.present["safety_points"] {
		rec.SafetyPoints = append([]string(nil), p.SafetyPoints...)
	}
	if t.present["faqs"] {
		rec.FAQs = append([]record.FAQ(nil), p.FAQs...)
	}
	if t.present["comparison_paragraph"] {
		rec.ComparisonParagraph = p.ComparisonParagraph
	}
	if t.present["trigger_queries"] {
		rec.TriggerQueries = append([]string(nil), p.TriggerQueries...)
	}
	if t.present["llm_summary_paragraph"] {
		rec.LLMSummaryParagraph = p.LLMSummaryParagraph
	}
	rec.MarkPresent(t.filled()...)
	return nil
}

// filled lists the preset keys that overwrite record values. Object keys and
// specs only count when they carry at least one value.
func (t *PresetTransformer) filled() []string {
	p := t.preset
	var keys []string
	for _, field := range record.Fields {
		if !t.present[field.Key] {
			continue
		}
		switch field.Key {
		case "meta":
			if p.Meta == (record.Meta{}) {
				continue
			}
		case "product":
			if p.Product == (record.Product{}) {
				continue
			}
		case "definition":
			if p.Definition == (record.Definition{}) {
				continue
			}
		case "specs":
			if len(p.Specs) == 0 {
				continue
			}
		}
		keys = append(keys, field.Key)
	}
	return keys
}

func patch(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// mergeSpecs overwrites matching names in place and appends new ones, so the
// record keeps its own ordering.
func mergeSpecs(dst, src record.Specs) record.Specs {
	out := append(record.Specs{}, dst...)
	for _, spec := range src {
		replaced := false
		for i := range out {
			if out[i].Name == spec.Name {
				out[i].Value = spec.Value
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, spec)
		}
	}
	return out
}
