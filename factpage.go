// Package factpage renders product records into static "Product Facts" HTML
// pages. The root package is a thin facade over pkg/orchestrator for callers
// that want one import.
package factpage

import (
	"context"

	"github.com/goliatone/go-factpage/pkg/fragments"
	"github.com/goliatone/go-factpage/pkg/orchestrator"
	"github.com/goliatone/go-factpage/pkg/record"
	"github.com/goliatone/go-factpage/pkg/render"
)

// Request aliases orchestrator.Request.
type Request = orchestrator.Request

// Result aliases orchestrator.Result.
type Result = orchestrator.Result

// RenderOptions aliases render.RenderOptions.
type RenderOptions = render.RenderOptions

// Record aliases record.Record.
type Record = record.Record

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML loads data/<slug>.json and renders it with the default page
// renderer.
func GenerateHTML(ctx context.Context, slug string, options ...orchestrator.Option) ([]byte, error) {
	result, err := orchestrator.New(options...).Generate(ctx, orchestrator.Request{Slug: slug})
	if err != nil {
		return nil, err
	}
	return result.HTML, nil
}

// RenderRecord renders an already decoded record without touching disk.
func RenderRecord(ctx context.Context, rec Record, escape fragments.EscapeMode, options ...orchestrator.Option) ([]byte, error) {
	result, err := orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Record:        &rec,
		RenderOptions: render.RenderOptions{Escape: escape},
	})
	if err != nil {
		return nil, err
	}
	return result.HTML, nil
}

// Publish renders data/<slug>.json and writes products/<slug>-generated.html.
func Publish(ctx context.Context, slug string, options ...orchestrator.Option) (string, error) {
	result, err := orchestrator.New(options...).Publish(ctx, orchestrator.Request{Slug: slug})
	if err != nil {
		return "", err
	}
	return result.Path, nil
}
