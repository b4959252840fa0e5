package orchestrator_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-factpage/pkg/orchestrator"
	"github.com/goliatone/go-factpage/pkg/record"
	"github.com/goliatone/go-factpage/pkg/testsupport"
)

func TestOrchestrator_AppliesTransformer(t *testing.T) {
	rec := testsupport.MustParse(t, testsupport.FullRecord)

	called := false
	transformer := orchestrator.TransformerFunc(func(ctx context.Context, rec *record.Record) error {
		called = true
		rec.Product.Brand = "Patched Brand"
		rec.Targets[0] = "Patched Target"
		rec.FAQs[0].Answer = "Patched Answer"
		rec.Specs[0].Value = "Patched Material"
		return nil
	})

	orch := orchestrator.New(orchestrator.WithTransformer(transformer))
	result, err := orch.Generate(context.Background(), orchestrator.Request{Record: &rec})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !called {
		t.Fatalf("expected transformer to be invoked")
	}
	html := string(result.HTML)
	for _, want := range []string{
		"<strong>Brand:</strong> Patched Brand",
		"Patched Target",
		"Patched Answer",
		"Patched Material",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("transformer mutation %q missing from output", want)
		}
	}

	if rec.Product.Brand != "NOCO" {
		t.Fatalf("expected the caller's brand untouched, got %q", rec.Product.Brand)
	}
	if rec.Targets[0] != "Commuters" {
		t.Fatalf("expected the caller's targets untouched, got %q", rec.Targets[0])
	}
	if rec.FAQs[0].Answer != "Yes, via USB." {
		t.Fatalf("expected the caller's faqs untouched, got %q", rec.FAQs[0].Answer)
	}
	if got := rec.Specs.Value("material"); got != "ABS housing" {
		t.Fatalf("expected the caller's specs untouched, got %q", got)
	}
}

func TestOrchestrator_PresetClearsFilledMissingKeys(t *testing.T) {
	rec := testsupport.MustParse(t, testsupport.MinimalRecord)

	preset, err := orchestrator.NewPresetTransformerFromFS(os.DirFS("testdata"), "preset.json")
	if err != nil {
		t.Fatalf("new preset transformer: %v", err)
	}
	orch := orchestrator.New(orchestrator.WithTransformer(preset))
	result, err := orch.Generate(context.Background(), orchestrator.Request{Record: &rec})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	want := []string{
		"definition",
		"targets",
		"problem_solution_pairs",
		"feature_benefit_pairs",
		"safety_points",
		"faqs",
		"comparison_paragraph",
		"llm_summary_paragraph",
	}
	if diff := cmp.Diff(want, result.Missing); diff != "" {
		t.Fatalf("missing mismatch (-want +got):\n%s", diff)
	}
	if len(rec.Missing()) != 10 {
		t.Fatalf("expected the caller's record to keep its missing keys, got %v", rec.Missing())
	}
}

func TestOrchestrator_TransformerErrorAborts(t *testing.T) {
	transformer := orchestrator.TransformerFunc(func(context.Context, *record.Record) error {
		return errors.New("boom")
	})

	orch := orchestrator.New(orchestrator.WithTransformer(transformer))
	_, err := orch.Generate(context.Background(), orchestrator.Request{Record: &record.Record{}})
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected transformer error, got %v", err)
	}
}

func TestPresetTransformerFromFS_JSON(t *testing.T) {
	rec := testsupport.MustParse(t, testsupport.FullRecord)

	transformer, err := orchestrator.NewPresetTransformerFromFS(os.DirFS("testdata"), "preset.json")
	if err != nil {
		t.Fatalf("new preset transformer: %v", err)
	}
	if err := transformer.Transform(context.Background(), &rec); err != nil {
		t.Fatalf("apply preset: %v", err)
	}

	if rec.Product.Brand != "NOCO Genius" {
		t.Fatalf("brand not patched: %q", rec.Product.Brand)
	}
	if rec.Product.Category != "Jump Starters" {
		t.Fatalf("expected empty preset value to leave category alone, got %q", rec.Product.Category)
	}
	if diff := cmp.Diff([]string{"noco gb40 vs gb70"}, rec.TriggerQueries); diff != "" {
		t.Fatalf("trigger queries mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Commuters", "Boat owners"}, rec.Targets); diff != "" {
		t.Fatalf("expected targets untouched (-want +got):\n%s", diff)
	}

	var names []string
	for _, spec := range rec.Specs {
		names = append(names, spec.Name)
	}
	wantNames := []string{"material", "weight", "battery_type", "in_box", "capacity", "warranty"}
	if diff := cmp.Diff(wantNames, names); diff != "" {
		t.Fatalf("spec order mismatch (-want +got):\n%s", diff)
	}
	if rec.Specs.Value("weight") != "2.5 lb" || rec.Specs.Value("warranty") != "1-year limited" {
		t.Fatalf("spec values not merged: %+v", rec.Specs)
	}
}

func TestPresetTransformerFromFS_YAML(t *testing.T) {
	rec := testsupport.MustParse(t, testsupport.FullRecord)

	transformer, err := orchestrator.NewPresetTransformerFromFS(os.DirFS("testdata"), "preset.yaml")
	if err != nil {
		t.Fatalf("new preset transformer: %v", err)
	}
	if err := transformer.Transform(context.Background(), &rec); err != nil {
		t.Fatalf("apply preset: %v", err)
	}
	if rec.Definition.WhatItIs != "A compact lithium jump starter." {
		t.Fatalf("definition not patched: %q", rec.Definition.WhatItIs)
	}
	if len(rec.SafetyPoints) != 0 {
		t.Fatalf("expected present empty list to clear safety points, got %v", rec.SafetyPoints)
	}
	if rec.Product.Name() != "NOCO Boost Plus GB40" {
		t.Fatalf("expected product untouched, got %q", rec.Product.Name())
	}
}

func TestPresetTransformer_Errors(t *testing.T) {
	if _, err := orchestrator.NewPresetTransformerFromFS(nil, "preset.json"); err == nil {
		t.Fatalf("expected nil filesystem error")
	}
	if _, err := orchestrator.NewPresetTransformerFromFS(os.DirFS("testdata"), " "); err == nil {
		t.Fatalf("expected empty path error")
	}
	if _, err := orchestrator.NewPresetTransformerFromFS(os.DirFS("testdata"), "absent.json"); err == nil {
		t.Fatalf("expected read error")
	}

	doc := record.MustNewDocument(record.SourceFromFS("typo.json"), []byte(`{"prodcut": {}}`))
	if _, err := orchestrator.NewPresetTransformer(doc); err == nil {
		t.Fatalf("expected unrecognized key error")
	}

	transformer, err := orchestrator.NewPresetTransformer(record.MustNewDocument(record.SourceFromFS("ok.json"), []byte(`{}`)))
	if err != nil {
		t.Fatalf("new preset transformer: %v", err)
	}
	if err := transformer.Transform(context.Background(), nil); err == nil {
		t.Fatalf("expected nil record error")
	}
}
