// Package inspect prints a quick human-readable digest of a record, enough to
// confirm a data file has the expected structure before rendering it.
package inspect

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-factpage/pkg/record"
)

// DefaultPairLimit caps how many problem and feature pairs are printed.
const DefaultPairLimit = 2

var headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

// Options tune the digest.
type Options struct {
	// PairLimit caps the problem/solution and feature/benefit pairs shown.
	// Zero uses DefaultPairLimit; negative shows all.
	PairLimit int
}

// Print writes the digest of rec to w.
func Print(w io.Writer, rec record.Record, opts Options) error {
	limit := opts.PairLimit
	if limit == 0 {
		limit = DefaultPairLimit
	}

	p := &printer{w: w}

	p.heading("META")
	p.linef("ASIN: %s", rec.Meta.ASIN)
	p.linef("Amazon URL: %s", rec.Meta.AmazonURL)
	p.line("")

	p.heading("PRODUCT")
	p.linef("Name: %s", rec.Product.Name())
	p.linef("Category: %s", rec.Product.Category)
	p.linef("Brand: %s", rec.Product.Brand)
	p.line("")

	p.heading("DEFINITION")
	p.line(rec.Definition.WhatItIs)
	p.line("")

	p.heading("TARGETS (who it's for)")
	for _, target := range rec.Targets {
		p.linef("- %s", target)
	}
	p.line("")

	p.heading(fmt.Sprintf("PROBLEMS → SOLUTIONS (%s)", limitLabel(limit)))
	for _, pair := range firstN(rec.ProblemSolutionPairs, limit) {
		p.linef("- Problem: %s", pair.Problem)
		p.linef("  Solution: %s", pair.Solution)
		p.line("")
	}

	p.heading(fmt.Sprintf("FEATURES → BENEFITS (%s)", limitLabel(limit)))
	for _, pair := range firstN(rec.FeatureBenefitPairs, limit) {
		p.linef("- Feature: %s", pair.Feature)
		p.linef("  Benefit: %s", pair.Benefit)
		p.line("")
	}

	if missing := rec.Missing(); len(missing) > 0 {
		p.heading("DEFAULTED")
		for _, key := range missing {
			p.linef("- %s", key)
		}
	}

	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) heading(title string) {
	p.line(headingStyle.Render("=== " + title + " ==="))
}

func (p *printer) linef(format string, args ...any) {
	p.line(fmt.Sprintf(format, args...))
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}

func limitLabel(limit int) string {
	if limit < 0 {
		return "all"
	}
	return fmt.Sprintf("first %d", limit)
}

func firstN[T any](items []T, n int) []T {
	if n < 0 || n >= len(items) {
		return items
	}
	return items[:n]
}
