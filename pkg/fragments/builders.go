package fragments

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/goliatone/go-factpage/pkg/record"
)

// Placeholder names used by the embedded page template.
const (
	ProductName    = "product_name"
	Category       = "category"
	Brand          = "brand"
	ASIN           = "asin"
	AmazonURL      = "amazon_url"
	Definition     = "definition"
	Targets        = "targets"
	ProblemRows    = "problem_rows"
	FeatureRows    = "feature_rows"
	SpecItems      = "spec_items"
	SafetyPoints   = "safety_points"
	FAQBlocks      = "faq_blocks"
	Comparison     = "comparison"
	TriggerQueries = "trigger_queries"
	Summary        = "summary"
	Styles         = "styles"
)

// Placeholder names used by hand-written external templates.
const (
	Title             = "title"
	Description       = "description"
	FeatureBenefits   = "feature_benefits"
	ProblemsSolutions = "problems_solutions"
	SpecsJSON         = "specs"
	FAQs              = "faqs"
)

// KnownSpecs are rendered first, in this order, with these labels. Any other
// spec keys follow in source order.
var KnownSpecs = []struct {
	Key   string
	Label string
}{
	{"material", "Material"},
	{"dimensions", "Dimensions"},
	{"capacity", "Capacity"},
	{"weight", "Weight"},
	{"certifications", "Certifications"},
	{"warranty", "Warranty"},
	{"in_box", "Included in box"},
}

// Default returns the full field-to-fragment mapping.
func Default() Mapping {
	return Mapping{
		ProductName: text(func(r record.Record) string { return r.Product.Name() }),
		Category:    text(func(r record.Record) string { return r.Product.Category }),
		Brand:       text(func(r record.Record) string { return r.Product.Brand }),
		ASIN:        text(func(r record.Record) string { return r.Meta.ASIN }),
		AmazonURL:   text(func(r record.Record) string { return r.Meta.AmazonURL }),
		Definition:  text(func(r record.Record) string { return r.Definition.WhatItIs }),
		Comparison:  text(func(r record.Record) string { return r.ComparisonParagraph }),
		Summary:     text(func(r record.Record) string { return r.LLMSummaryParagraph }),
		Title:       text(func(r record.Record) string { return r.Product.HeadLine() }),
		Description: text(func(r record.Record) string { return r.Product.Description }),

		Targets:        listItems(func(r record.Record) []string { return r.Targets }),
		SafetyPoints:   listItems(func(r record.Record) []string { return r.SafetyPoints }),
		TriggerQueries: listItems(func(r record.Record) []string { return r.TriggerQueries }),

		ProblemRows:       problemRows,
		FeatureRows:       featureRows,
		SpecItems:         specItems,
		FAQBlocks:         faqBlocks,
		FeatureBenefits:   featureBenefitItems,
		ProblemsSolutions: problemSolutionItems,
		SpecsJSON:         specsJSON,
		FAQs:              faqItems,
		Styles:            styles,
	}
}

func text(field func(record.Record) string) Builder {
	return func(ctx Context) string {
		return ctx.encode(field(ctx.Record))
	}
}

func listItems(field func(record.Record) []string) Builder {
	return func(ctx Context) string {
		values := field(ctx.Record)
		lines := make([]string, 0, len(values))
		for _, value := range values {
			lines = append(lines, "    <li>"+ctx.encode(value)+"</li>")
		}
		return strings.Join(lines, "\n")
	}
}

func tableRow(left, right string) string {
	return "      <tr>\n" +
		"        <td>" + left + "</td>\n" +
		"        <td>" + right + "</td>\n" +
		"      </tr>"
}

func problemRows(ctx Context) string {
	rows := make([]string, 0, len(ctx.Record.ProblemSolutionPairs))
	for _, pair := range ctx.Record.ProblemSolutionPairs {
		rows = append(rows, tableRow(ctx.encode(pair.Problem), ctx.encode(pair.Solution)))
	}
	return strings.Join(rows, "\n")
}

func featureRows(ctx Context) string {
	rows := make([]string, 0, len(ctx.Record.FeatureBenefitPairs))
	for _, pair := range ctx.Record.FeatureBenefitPairs {
		rows = append(rows, tableRow(ctx.encode(pair.Feature), ctx.encode(pair.Benefit)))
	}
	return strings.Join(rows, "\n")
}

func specItems(ctx Context) string {
	specs := ctx.Record.Specs
	if !specs.Present() {
		return ""
	}

	known := make(map[string]struct{}, len(KnownSpecs))
	lines := make([]string, 0, len(KnownSpecs)+len(specs))
	for _, spec := range KnownSpecs {
		known[spec.Key] = struct{}{}
		lines = append(lines, specItem(spec.Label, ctx.encode(specs.Value(spec.Key))))
	}
	for _, spec := range specs {
		if _, ok := known[spec.Name]; ok {
			continue
		}
		lines = append(lines, specItem(SpecLabel(spec.Name), ctx.encode(spec.Text())))
	}
	return strings.Join(lines, "\n")
}

func specItem(label, value string) string {
	return "    <li><strong>" + label + ":</strong> " + value + "</li>"
}

// SpecLabel turns a spec key such as "battery_type" into "Battery type".
func SpecLabel(key string) string {
	for _, spec := range KnownSpecs {
		if spec.Key == key {
			return spec.Label
		}
	}
	label := strings.TrimSpace(strings.ReplaceAll(key, "_", " "))
	if label == "" {
		return key
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

func faqBlocks(ctx Context) string {
	blocks := make([]string, 0, len(ctx.Record.FAQs))
	for _, faq := range ctx.Record.FAQs {
		blocks = append(blocks,
			"  <h3>Q: "+ctx.encode(faq.Question)+"</h3>\n"+
				"  <p>A: "+ctx.encode(faq.Answer)+"</p>\n")
	}
	return strings.Join(blocks, "\n")
}

func featureBenefitItems(ctx Context) string {
	var b strings.Builder
	for _, pair := range ctx.Record.FeatureBenefitPairs {
		b.WriteString("<li><strong>" + ctx.encode(pair.Feature) + ":</strong> " + ctx.encode(pair.Benefit) + "</li>")
	}
	return b.String()
}

func problemSolutionItems(ctx Context) string {
	var b strings.Builder
	for _, pair := range ctx.Record.ProblemSolutionPairs {
		b.WriteString("<li><em>" + ctx.encode(pair.Problem) + "</em> → " + ctx.encode(pair.Solution) + "</li>")
	}
	return b.String()
}

func faqItems(ctx Context) string {
	var b strings.Builder
	for _, faq := range ctx.Record.FAQs {
		b.WriteString("<li><strong>" + ctx.encode(faq.Question) + "</strong><br>" + ctx.encode(faq.Answer) + "</li>")
	}
	return b.String()
}

// specsJSON renders specs as an indented JSON object in source order.
func specsJSON(ctx Context) string {
	specs := ctx.Record.Specs
	if len(specs) == 0 {
		return ctx.encode("{}")
	}

	lines := make([]string, 0, len(specs)+2)
	lines = append(lines, "{")
	for i, spec := range specs {
		line := "    " + jsonText(spec.Name, "") + ": " + jsonText(spec.Value, "    ")
		if i < len(specs)-1 {
			line += ","
		}
		lines = append(lines, line)
	}
	lines = append(lines, "}")
	return ctx.encode(strings.Join(lines, "\n"))
}

func jsonText(value any, prefix string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent(prefix, "    ")
	if err := enc.Encode(value); err != nil {
		return "null"
	}
	return strings.TrimRight(buf.String(), "\n")
}
