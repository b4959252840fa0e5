package fragments

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-factpage/pkg/record"
)

// Finding names a record value that contains HTML-significant characters.
type Finding struct {
	Field string
	Value string
}

const htmlSignificant = "<>&\""

// UnsafeValues walks every interpolated record value and reports the ones
// that would change the page markup if written verbatim. Field paths use the
// record keys, e.g. "faqs[2].answer" or "specs.in_box".
func UnsafeValues(rec record.Record) []Finding {
	var out []Finding
	check := func(field, value string) {
		if strings.ContainsAny(value, htmlSignificant) {
			out = append(out, Finding{Field: field, Value: value})
		}
	}
	list := func(key string, values []string) {
		for i, value := range values {
			check(indexed(key, i), value)
		}
	}

	check("meta.asin", rec.Meta.ASIN)
	check("meta.amazon_url", rec.Meta.AmazonURL)
	check("product.product_name", rec.Product.ProductName)
	check("product.title", rec.Product.Title)
	check("product.category", rec.Product.Category)
	check("product.brand", rec.Product.Brand)
	check("product.description", rec.Product.Description)
	check("definition.what_it_is_paragraph", rec.Definition.WhatItIs)
	list("targets", rec.Targets)
	for i, pair := range rec.ProblemSolutionPairs {
		check(indexed("problem_solution_pairs", i)+".problem", pair.Problem)
		check(indexed("problem_solution_pairs", i)+".solution", pair.Solution)
	}
	for i, pair := range rec.FeatureBenefitPairs {
		check(indexed("feature_benefit_pairs", i)+".feature", pair.Feature)
		check(indexed("feature_benefit_pairs", i)+".benefit", pair.Benefit)
	}
	for _, spec := range rec.Specs {
		check("specs."+spec.Name, spec.Text())
	}
	list("safety_points", rec.SafetyPoints)
	for i, faq := range rec.FAQs {
		check(indexed("faqs", i)+".question", faq.Question)
		check(indexed("faqs", i)+".answer", faq.Answer)
	}
	check("comparison_paragraph", rec.ComparisonParagraph)
	list("trigger_queries", rec.TriggerQueries)
	check("llm_summary_paragraph", rec.LLMSummaryParagraph)

	return out
}

func indexed(key string, i int) string {
	return key + "[" + strconv.Itoa(i) + "]"
}
