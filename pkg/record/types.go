package record

// Record is the decoded product document. Zero values are the declared
// defaults, so every accessor is safe on a partially populated record.
type Record struct {
	Meta                 Meta              `json:"meta" yaml:"meta"`
	Product              Product           `json:"product" yaml:"product"`
	Definition           Definition        `json:"definition" yaml:"definition"`
	Targets              []string          `json:"targets" yaml:"targets"`
	ProblemSolutionPairs []ProblemSolution `json:"problem_solution_pairs" yaml:"problem_solution_pairs"`
	FeatureBenefitPairs  []FeatureBenefit  `json:"feature_benefit_pairs" yaml:"feature_benefit_pairs"`
	Specs                Specs             `json:"specs" yaml:"specs"`
	SafetyPoints         []string          `json:"safety_points" yaml:"safety_points"`
	FAQs                 []FAQ             `json:"faqs" yaml:"faqs"`
	ComparisonParagraph  string            `json:"comparison_paragraph" yaml:"comparison_paragraph"`
	TriggerQueries       []string          `json:"trigger_queries" yaml:"trigger_queries"`
	LLMSummaryParagraph  string            `json:"llm_summary_paragraph" yaml:"llm_summary_paragraph"`

	missing []string
	unknown []string
}

// Meta carries marketplace identifiers.
type Meta struct {
	ASIN      string `json:"asin" yaml:"asin"`
	AmazonURL string `json:"amazon_url" yaml:"amazon_url"`
}

// Product describes the item itself. ProductName and Title are aliases seen
// in different record generations; use Name or HeadLine to read them.
type Product struct {
	ProductName string `json:"product_name" yaml:"product_name"`
	Title       string `json:"title" yaml:"title"`
	Category    string `json:"category" yaml:"category"`
	Brand       string `json:"brand" yaml:"brand"`
	Description string `json:"description" yaml:"description"`
}

// Name returns product_name, falling back to title.
func (p Product) Name() string {
	if p.ProductName != "" {
		return p.ProductName
	}
	return p.Title
}

// HeadLine returns title, falling back to product_name.
func (p Product) HeadLine() string {
	if p.Title != "" {
		return p.Title
	}
	return p.ProductName
}

// Definition holds the "what it is" paragraph.
type Definition struct {
	WhatItIs string `json:"what_it_is_paragraph" yaml:"what_it_is_paragraph"`
}

// ProblemSolution pairs a pain point with how the product addresses it.
type ProblemSolution struct {
	Problem  string `json:"problem" yaml:"problem"`
	Solution string `json:"solution" yaml:"solution"`
}

// FeatureBenefit pairs a product feature with the user benefit.
type FeatureBenefit struct {
	Feature string `json:"feature" yaml:"feature"`
	Benefit string `json:"benefit" yaml:"benefit"`
}

// FAQ is a question/answer pair.
type FAQ struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// Missing lists the declared top-level keys absent from the source document,
// in declaration order.
func (r Record) Missing() []string {
	return append([]string(nil), r.missing...)
}

// Unknown lists top-level keys that are not declared in Fields, sorted.
func (r Record) Unknown() []string {
	return append([]string(nil), r.unknown...)
}
