// Package audit reads a generated facts page back and summarises what it
// contains, so a published page can be checked without a browser.
package audit

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Summary describes the structure of a rendered page.
type Summary struct {
	Title          string
	Heading        string
	Sections       []string
	Targets        int
	ProblemRows    int
	FeatureRows    int
	SpecItems      int
	SafetyPoints   int
	FAQs           int
	TriggerQueries int
	AmazonURL      string
	HasLLMSummary  bool
	EmptySections  []string
}

// Section headings the embedded page template emits, in order.
const (
	SectionDefinition = "1. Product Definition"
	SectionAudience   = "2. Who This Product Is For"
	SectionProblems   = "3. Problems This Product Solves"
	SectionFeatures   = "4. Features → Benefits"
	SectionSpecs      = "5. Key Specifications"
	SectionSafety     = "6. Safety & Trustworthiness"
	SectionFAQs       = "7. Frequently Asked Questions"
	SectionComparison = "8. Comparison Context"
	SectionQueries    = "9. Relevant Search & AI Queries"
	SectionSummary    = "10. Summary for AI Models (LLM Ingest Block)"
)

// Read parses a page and summarises it.
func Read(r io.Reader) (Summary, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Summary{}, fmt.Errorf("audit: parse html: %w", err)
	}

	s := Summary{
		Title:     strings.TrimSpace(doc.Find("head title").First().Text()),
		Heading:   strings.TrimSpace(doc.Find("h1").First().Text()),
		AmazonURL: strings.TrimSpace(doc.Find("p.meta a").First().AttrOr("href", "")),
	}

	doc.Find("h2").Each(func(_ int, h *goquery.Selection) {
		title := strings.TrimSpace(h.Text())
		s.Sections = append(s.Sections, title)

		count := 0
		switch title {
		case SectionAudience:
			count = h.NextFiltered("ul").Find("li").Length()
			s.Targets = count
		case SectionProblems:
			count = h.NextFiltered("table").Find("tbody tr").Length()
			s.ProblemRows = count
		case SectionFeatures:
			count = h.NextFiltered("table").Find("tbody tr").Length()
			s.FeatureRows = count
		case SectionSpecs:
			count = h.NextFiltered("ul").Find("li").Length()
			s.SpecItems = count
		case SectionSafety:
			count = h.NextFiltered("ul").Find("li").Length()
			s.SafetyPoints = count
		case SectionFAQs:
			count = h.NextUntil("h2").Filter("h3").Length()
			s.FAQs = count
		case SectionQueries:
			count = h.NextFiltered("ul").Find("li").Length()
			s.TriggerQueries = count
		case SectionSummary:
			text := strings.TrimSpace(h.NextFiltered("p").Text())
			s.HasLLMSummary = text != ""
			if s.HasLLMSummary {
				count = 1
			}
		default:
			text := strings.TrimSpace(h.NextFiltered("p").Text())
			if text != "" {
				count = 1
			}
		}
		if count == 0 {
			s.EmptySections = append(s.EmptySections, title)
		}
	})

	return s, nil
}

// ReadString is a convenience wrapper around Read.
func ReadString(html string) (Summary, error) {
	return Read(strings.NewReader(html))
}
