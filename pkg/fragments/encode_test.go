package fragments

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-factpage/pkg/record"
)

func TestParseEscapeMode(t *testing.T) {
	cases := map[string]EscapeMode{
		"":         EscapeRaw,
		"raw":      EscapeRaw,
		" ESCAPE ": EscapeHTML,
		"sanitize": EscapeSanitize,
	}
	for raw, want := range cases {
		got, err := ParseEscapeMode(raw)
		if err != nil {
			t.Fatalf("ParseEscapeMode(%q): %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParseEscapeMode(%q) = %q, want %q", raw, got, want)
		}
	}
	if _, err := ParseEscapeMode("markdown"); err == nil {
		t.Fatalf("expected unknown mode error")
	}
	if _, err := EncoderFor("markdown"); err == nil {
		t.Fatalf("expected unknown encoder error")
	}
}

func TestEncoders(t *testing.T) {
	value := `<b>Bold</b> & "quoted"<script>alert(1)</script>`

	raw, _ := EncoderFor(EscapeRaw)
	if raw(value) != value {
		t.Fatalf("expected raw encoder to keep the value verbatim")
	}

	escape, _ := EncoderFor(EscapeHTML)
	escaped := escape(value)
	if strings.ContainsAny(escaped, "<>\"") {
		t.Fatalf("expected markup to be escaped, got %q", escaped)
	}
	if !strings.HasPrefix(escaped, "&lt;b&gt;Bold&lt;/b&gt; &amp; &#34;quoted&#34;") {
		t.Fatalf("unexpected escaped value %q", escaped)
	}

	sanitize, _ := EncoderFor(EscapeSanitize)
	clean := sanitize(value)
	if strings.Contains(clean, "<script") || strings.Contains(clean, "alert(1)") {
		t.Fatalf("expected script to be stripped, got %q", clean)
	}
	if !strings.Contains(clean, "<b>Bold</b>") {
		t.Fatalf("expected basic formatting to survive, got %q", clean)
	}
	if sanitize("") != "" {
		t.Fatalf("expected empty value to stay empty")
	}
}

func TestUnsafeValues(t *testing.T) {
	rec := record.Record{
		Meta:    record.Meta{ASIN: "X1", AmazonURL: "https://example.com/?a=1&b=2"},
		Product: record.Product{ProductName: "Plain name"},
		Targets: []string{"ok", "<i>styled</i>"},
		FAQs: []record.FAQ{
			{Question: "Fine?", Answer: "Yes"},
			{Question: "Safe?", Answer: `Use "quotes"`},
		},
		Specs:               record.Specs{{Name: "in_box", Value: []any{"a", "<b>"}}, {Name: "weight", Value: "1 lb"}},
		ComparisonParagraph: "It's fine",
	}

	want := []Finding{
		{Field: "meta.amazon_url", Value: "https://example.com/?a=1&b=2"},
		{Field: "targets[1]", Value: "<i>styled</i>"},
		{Field: "specs.in_box", Value: "a, <b>"},
		{Field: "faqs[1].answer", Value: `Use "quotes"`},
	}
	if diff := cmp.Diff(want, UnsafeValues(rec)); diff != "" {
		t.Fatalf("findings mismatch (-want +got):\n%s", diff)
	}
	if got := UnsafeValues(record.Record{}); len(got) != 0 {
		t.Fatalf("expected no findings for empty record, got %v", got)
	}
}
