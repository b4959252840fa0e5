package record_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-factpage/pkg/record"
	"github.com/goliatone/go-factpage/pkg/testsupport"
)

func TestRecord_CloneIsDeep(t *testing.T) {
	original := testsupport.MustParse(t, testsupport.FullRecord)
	clone := original.Clone()

	if diff := cmp.Diff(original, clone, cmpopts.IgnoreUnexported(record.Record{})); diff != "" {
		t.Fatalf("clone differs (-original +clone):\n%s", diff)
	}
	if diff := cmp.Diff(original.Missing(), clone.Missing()); diff != "" {
		t.Fatalf("missing differs (-original +clone):\n%s", diff)
	}
	if diff := cmp.Diff(original.Unknown(), clone.Unknown()); diff != "" {
		t.Fatalf("unknown differs (-original +clone):\n%s", diff)
	}

	clone.Targets[0] = "PATCHED"
	clone.ProblemSolutionPairs[0].Problem = "PATCHED"
	clone.FeatureBenefitPairs[0].Benefit = "PATCHED"
	clone.SafetyPoints[0] = "PATCHED"
	clone.FAQs[0].Answer = "PATCHED"
	clone.TriggerQueries[0] = "PATCHED"
	clone.Specs[0].Value = "PATCHED"
	inBox, ok := clone.Specs.Get("in_box")
	if !ok {
		t.Fatalf("expected in_box spec")
	}
	inBox.Value.([]any)[0] = "PATCHED"

	if original.Targets[0] != "Commuters" ||
		original.ProblemSolutionPairs[0].Problem != "Dead battery in the cold" ||
		original.FeatureBenefitPairs[0].Benefit != "Starts gas engines up to 6 liters" ||
		original.SafetyPoints[0] != "Reverse polarity protection" ||
		original.FAQs[0].Answer != "Yes, via USB." ||
		original.TriggerQueries[0] != "best jump starter" {
		t.Fatalf("clone writes leaked into the original: %+v", original)
	}
	if got := original.Specs.Value("material"); got != "ABS housing" {
		t.Fatalf("spec value leaked: %q", got)
	}
	if got := original.Specs.Value("in_box"); got != "GB40, Clamps, USB cable" {
		t.Fatalf("nested spec list leaked: %q", got)
	}
}

func TestRecord_CloneKeepsSpecPresence(t *testing.T) {
	absent := testsupport.MustParse(t, `{}`).Clone()
	if absent.Specs.Present() {
		t.Fatalf("expected absent specs to stay absent")
	}
	empty := testsupport.MustParse(t, `{"specs": {}}`).Clone()
	if !empty.Specs.Present() {
		t.Fatalf("expected empty specs to stay present")
	}
}

func TestRecord_MarkPresent(t *testing.T) {
	rec := testsupport.MustParse(t, testsupport.MinimalRecord)
	rec.MarkPresent("targets", "specs", "not_a_key")

	for _, key := range rec.Missing() {
		if key == "targets" || key == "specs" {
			t.Fatalf("expected %s to be marked present, missing=%v", key, rec.Missing())
		}
	}
	if len(rec.Missing()) != 8 {
		t.Fatalf("expected 8 missing keys, got %v", rec.Missing())
	}
}
