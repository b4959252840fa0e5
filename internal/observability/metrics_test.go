package observability

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_RecordAndWrite(t *testing.T) {
	m := NewMetrics()
	m.Rendered("page", 4096, 2)
	m.Rendered("template", 512, 0)
	m.Failed("load")

	if got := testutil.ToFloat64(m.PagesRendered.WithLabelValues("page")); got != 1 {
		t.Fatalf("expected 1 page render, got %v", got)
	}
	if got := testutil.ToFloat64(m.UnsafeValues); got != 2 {
		t.Fatalf("expected 2 unsafe values, got %v", got)
	}
	if got := testutil.ToFloat64(m.RenderFailures.WithLabelValues("load")); got != 1 {
		t.Fatalf("expected 1 load failure, got %v", got)
	}

	path := filepath.Join(t.TempDir(), "factpage.prom")
	if err := m.WriteTextfile(path); err != nil {
		t.Fatalf("write textfile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	for _, want := range []string{
		`factpage_pages_rendered_total{renderer="template"} 1`,
		`factpage_render_failures_total{stage="load"} 1`,
		"factpage_render_bytes_count 2",
	} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("expected %q in textfile:\n%s", want, data)
		}
	}
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.Rendered("page", 1, 1)
	m.Failed("render")
	if err := m.WriteTextfile("ignored"); err != nil {
		t.Fatalf("expected nil metrics to skip writing, got %v", err)
	}
	if err := NewMetrics().WriteTextfile(""); err != nil {
		t.Fatalf("expected empty path to skip writing, got %v", err)
	}
}
