package testsupport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-factpage/pkg/record"
)

// LoadRecord reads and parses a record fixture, failing the test on error.
func LoadRecord(t *testing.T, path string) record.Record {
	t.Helper()

	rec, err := LoadRecordFromPath(path)
	if err != nil {
		t.Fatalf("load record: %v", err)
	}
	return rec
}

// LoadRecordFromPath returns a Record without requiring testing.T, allowing
// callers to wire fixtures in setup functions.
func LoadRecordFromPath(path string) (record.Record, error) {
	if path == "" {
		return record.Record{}, errors.New("testsupport: record path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return record.Record{}, fmt.Errorf("testsupport: read record: %w", err)
	}
	doc, err := record.NewDocument(record.SourceFromFile(path), data)
	if err != nil {
		return record.Record{}, fmt.Errorf("testsupport: new document: %w", err)
	}
	return record.Parse(doc)
}

// MustParse parses an inline JSON record.
func MustParse(t *testing.T, payload string) record.Record {
	t.Helper()

	rec, err := record.ParseBytes([]byte(payload))
	if err != nil {
		t.Fatalf("parse record: %v", err)
	}
	return rec
}

// WriteFile writes data under dir, creating parent directories, and returns
// the full path.
func WriteFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// MinimalRecord is the smallest useful record: a name and an ASIN.
const MinimalRecord = `{"product": {"product_name": "GB40"}, "meta": {"asin": "X1"}}`
