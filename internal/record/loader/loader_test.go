package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-factpage/pkg/record"
	"github.com/goliatone/go-factpage/pkg/testsupport"
)

func TestLoader_SlugResolvesUnderDataDir(t *testing.T) {
	dir := t.TempDir()
	path := testsupport.WriteFile(t, dir, "noco-gb40.json", []byte(testsupport.MinimalRecord))

	l := New(record.NewLoaderOptions(record.WithDataDir(dir)))
	doc, err := l.Load(context.Background(), record.SourceFromSlug("noco-gb40"))
	if err != nil {
		t.Fatalf("load slug: %v", err)
	}
	if doc.Source().Kind() != record.SourceKindFile {
		t.Fatalf("expected slug to resolve to a file source, got %s", doc.Source().Kind())
	}
	if doc.Location() != filepath.Clean(path) {
		t.Fatalf("expected location %q, got %q", path, doc.Location())
	}
	if string(doc.Raw()) != testsupport.MinimalRecord {
		t.Fatalf("unexpected payload %q", doc.Raw())
	}
}

func TestLoader_DefaultDataDir(t *testing.T) {
	l := New(record.LoaderOptions{})
	if l.DataDir() != record.DefaultDataDir {
		t.Fatalf("expected default data dir, got %q", l.DataDir())
	}

	path, err := SlugPath("", "noco-gb40")
	if err != nil {
		t.Fatalf("slug path: %v", err)
	}
	if path != filepath.Join("data", "noco-gb40.json") {
		t.Fatalf("unexpected path %q", path)
	}
}

func TestLoader_MissingFile(t *testing.T) {
	l := New(record.NewLoaderOptions(record.WithDataDir(t.TempDir())))

	_, err := l.Load(context.Background(), record.SourceFromSlug("absent"))
	if !errors.Is(err, record.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist in chain, got %v", err)
	}
}

func TestLoader_EmptyFileIsMalformed(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, dir, "empty.json", nil)

	l := New(record.NewLoaderOptions(record.WithDataDir(dir)))
	_, err := l.Load(context.Background(), record.SourceFromSlug("empty"))
	if !errors.Is(err, record.ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestValidateSlug(t *testing.T) {
	valid := []string{"noco-gb40", "gb40.v2", "A_1"}
	for _, slug := range valid {
		if err := ValidateSlug(slug); err != nil {
			t.Fatalf("expected %q to be valid, got %v", slug, err)
		}
	}

	invalid := []string{"", " ", " gb40", "../etc/passwd", "a/b", `a\b`, "gb40..json"}
	for _, slug := range invalid {
		if err := ValidateSlug(slug); !errors.Is(err, record.ErrInvalidSlug) {
			t.Fatalf("expected %q to be rejected, got %v", slug, err)
		}
	}
}

func TestLoader_RejectsInvalidSlug(t *testing.T) {
	l := New(record.NewLoaderOptions(record.WithDataDir(t.TempDir())))
	_, err := l.Load(context.Background(), record.SourceFromSlug("../outside"))
	if !errors.Is(err, record.ErrInvalidSlug) {
		t.Fatalf("expected ErrInvalidSlug, got %v", err)
	}
}

func TestLoader_FileAndFS(t *testing.T) {
	dir := t.TempDir()
	path := testsupport.WriteFile(t, dir, "nested/gb40.json", []byte(testsupport.MinimalRecord))

	files := fstest.MapFS{
		"records/gb40.json": {Data: []byte(testsupport.FullRecord)},
	}
	l := New(record.NewLoaderOptions(record.WithFileSystem(files)))

	doc, err := l.Load(context.Background(), record.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if doc.Source().Kind() != record.SourceKindFile {
		t.Fatalf("expected file source, got %s", doc.Source().Kind())
	}

	doc, err = l.Load(context.Background(), record.SourceFromFS("records/gb40.json"))
	if err != nil {
		t.Fatalf("load fs: %v", err)
	}
	if string(doc.Raw()) != testsupport.FullRecord {
		t.Fatalf("unexpected fs payload")
	}

	_, err = l.Load(context.Background(), record.SourceFromFS("records/missing.json"))
	if !errors.Is(err, record.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing fs entry, got %v", err)
	}
}

func TestLoader_HTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/gb40.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(testsupport.MinimalRecord))
		case "/broken.json":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	offline := New(record.NewLoaderOptions())
	if _, err := offline.Load(context.Background(), record.SourceFromURL(server.URL+"/gb40.json")); err == nil {
		t.Fatalf("expected http to be disabled by default")
	}

	l := New(record.NewLoaderOptions(record.WithHTTPClient(server.Client())))

	doc, err := l.Load(context.Background(), record.SourceFromURL(server.URL+"/gb40.json"))
	if err != nil {
		t.Fatalf("load url: %v", err)
	}
	rec, err := record.Parse(doc)
	if err != nil {
		t.Fatalf("parse url document: %v", err)
	}
	if rec.Meta.ASIN != "X1" {
		t.Fatalf("unexpected asin %q", rec.Meta.ASIN)
	}

	if _, err := l.Load(context.Background(), record.SourceFromURL(server.URL+"/missing.json")); !errors.Is(err, record.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for 404, got %v", err)
	}
	if _, err := l.Load(context.Background(), record.SourceFromURL(server.URL+"/broken.json")); err == nil {
		t.Fatalf("expected error for 500 response")
	}
}

func TestLoader_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, dir, "gb40.json", []byte(testsupport.MinimalRecord))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := New(record.NewLoaderOptions(record.WithDataDir(dir)))
	if _, err := l.Load(ctx, record.SourceFromSlug("gb40")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
