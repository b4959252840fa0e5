// Package writer persists rendered pages under the output directory.
package writer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-factpage/internal/record/loader"
)

const (
	// DefaultOutputDir is where pages land when no directory is configured.
	DefaultOutputDir = "products"
	// Suffix is appended to the slug to form the output file name.
	Suffix = "-generated.html"
)

type Option func(*Writer)

// WithOutputDir sets the directory slug-derived paths resolve against.
func WithOutputDir(dir string) Option {
	return func(w *Writer) {
		if dir != "" {
			w.dir = dir
		}
	}
}

// WithAtomic writes to a temporary file in the target directory and renames
// it over the destination.
func WithAtomic(enabled bool) Option {
	return func(w *Writer) {
		w.atomic = enabled
	}
}

// WithFileMode overrides the permission bits of written files.
func WithFileMode(mode os.FileMode) Option {
	return func(w *Writer) {
		if mode != 0 {
			w.mode = mode
		}
	}
}

// Writer stores pages on disk, overwriting existing files.
type Writer struct {
	dir    string
	atomic bool
	mode   os.FileMode
}

// New constructs a Writer.
func New(options ...Option) *Writer {
	w := &Writer{dir: DefaultOutputDir, mode: 0o644}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	return w
}

// PathFor returns <dir>/<slug>-generated.html.
func (w *Writer) PathFor(slug string) string {
	return filepath.Join(w.dir, slug+Suffix)
}

// Write stores page under the slug-derived path and returns it. Slugs follow
// the loader's rules, so a page can never land outside the output directory.
func (w *Writer) Write(ctx context.Context, slug string, page []byte) (string, error) {
	if slug == "" {
		return "", errors.New("writer: slug is required")
	}
	if err := loader.ValidateSlug(slug); err != nil {
		return "", fmt.Errorf("writer: %w", err)
	}
	path := w.PathFor(slug)
	if err := w.WriteTo(ctx, path, page); err != nil {
		return "", err
	}
	return path, nil
}

// WriteTo stores page at an explicit path.
func (w *Writer) WriteTo(ctx context.Context, path string, page []byte) error {
	if path == "" {
		return errors.New("writer: path is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("writer: mkdir: %w", err)
	}
	if w.atomic {
		return w.writeAtomic(path, page)
	}
	if err := os.WriteFile(path, page, w.mode); err != nil {
		return fmt.Errorf("writer: write %s: %w", path, err)
	}
	return nil
}

func (w *Writer) writeAtomic(path string, page []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("writer: create temp: %w", err)
	}
	name := tmp.Name()
	cleanup := func() { _ = os.Remove(name) }

	if _, err := tmp.Write(page); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("writer: write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("writer: close %s: %w", name, err)
	}
	if err := os.Chmod(name, w.mode); err != nil {
		cleanup()
		return fmt.Errorf("writer: chmod %s: %w", name, err)
	}
	if err := os.Rename(name, path); err != nil {
		cleanup()
		return fmt.Errorf("writer: rename %s: %w", path, err)
	}
	return nil
}
