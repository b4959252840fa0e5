package loader

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-factpage/pkg/record"
)

// SlugPath resolves a slug to <dataDir>/<slug>.json.
func SlugPath(dataDir, slug string) (string, error) {
	if err := ValidateSlug(slug); err != nil {
		return "", err
	}
	if dataDir == "" {
		dataDir = record.DefaultDataDir
	}
	return filepath.Join(dataDir, slug+".json"), nil
}

// ValidateSlug rejects slugs that cannot name a single file.
func ValidateSlug(slug string) error {
	trimmed := strings.TrimSpace(slug)
	switch {
	case trimmed == "":
		return fmt.Errorf("%w: slug is empty", record.ErrInvalidSlug)
	case trimmed != slug:
		return fmt.Errorf("%w: %q has surrounding whitespace", record.ErrInvalidSlug, slug)
	case strings.ContainsAny(slug, `/\`), strings.Contains(slug, ".."):
		return fmt.Errorf("%w: %q", record.ErrInvalidSlug, slug)
	}
	return nil
}

func loadSlug(ctx context.Context, dataDir, slug string) ([]byte, string, error) {
	path, err := SlugPath(dataDir, slug)
	if err != nil {
		return nil, "", err
	}
	data, err := loadFile(ctx, path)
	return data, path, err
}
