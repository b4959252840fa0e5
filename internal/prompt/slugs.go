// Package prompt asks the operator which records to render when no slug is
// given on the command line.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoRecords reports an empty data directory.
var ErrNoRecords = errors.New("prompt: no records found")

// ErrNoSelection reports a picker that returned without any record chosen.
var ErrNoSelection = errors.New("prompt: no records selected")

// ListSlugs returns the slugs of every *.json record in dataDir, sorted.
func ListSlugs(dataDir string) ([]string, error) {
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("prompt: read %s: %w", dataDir, err)
	}
	var slugs []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		slugs = append(slugs, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(slugs)
	return slugs, nil
}

// PickSlugs lists the records in dataDir and lets the operator choose one or
// more of them.
func PickSlugs(ctx context.Context, driver Driver, dataDir string) ([]string, error) {
	if driver == nil {
		return nil, errors.New("prompt: driver is required")
	}
	slugs, err := ListSlugs(dataDir)
	if err != nil {
		return nil, err
	}
	if len(slugs) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoRecords, dataDir)
	}
	if len(slugs) == 1 {
		return slugs, nil
	}

	picked, err := driver.MultiSelect(ctx, SelectConfig{
		Message:  "Records to render",
		Options:  slugs,
		Defaults: []int{0},
		Help:     "Files found in " + dataDir,
		PageSize: 15,
	})
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(picked))
	for _, idx := range picked {
		if idx >= 0 && idx < len(slugs) {
			out = append(out, slugs[idx])
		}
	}
	if len(out) == 0 {
		return nil, ErrNoSelection
	}
	return out, nil
}
