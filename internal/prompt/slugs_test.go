package prompt

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type fakeDriver struct {
	picked []int
	err    error
	asked  []SelectConfig
}

func (f *fakeDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	f.asked = append(f.asked, cfg)
	if f.err != nil {
		return 0, f.err
	}
	if len(f.picked) == 0 {
		return -1, nil
	}
	return f.picked[0], nil
}

func (f *fakeDriver) MultiSelect(ctx context.Context, cfg SelectConfig) ([]int, error) {
	f.asked = append(f.asked, cfg)
	return f.picked, f.err
}

func seedDataDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "archive.json"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	return dir
}

func TestListSlugs(t *testing.T) {
	dir := seedDataDir(t, "noco-gb70.json", "noco-gb40.json", "notes.txt")

	slugs, err := ListSlugs(dir)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if diff := cmp.Diff([]string{"noco-gb40", "noco-gb70"}, slugs); diff != "" {
		t.Fatalf("slugs mismatch (-want +got):\n%s", diff)
	}

	if _, err := ListSlugs(filepath.Join(dir, "missing")); err == nil {
		t.Fatalf("expected error for missing dir")
	}
}

func TestPickSlugs(t *testing.T) {
	dir := seedDataDir(t, "a.json", "b.json", "c.json")
	driver := &fakeDriver{picked: []int{2, 0, 9}}

	got, err := PickSlugs(context.Background(), driver, dir)
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if diff := cmp.Diff([]string{"c", "a"}, got); diff != "" {
		t.Fatalf("picked mismatch (-want +got):\n%s", diff)
	}
	if len(driver.asked) != 1 || len(driver.asked[0].Options) != 3 {
		t.Fatalf("expected one prompt over three options, got %+v", driver.asked)
	}
}

func TestPickSlugs_SingleRecordSkipsPrompt(t *testing.T) {
	dir := seedDataDir(t, "only.json")
	driver := &fakeDriver{}

	got, err := PickSlugs(context.Background(), driver, dir)
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if diff := cmp.Diff([]string{"only"}, got); diff != "" {
		t.Fatalf("picked mismatch (-want +got):\n%s", diff)
	}
	if len(driver.asked) != 0 {
		t.Fatalf("expected no prompt for a single record")
	}
}

func TestPickSlugs_Errors(t *testing.T) {
	if _, err := PickSlugs(context.Background(), nil, t.TempDir()); err == nil {
		t.Fatalf("expected error for nil driver")
	}
	if _, err := PickSlugs(context.Background(), &fakeDriver{}, seedDataDir(t)); !errors.Is(err, ErrNoRecords) {
		t.Fatalf("expected ErrNoRecords, got %v", err)
	}

	dir := seedDataDir(t, "a.json", "b.json")
	if _, err := PickSlugs(context.Background(), &fakeDriver{err: ErrAborted}, dir); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	if _, err := PickSlugs(context.Background(), &fakeDriver{picked: []int{}}, dir); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection for an empty pick, got %v", err)
	}
	if _, err := PickSlugs(context.Background(), &fakeDriver{picked: []int{5}}, dir); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection for out-of-range picks, got %v", err)
	}
}

func TestDriverHelpers(t *testing.T) {
	options := []string{"a", "b", "c"}
	if indexOf(options, "c") != 2 || indexOf(options, "z") != -1 {
		t.Fatalf("unexpected indexOf results")
	}
	if diff := cmp.Diff([]int{0, 2}, indicesOf(options, []string{"c", "a"})); diff != "" {
		t.Fatalf("indicesOf mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"b"}, valuesAt(options, []int{1, 7, -1})); diff != "" {
		t.Fatalf("valuesAt mismatch (-want +got):\n%s", diff)
	}
}
