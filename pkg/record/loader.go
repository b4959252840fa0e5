package record

import (
	"context"
	"io/fs"
	"net/http"
	"time"
)

// DefaultDataDir is where slug sources resolve when no directory is set.
const DefaultDataDir = "data"

// Loader fetches record documents from slugs, files, fs.FS entries or URLs.
// The implementation lives under internal/record/loader.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions configures how a Loader resolves sources.
type LoaderOptions struct {
	// DataDir is the directory slug sources resolve against.
	DataDir string

	// FileSystem enables SourceKindFS documents.
	FileSystem fs.FS

	// HTTPClient enables URL sources with a caller supplied client.
	HTTPClient *http.Client

	// AllowHTTPFallback enables URL sources with a default client when no
	// HTTPClient is supplied. Loading stays offline otherwise.
	AllowHTTPFallback bool

	// RequestTimeout caps remote fetch durations.
	RequestTimeout time.Duration
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithDataDir sets the directory slug sources resolve against.
func WithDataDir(dir string) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.DataDir = dir
	}
}

// WithFileSystem injects an fs.FS for SourceFromFS documents.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithHTTPClient injects a custom HTTP client for remote records.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
	}
}

// WithHTTPFallback enables HTTP loading with a default client and an
// optional timeout.
func WithHTTPFallback(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.AllowHTTPFallback = true
		opts.RequestTimeout = timeout
	}
}

// NewLoaderOptions applies the options over the defaults.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{DataDir: DefaultDataDir}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir
	}
	return cfg
}
