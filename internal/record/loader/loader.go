package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/goliatone/go-factpage/pkg/record"
)

// Loader implements record.Loader by delegating to slug, file, fs.FS, or HTTP
// strategies.
type Loader struct {
	dataDir   string
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

var _ record.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options record.LoaderOptions) *Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	dataDir := options.DataDir
	if dataDir == "" {
		dataDir = record.DefaultDataDir
	}

	return &Loader{
		dataDir:   dataDir,
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches a document from the provided source. Slug sources come back
// with a file source pointing at the resolved path.
func (l *Loader) Load(ctx context.Context, src record.Source) (record.Document, error) {
	if src == nil {
		return record.Document{}, errors.New("record loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case record.SourceKindSlug:
		var path string
		data, path, err = loadSlug(ctx, l.dataDir, src.Location())
		if err == nil {
			src = record.SourceFromFile(path)
		}
	case record.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case record.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case record.SourceKindURL:
		if !l.allowHTTP {
			return record.Document{}, errors.New("record loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = errors.New("record loader: unsupported source kind")
	}
	if err != nil {
		return record.Document{}, err
	}

	if len(data) == 0 {
		return record.Document{}, fmt.Errorf("%w: %s is empty", record.ErrMalformed, src.Location())
	}
	return record.NewDocument(src, data)
}

// DataDir returns the directory slug sources resolve against.
func (l *Loader) DataDir() string {
	return l.dataDir
}
