package factpage

import (
	internalLoader "github.com/goliatone/go-factpage/internal/record/loader"
	"github.com/goliatone/go-factpage/pkg/record"
)

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...record.LoaderOption) record.Loader {
	cfg := record.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}
