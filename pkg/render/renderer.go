package render

import (
	"context"

	"github.com/goliatone/go-factpage/pkg/record"
)

// Renderer converts a Record into a byte representation (HTML).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, rec record.Record, options RenderOptions) ([]byte, error)
}
