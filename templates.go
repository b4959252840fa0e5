package factpage

import (
	"io/fs"

	"github.com/goliatone/go-factpage/pkg/renderers/page"
)

// EmbeddedTemplates exposes the built-in page template so callers can copy
// and adapt it without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return page.TemplatesFS()
}
