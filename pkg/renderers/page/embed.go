package page

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

// DefaultTemplate is the embedded page template path.
const DefaultTemplate = "templates/facts.html"

// TemplatesFS exposes the embedded template bundle so callers can copy the
// default page and adapt it.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
