package render

import (
	"github.com/goliatone/go-factpage/pkg/fragments"
	"github.com/goliatone/go-factpage/pkg/record"
	"github.com/goliatone/go-factpage/pkg/themes"
)

// RenderOptions describe per-request settings renderers apply without
// touching the record.
type RenderOptions struct {
	// Escape selects how record values are encoded. The zero value writes
	// values verbatim.
	Escape fragments.EscapeMode
	// Theme carries the resolved style tokens. Nil renders the default look.
	Theme *themes.Resolved
}

// FragmentContext builds the fragments.Context for rec under these options.
func (o RenderOptions) FragmentContext(rec record.Record) (fragments.Context, error) {
	encode, err := fragments.EncoderFor(o.Escape)
	if err != nil {
		return fragments.Context{}, err
	}
	ctx := fragments.Context{Record: rec, Encode: encode}
	if o.Theme != nil {
		ctx.Tokens = o.Theme.Tokens
	}
	return ctx, nil
}
