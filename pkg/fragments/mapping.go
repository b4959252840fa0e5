package fragments

import (
	"sort"
	"strings"

	"github.com/goliatone/go-factpage/pkg/record"
)

// Context is what fragment builders read: the record, the value encoder, and
// the resolved style tokens.
type Context struct {
	Record record.Record
	Encode Encoder
	Tokens map[string]string
}

func (c Context) encode(value string) string {
	if c.Encode == nil {
		return value
	}
	return c.Encode(value)
}

// Builder produces the fragment for one placeholder.
type Builder func(Context) string

// Mapping binds placeholder names (without braces) to builders.
type Mapping map[string]Builder

// Placeholder returns the literal marker for name, e.g. "{{title}}".
func Placeholder(name string) string {
	return "{{" + name + "}}"
}

// Clone returns a shallow copy that can be extended without touching m.
func (m Mapping) Clone() Mapping {
	out := make(Mapping, len(m))
	for name, builder := range m {
		out[name] = builder
	}
	return out
}

// With returns a copy of m with name bound to builder.
func (m Mapping) With(name string, builder Builder) Mapping {
	out := m.Clone()
	out[name] = builder
	return out
}

// Names lists the placeholder names in sorted order.
func (m Mapping) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Used lists the mapped placeholder names that occur in tmpl, sorted.
func (m Mapping) Used(tmpl string) []string {
	var used []string
	for _, name := range m.Names() {
		if strings.Contains(tmpl, Placeholder(name)) {
			used = append(used, name)
		}
	}
	return used
}

// Substitute replaces every mapped placeholder in tmpl with its fragment.
// Unmapped markers are left in place and substituted text is not rescanned.
func (m Mapping) Substitute(tmpl string, ctx Context) string {
	used := m.Used(tmpl)
	if len(used) == 0 {
		return tmpl
	}

	pairs := make([]string, 0, len(used)*2)
	for _, name := range used {
		builder := m[name]
		fragment := ""
		if builder != nil {
			fragment = builder(ctx)
		}
		pairs = append(pairs, Placeholder(name), fragment)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
