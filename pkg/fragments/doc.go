// Package fragments maps record fields to HTML fragments and substitutes them
// into templates. A Mapping names every placeholder a template may use and
// the builder that produces its fragment; renderers differ only in the
// template they feed through the same mapping.
package fragments
