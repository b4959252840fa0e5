package themes

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-factpage/pkg/fragments"
)

// DefaultTheme is the theme used when nothing else is configured.
const DefaultTheme = "aico"

// AICOManifest is the built-in light look with an optional dark variant.
func AICOManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    DefaultTheme,
		Version: "1.0.0",
		Tokens:  fragments.DefaultTokens(),
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					fragments.TokenText:       "#e6e6e6",
					fragments.TokenBackground: "#121212",
					fragments.TokenRule:       "#333",
					fragments.TokenBorder:     "#444",
					fragments.TokenHeaderBg:   "#1e1e1e",
					fragments.TokenMeta:       "#bbb",
					fragments.TokenNote:       "#999",
					fragments.TokenLink:       "#8ab4f8",
				},
			},
		},
	}
}

// Default returns a catalog holding the built-in themes.
func Default() *Catalog {
	catalog := NewCatalog(DefaultTheme, "")
	if err := catalog.Register(AICOManifest()); err != nil {
		panic(err)
	}
	return catalog
}
