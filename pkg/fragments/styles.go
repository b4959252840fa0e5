package fragments

import "strings"

// Style token names read by the styles fragment.
const (
	TokenFontFamily  = "font_family"
	TokenMaxWidth    = "max_width"
	TokenText        = "text"
	TokenBackground  = "background"
	TokenRule        = "rule"
	TokenBorder      = "border"
	TokenHeaderBg    = "header_bg"
	TokenMeta        = "meta"
	TokenNote        = "note"
	TokenLink        = "link"
	TokenHeadingSize = "heading_size"
)

// DefaultTokens are the values used for any token a theme leaves unset.
func DefaultTokens() map[string]string {
	return map[string]string{
		TokenFontFamily:  `system-ui, -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif`,
		TokenMaxWidth:    "840px",
		TokenText:        "#222",
		TokenRule:        "#eee",
		TokenBorder:      "#ddd",
		TokenHeaderBg:    "#f7f7f7",
		TokenMeta:        "#444",
		TokenNote:        "#777",
		TokenHeadingSize: "2rem",
	}
}

func token(ctx Context, name string) string {
	if value, ok := ctx.Tokens[name]; ok && value != "" {
		return value
	}
	return DefaultTokens()[name]
}

func styles(ctx Context) string {
	body := []string{
		"    body {",
		"      font-family: " + token(ctx, TokenFontFamily) + ";",
		"      max-width: " + token(ctx, TokenMaxWidth) + ";",
		"      margin: 0 auto;",
		"      padding: 2rem 1.5rem 4rem;",
		"      line-height: 1.6;",
		"      color: " + token(ctx, TokenText) + ";",
	}
	if bg := token(ctx, TokenBackground); bg != "" {
		body = append(body, "      background: "+bg+";")
	}
	body = append(body, "    }")

	rules := []string{
		"    h1 { font-size: " + token(ctx, TokenHeadingSize) + "; margin-bottom: 0.4rem; }",
		"    h2 { font-size: 1.4rem; margin-top: 2rem; border-top: 1px solid " + token(ctx, TokenRule) + "; padding-top: 1rem; }",
		"    h3 { font-size: 1.1rem; margin-top: 1.2rem; }",
		"    table { width:100%; border-collapse: collapse; margin-top: 0.75rem; }",
		"    th, td { border: 1px solid " + token(ctx, TokenBorder) + "; padding: 0.55rem; vertical-align: top; text-align: left; }",
		"    th { background:" + token(ctx, TokenHeaderBg) + "; }",
		"    .meta { color:" + token(ctx, TokenMeta) + "; margin-bottom: 1rem; font-size: 0.9rem; }",
		"    ul { margin-top: 0.5rem; }",
		"    .section-note { font-size: 0.83rem; color:" + token(ctx, TokenNote) + "; margin-top: 0.25rem; }",
	}
	if link := token(ctx, TokenLink); link != "" {
		rules = append(rules, "    a { color:"+link+"; }")
	}

	return strings.Join(append(body, rules...), "\n")
}
