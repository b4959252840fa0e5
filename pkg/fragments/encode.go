package fragments

import (
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// EscapeMode selects how record values are encoded before interpolation.
type EscapeMode string

const (
	// EscapeRaw interpolates values verbatim. Values containing markup are
	// reported by UnsafeValues so callers can flag them.
	EscapeRaw EscapeMode = "raw"
	// EscapeHTML entity-escapes values.
	EscapeHTML EscapeMode = "escape"
	// EscapeSanitize strips unsafe markup and keeps basic formatting tags.
	EscapeSanitize EscapeMode = "sanitize"
)

// Encoder transforms a single record value before it is placed in markup.
type Encoder func(string) string

// ParseEscapeMode normalises a mode name. Empty selects EscapeRaw.
func ParseEscapeMode(raw string) (EscapeMode, error) {
	switch mode := EscapeMode(strings.ToLower(strings.TrimSpace(raw))); mode {
	case "":
		return EscapeRaw, nil
	case EscapeRaw, EscapeHTML, EscapeSanitize:
		return mode, nil
	default:
		return "", fmt.Errorf("fragments: unknown escape mode %q", raw)
	}
}

// EncoderFor returns the Encoder implementing mode.
func EncoderFor(mode EscapeMode) (Encoder, error) {
	switch mode {
	case "", EscapeRaw:
		return rawEncoder, nil
	case EscapeHTML:
		return html.EscapeString, nil
	case EscapeSanitize:
		return sanitizeValue, nil
	default:
		return nil, fmt.Errorf("fragments: unknown escape mode %q", mode)
	}
}

func rawEncoder(value string) string {
	return value
}

var (
	valuePolicyOnce sync.Once
	valuePolicy     *bluemonday.Policy
)

func sanitizeValue(raw string) string {
	if raw == "" {
		return ""
	}
	return valueSanitizer().Sanitize(raw)
}

func valueSanitizer() *bluemonday.Policy {
	valuePolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("b", "strong", "i", "em", "u", "br", "sup", "sub", "code")
		valuePolicy = policy
	})
	return valuePolicy
}
