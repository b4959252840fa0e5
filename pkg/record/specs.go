package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Spec is a single named specification value. Value holds the decoded JSON
// value (string, float64, bool, []any, map[string]any or nil).
type Spec struct {
	Name  string
	Value any
}

// Text renders the value for display: strings verbatim, lists joined with
// ", ", everything else as compact JSON.
func (s Spec) Text() string {
	return specText(s.Value)
}

// Specs is the ordered specs mapping. A nil Specs means the key was absent;
// an empty non-nil Specs means it was present but empty.
type Specs []Spec

// Present reports whether the specs key appeared in the source.
func (s Specs) Present() bool {
	return s != nil
}

// Get returns the spec stored under name.
func (s Specs) Get(name string) (Spec, bool) {
	for _, spec := range s {
		if spec.Name == name {
			return spec, true
		}
	}
	return Spec{}, false
}

// Value returns the display text of the spec stored under name, or "".
func (s Specs) Value(name string) string {
	spec, ok := s.Get(name)
	if !ok {
		return ""
	}
	return spec.Text()
}

// UnmarshalJSON decodes an object while keeping key order.
func (s *Specs) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("record: specs must be an object")
	}

	out := Specs{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("record: specs key must be a string")
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("record: specs %q: %w", key, err)
		}
		out = out.set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = out
	return nil
}

// UnmarshalYAML decodes a mapping node while keeping key order.
func (s *Specs) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("record: specs must be a mapping (line %d)", node.Line)
	}

	out := Specs{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		var value any
		if err := node.Content[i+1].Decode(&value); err != nil {
			return fmt.Errorf("record: specs %q: %w", key, err)
		}
		out = out.set(key, value)
	}

	*s = out
	return nil
}

// set replaces an existing key in place, mirroring how a later duplicate
// key wins in a plain JSON object.
func (s Specs) set(name string, value any) Specs {
	for i := range s {
		if s[i].Name == name {
			s[i].Value = value
			return s
		}
	}
	return append(s, Spec{Name: name, Value: value})
}

// MarshalJSON encodes specs as an object in their stored order.
func (s Specs) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, spec := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(spec.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(spec.Value)
		if err != nil {
			return nil, fmt.Errorf("record: specs %q: %w", spec.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func specText(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, specText(item))
		}
		return strings.Join(parts, ", ")
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(raw)
	}
}
