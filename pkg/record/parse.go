package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Parse decodes a Document into a Record. JSON is the primary format; YAML is
// used when the document location carries a .yaml/.yml extension. Absent keys
// keep their declared defaults and are reported through Record.Missing.
func Parse(doc Document) (Record, error) {
	raw := bytes.TrimSpace(doc.raw)
	if len(raw) == 0 {
		return Record{}, fmt.Errorf("%w: %s is empty", ErrMalformed, doc.Location())
	}

	var (
		rec  Record
		keys map[string]struct{}
		err  error
	)
	if doc.IsYAML() {
		rec, keys, err = parseYAML(raw)
	} else {
		rec, keys, err = parseJSON(raw)
	}
	if err != nil {
		return Record{}, fmt.Errorf("%w: %s: %v", ErrMalformed, doc.Location(), err)
	}

	rec.missing, rec.unknown = classifyKeys(keys)
	return rec, nil
}

// ParseBytes is a convenience wrapper for in-memory JSON payloads.
func ParseBytes(data []byte) (Record, error) {
	doc, err := NewDocument(SourceFromFS("inline.json"), data)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return Parse(doc)
}

func parseJSON(raw []byte) (Record, map[string]struct{}, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return Record{}, nil, err
	}
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Record{}, nil, err
	}
	return rec, keySet(top), nil
}

func parseYAML(raw []byte) (Record, map[string]struct{}, error) {
	var top map[string]any
	if err := yaml.Unmarshal(raw, &top); err != nil {
		return Record{}, nil, err
	}
	var rec Record
	if err := yaml.Unmarshal(raw, &rec); err != nil {
		return Record{}, nil, err
	}
	return rec, keySet(top), nil
}

func keySet[V any](m map[string]V) map[string]struct{} {
	out := make(map[string]struct{}, len(m))
	for key := range m {
		out[key] = struct{}{}
	}
	return out
}

func classifyKeys(keys map[string]struct{}) (missing, unknown []string) {
	for _, field := range Fields {
		if _, ok := keys[field.Key]; !ok {
			missing = append(missing, field.Key)
		}
	}
	for key := range keys {
		if _, ok := LookupField(key); !ok {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	return missing, unknown
}
