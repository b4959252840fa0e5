package record

// Clone returns a deep copy of r. Slices, spec values and the presence
// bookkeeping are copied, so edits to the clone never reach r.
func (r Record) Clone() Record {
	out := r
	out.Targets = cloneSlice(r.Targets)
	out.ProblemSolutionPairs = cloneSlice(r.ProblemSolutionPairs)
	out.FeatureBenefitPairs = cloneSlice(r.FeatureBenefitPairs)
	out.SafetyPoints = cloneSlice(r.SafetyPoints)
	out.FAQs = cloneSlice(r.FAQs)
	out.TriggerQueries = cloneSlice(r.TriggerQueries)
	out.Specs = r.Specs.Clone()
	out.missing = cloneSlice(r.missing)
	out.unknown = cloneSlice(r.unknown)
	return out
}

// Clone returns a deep copy of s. A nil Specs stays nil so Present is kept.
func (s Specs) Clone() Specs {
	if s == nil {
		return nil
	}
	out := make(Specs, len(s))
	for i, spec := range s {
		out[i] = Spec{Name: spec.Name, Value: cloneValue(spec.Value)}
	}
	return out
}

// MarkPresent removes keys from the Missing list. Transformers call it
// after filling a key the source document left out.
func (r *Record) MarkPresent(keys ...string) {
	if len(keys) == 0 || len(r.missing) == 0 {
		return
	}
	drop := make(map[string]bool, len(keys))
	for _, key := range keys {
		drop[key] = true
	}
	kept := make([]string, 0, len(r.missing))
	for _, key := range r.missing {
		if !drop[key] {
			kept = append(kept, key)
		}
	}
	r.missing = kept
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	return append(make([]T, 0, len(in)), in...)
}

func cloneValue(v any) any {
	switch value := v.(type) {
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = cloneValue(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(value))
		for key, item := range value {
			out[key] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
