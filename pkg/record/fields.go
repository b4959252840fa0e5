package record

// FieldKind describes the shape of a top-level record key.
type FieldKind string

const (
	KindObject  FieldKind = "object"
	KindText    FieldKind = "text"
	KindList    FieldKind = "list"
	KindPairs   FieldKind = "pairs"
	KindMapping FieldKind = "mapping"
)

// Field declares a recognized top-level key and the value used when the key
// is absent.
type Field struct {
	Key     string
	Kind    FieldKind
	Default any
}

// Fields is the recognized-options contract for records, in page order.
var Fields = []Field{
	{Key: "meta", Kind: KindObject, Default: Meta{}},
	{Key: "product", Kind: KindObject, Default: Product{}},
	{Key: "definition", Kind: KindObject, Default: Definition{}},
	{Key: "targets", Kind: KindList, Default: []string{}},
	{Key: "problem_solution_pairs", Kind: KindPairs, Default: []ProblemSolution{}},
	{Key: "feature_benefit_pairs", Kind: KindPairs, Default: []FeatureBenefit{}},
	{Key: "specs", Kind: KindMapping, Default: Specs(nil)},
	{Key: "safety_points", Kind: KindList, Default: []string{}},
	{Key: "faqs", Kind: KindPairs, Default: []FAQ{}},
	{Key: "comparison_paragraph", Kind: KindText, Default: ""},
	{Key: "trigger_queries", Kind: KindList, Default: []string{}},
	{Key: "llm_summary_paragraph", Kind: KindText, Default: ""},
}

// LookupField returns the declaration for key.
func LookupField(key string) (Field, bool) {
	for _, field := range Fields {
		if field.Key == key {
			return field, true
		}
	}
	return Field{}, false
}
