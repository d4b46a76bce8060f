package jsonquery

// StepKind identifies which selector-step variant a Step holds.
type StepKind int

const (
	StepAny StepKind = iota
	StepKey
	StepIndex
	StepRange
	StepProperty
	StepFilter
	StepTruncate
	StepFlatten
)

func (k StepKind) String() string {
	switch k {
	case StepAny:
		return "Any"
	case StepKey:
		return "Key"
	case StepIndex:
		return "Index"
	case StepRange:
		return "Range"
	case StepProperty:
		return "Property"
	case StepFilter:
		return "Filter"
	case StepTruncate:
		return "Truncate"
	case StepFlatten:
		return "Flatten"
	default:
		return "Invalid"
	}
}

// Step is one operator within a Chain. Exactly the fields relevant to Kind
// are meaningful, mirroring the original implementation's closed selector
// hierarchy (AnyRootSelector, KeySelector, IndexSelector, RangeSelector,
// PropertySelector, FilterSelector, TruncateSelector, FlattenSelector)
// unified into a single tagged struct instead of a class hierarchy.
type Step struct {
	Kind StepKind

	Key   string   // StepKey, StepFilter
	Index int      // StepIndex
	Start *int     // StepRange, nil means omitted
	End   *int     // StepRange, nil means omitted
	Props []string // StepProperty
}

func (s Step) String() string {
	switch s.Kind {
	case StepKey:
		return "Key(" + s.Key + ")"
	case StepFilter:
		return "Filter(" + s.Key + ")"
	default:
		return s.Kind.String()
	}
}

// Chain is an ordered, non-empty sequence of selector steps sharing a
// single root.
type Chain struct {
	Steps []Step
}

// Program is an ordered, non-empty sequence of root chains: the top-level
// comma-separated list in the selector grammar.
type Program struct {
	Chains []Chain
}
