package tree

// Kind identifies the container kind of a value.
type Kind int

const (
	// KindOther is any value that is neither a container nor a string.
	KindOther Kind = iota
	// KindRecord is a string-keyed record.
	KindRecord
	// KindSequence is an ordered, index-addressed sequence.
	KindSequence
	// KindMap is an associative map.
	KindMap
	// KindSet is a collection of unique elements.
	KindSet
	// KindString is a string, editable by character ranges.
	KindString
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindRecord:
		return "record"
	case KindSequence:
		return "sequence"
	case KindMap:
		return "map"
	case KindSet:
		return "set"
	case KindString:
		return "string"
	default:
		return "other"
	}
}

// IsContainer reports whether values of this kind implement [Container].
func (k Kind) IsContainer() bool {
	return k == KindRecord || k == KindSequence || k == KindMap || k == KindSet
}

// Classify returns the kind of v.
// Plain map[string]any and []any values classify as records and sequences
// even though they must be converted with [FromGo] before they can be edited.
func Classify(v any) Kind {
	switch val := v.(type) {
	case Container:
		return val.Kind()
	case string:
		return KindString
	case map[string]any:
		return KindRecord
	case []any:
		return KindSequence
	case map[any]any:
		return KindMap
	default:
		return KindOther
	}
}
