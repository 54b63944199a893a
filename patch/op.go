package patch

// Op is a patch operation name.
type Op string

// Supported operations.
const (
	// OpAdd inserts a value, appends to a sequence, or adds a set element.
	OpAdd Op = "add"
	// OpRemove deletes a key, position, set element or character range.
	OpRemove Op = "remove"
	// OpReplace overwrites a key, position or character range.
	OpReplace Op = "replace"
	// OpMove relocates the value at From to Path.
	OpMove Op = "move"
)

// Ops lists every supported operation.
var Ops = []Op{OpAdd, OpRemove, OpReplace, OpMove}

// Valid reports whether o is a supported operation.
func (o Op) Valid() bool {
	switch o {
	case OpAdd, OpRemove, OpReplace, OpMove:
		return true
	}
	return false
}

// String returns the operation name.
func (o Op) String() string { return string(o) }
