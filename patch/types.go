package patch

import (
	"fmt"
	"strings"
)

// Patch is a single structural edit.
type Patch struct {
	// Op is the operation to perform.
	Op Op `yaml:"op" json:"op" validate:"required,oneof=add remove replace move"`

	// Path addresses the location to edit. For string edits the final
	// segment is the character index.
	Path Path `yaml:"path" json:"path"`

	// Value is the operand for add and replace, and the element to delete
	// for remove on a set.
	Value any `yaml:"value,omitempty" json:"value,omitempty"`

	// From is the source location of a move.
	From Path `yaml:"from,omitempty" json:"from,omitempty" validate:"required_if=Op move"`

	// Length is the number of characters removed or replaced by a string
	// edit. It defaults to 1.
	Length *int `yaml:"length,omitempty" json:"length,omitempty" validate:"omitempty,min=0"`
}

// Len returns the string edit length, defaulting to 1.
func (p Patch) Len() int {
	if p.Length == nil {
		return 1
	}
	return *p.Length
}

// String returns a compact human-readable form of the patch.
func (p Patch) String() string {
	var b strings.Builder
	b.WriteString(string(p.Op))
	b.WriteByte(' ')
	b.WriteString(quotePointer(p.Path))
	if p.Op == OpMove {
		b.WriteString(" from ")
		b.WriteString(quotePointer(p.From))
	}
	if p.Length != nil {
		fmt.Fprintf(&b, " length=%d", *p.Length)
	}
	return b.String()
}

func quotePointer(p Path) string {
	return fmt.Sprintf("%q", p.Pointer())
}

// Patches is an ordered list of patches.
type Patches []Patch

// Int returns a pointer to n, for populating [Patch.Length].
func Int(n int) *int {
	return &n
}
