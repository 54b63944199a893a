package tree

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported is returned when a container lacks a capability.
	ErrUnsupported = errors.New("tree: operation not supported by container")

	// ErrIndexOutOfRange is returned for positions outside a sequence or set.
	ErrIndexOutOfRange = errors.New("tree: index out of range")

	// ErrInvalidIndex is returned when a segment is not a non-negative integer.
	ErrInvalidIndex = errors.New("tree: invalid index")

	// ErrDuplicate is returned when a set would hold two equal elements.
	ErrDuplicate = errors.New("tree: duplicate set element")
)

// Container is the capability set shared by every addressable container.
//
// Keys are path segments. Records and maps use them as keys; sequences and
// sets parse them as 0-based positions. Implementations must be comparable
// (in practice, pointer types) because drafts track them by identity.
type Container interface {
	// Kind reports the container kind.
	Kind() Kind

	// Len returns the number of entries.
	Len() int

	// Get returns the value at key.
	Get(key string) (any, bool)

	// Has reports whether key addresses an existing entry.
	Has(key string) bool

	// Set writes v at key. Sequences require an existing index.
	Set(key string, v any) error

	// Delete removes the entry at key. Missing keys are not an error
	// for records and maps.
	Delete(key string) error

	// InsertAt inserts v before position i (0 <= i <= Len).
	InsertAt(i int, v any) error

	// RemoveAt removes the entry at position i.
	RemoveAt(i int) error

	// Append adds v at the end.
	Append(v any) error

	// ShallowCopy returns a new container holding the same entries.
	ShallowCopy() Container

	// Range calls fn for each entry in iteration order until fn returns false.
	Range(fn func(key string, v any) bool)
}

const maxIndexDigits = 18

// ParseIndex parses a sequence position segment.
func ParseIndex(segment string) (int, error) {
	if segment == "" {
		return 0, fmt.Errorf("%w: empty segment", ErrInvalidIndex)
	}
	if len(segment) > maxIndexDigits {
		return 0, fmt.Errorf("%w: %q overflows", ErrInvalidIndex, segment)
	}
	n := 0
	for i := 0; i < len(segment); i++ {
		c := segment[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidIndex, segment)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}

func unsupported(k Kind, op string) error {
	return fmt.Errorf("%w: %s on %s", ErrUnsupported, op, k)
}

func outOfRange(i, n int) error {
	return fmt.Errorf("%w: %d (length %d)", ErrIndexOutOfRange, i, n)
}
