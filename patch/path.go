package patch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/treepatch/internal/pathutil"
)

// AppendSegment is the final path segment that appends to a sequence.
const AppendSegment = "-"

// Path is an ordered list of decoded segments. The empty path addresses the
// whole value.
type Path []string

// ParsePointer decodes an RFC 6901 JSON Pointer ("~1" is "/", "~0" is "~").
func ParsePointer(pointer string) (Path, error) {
	segments, err := pathutil.Split(pointer)
	if err != nil {
		return nil, fmt.Errorf("patch: %w", err)
	}
	return Path(segments), nil
}

// MustParsePointer is like [ParsePointer] but panics on error.
// It is intended for literals in tests and examples.
func MustParsePointer(pointer string) Path {
	p, err := ParsePointer(pointer)
	if err != nil {
		panic(err)
	}
	return p
}

// Pointer encodes the path as a JSON Pointer.
func (p Path) Pointer() string {
	return pathutil.Join(p)
}

// String implements fmt.Stringer.
func (p Path) String() string {
	return p.Pointer()
}

// IsRoot reports whether the path addresses the whole value.
func (p Path) IsRoot() bool {
	return len(p) == 0
}

// Parent returns the path without its final segment.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1]
}

// Last returns the final segment, or "" for the root path.
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Equal reports whether p and other have the same segments.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the path as a JSON Pointer string.
func (p Path) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Pointer())
}

// UnmarshalJSON accepts a JSON Pointer string or an array of string and
// integer segments.
func (p *Path) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = nil
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := ParsePointer(s)
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw []any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("patch: path must be a pointer string or an array: %w", err)
	}
	segments := make(Path, len(raw))
	for i, r := range raw {
		switch v := r.(type) {
		case string:
			segments[i] = v
		case json.Number:
			n, err := v.Int64()
			if err != nil || n < 0 {
				return fmt.Errorf("patch: path segment %d: %q is not a non-negative integer", i, v)
			}
			segments[i] = strconv.FormatInt(n, 10)
		default:
			return fmt.Errorf("patch: path segment %d has unsupported type %T", i, r)
		}
	}
	*p = segments
	return nil
}

// MarshalYAML encodes the path as a JSON Pointer string.
func (p Path) MarshalYAML() (any, error) {
	return p.Pointer(), nil
}

// UnmarshalYAML accepts a JSON Pointer scalar or a sequence of scalars.
func (p *Path) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*p = nil
			return nil
		}
		parsed, err := ParsePointer(node.Value)
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	case yaml.SequenceNode:
		segments := make(Path, len(node.Content))
		for i, child := range node.Content {
			if child.Kind != yaml.ScalarNode {
				return fmt.Errorf("patch: line %d: path segment %d must be a scalar", child.Line, i)
			}
			segments[i] = child.Value
		}
		*p = segments
		return nil
	default:
		return fmt.Errorf("patch: line %d: path must be a pointer string or a sequence", node.Line)
	}
}
