package applier

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"

	"github.com/erraggy/treepatch/patch"
	"github.com/erraggy/treepatch/patcherrors"
	"github.com/erraggy/treepatch/tree"
)

// StringUnits selects how string edit indices and lengths are counted.
type StringUnits int

const (
	// RuneUnits counts Unicode code points.
	RuneUnits StringUnits = iota
	// UTF16Units counts UTF-16 code units, matching patches produced by
	// drafting systems whose strings are UTF-16. Splitting a surrogate pair
	// yields U+FFFD.
	UTF16Units
)

// String returns the unit name.
func (u StringUnits) String() string {
	switch u {
	case RuneUnits:
		return "runes"
	case UTF16Units:
		return "utf16"
	default:
		return fmt.Sprintf("StringUnits(%d)", int(u))
	}
}

// ApplyString applies a single character-range edit to s, counting in runes.
//
// The final path segment is the character index and Length (default 1) the
// number of characters removed or replaced. Indices past the end clamp to
// the end. Move patches leave s unchanged.
func ApplyString(s string, p patch.Patch) (string, error) {
	return spliceString(s, p, RuneUnits)
}

func spliceString(s string, p patch.Patch, units StringUnits) (string, error) {
	var insert string
	switch p.Op {
	case patch.OpAdd, patch.OpReplace:
		v, ok := p.Value.(string)
		if !ok {
			return "", &patcherrors.OperationError{
				Op:      string(p.Op),
				Kind:    tree.KindString.String(),
				Path:    p.Path.Pointer(),
				Message: fmt.Sprintf("value must be a string, got %T", p.Value),
			}
		}
		insert = v
	case patch.OpRemove:
	default:
		return s, nil
	}

	idx, err := tree.ParseIndex(p.Path.Last())
	if err != nil {
		return "", &patcherrors.PathError{
			Path:    p.Path.Pointer(),
			Message: "string edits need a character index",
			Cause:   err,
		}
	}
	length := max(p.Len(), 0)

	switch units {
	case UTF16Units:
		return spliceUTF16(s, p.Op, idx, length, insert)
	default:
		return spliceRunes(s, p.Op, idx, length, insert), nil
	}
}

func spliceRunes(s string, op patch.Op, idx, length int, insert string) string {
	r := []rune(s)
	idx = min(idx, len(r))
	end := idx + min(length, len(r)-idx)
	switch op {
	case patch.OpAdd:
		return string(r[:idx]) + insert + string(r[idx:])
	case patch.OpRemove:
		return string(r[:idx]) + string(r[end:])
	default:
		return string(r[:idx]) + insert + string(r[end:])
	}
}

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

func spliceUTF16(s string, op patch.Op, idx, length int, insert string) (string, error) {
	enc := utf16LE.NewEncoder()
	units, err := enc.Bytes([]byte(s))
	if err != nil {
		return "", fmt.Errorf("applier: encoding string as UTF-16: %w", err)
	}
	ins, err := enc.Bytes([]byte(insert))
	if err != nil {
		return "", fmt.Errorf("applier: encoding value as UTF-16: %w", err)
	}

	n := len(units) / 2
	idx = min(idx, n)
	end := idx + min(length, n-idx)

	out := make([]byte, 0, len(units)+len(ins))
	out = append(out, units[:idx*2]...)
	switch op {
	case patch.OpAdd:
		out = append(out, ins...)
		out = append(out, units[idx*2:]...)
	case patch.OpRemove:
		out = append(out, units[end*2:]...)
	default:
		out = append(out, ins...)
		out = append(out, units[end*2:]...)
	}

	decoded, err := utf16LE.NewDecoder().Bytes(out)
	if err != nil {
		return "", fmt.Errorf("applier: decoding UTF-16: %w", err)
	}
	return string(decoded), nil
}
