package tree

import (
	"cmp"
	"fmt"
	"slices"
)

// Clone returns a deep copy of v that preserves container types.
// Scalars and values of unknown types (including funcs) are returned as-is.
func Clone(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case *Record:
		cp := &Record{fields: make(map[string]any, len(val.fields))}
		for k, fv := range val.fields {
			cp.fields[k] = Clone(fv)
		}
		return cp
	case *List:
		cp := &List{items: make([]any, len(val.items))}
		for i, item := range val.items {
			cp.items[i] = Clone(item)
		}
		return cp
	case *Map:
		cp := &Map{keys: slices.Clone(val.keys), vals: make(map[any]any, len(val.vals))}
		for k, mv := range val.vals {
			cp.vals[k] = Clone(mv)
		}
		return cp
	case *Set:
		cp := &Set{elems: make([]any, len(val.elems))}
		for i, e := range val.elems {
			cp.elems[i] = Clone(e)
		}
		return cp
	case map[string]any:
		cp := make(map[string]any, len(val))
		for k, fv := range val {
			cp[k] = Clone(fv)
		}
		return cp
	case []any:
		cp := make([]any, len(val))
		for i, item := range val {
			cp[i] = Clone(item)
		}
		return cp
	case map[any]any:
		cp := make(map[any]any, len(val))
		for k, mv := range val {
			cp[k] = Clone(mv)
		}
		return cp
	default:
		return val
	}
}

// FromGo returns a deep copy of v with plain Go composites converted to
// containers: map[string]any becomes a [Record], []any a [List] and
// map[any]any a [Map]. Existing containers are deep-copied and their
// children converted.
func FromGo(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case map[string]any:
		r := &Record{fields: make(map[string]any, len(val))}
		for k, fv := range val {
			r.fields[k] = FromGo(fv)
		}
		return r
	case []any:
		l := &List{items: make([]any, len(val))}
		for i, item := range val {
			l.items[i] = FromGo(item)
		}
		return l
	case map[any]any:
		m := NewMap()
		keys := make([]any, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		slices.SortFunc(keys, func(a, b any) int {
			return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
		})
		for _, k := range keys {
			m.keys = append(m.keys, k)
			m.vals[k] = FromGo(val[k])
		}
		return m
	case *Record:
		r := &Record{fields: make(map[string]any, len(val.fields))}
		for k, fv := range val.fields {
			r.fields[k] = FromGo(fv)
		}
		return r
	case *List:
		l := &List{items: make([]any, len(val.items))}
		for i, item := range val.items {
			l.items[i] = FromGo(item)
		}
		return l
	case *Map:
		m := &Map{keys: slices.Clone(val.keys), vals: make(map[any]any, len(val.vals))}
		for k, mv := range val.vals {
			m.vals[k] = FromGo(mv)
		}
		return m
	case *Set:
		s := &Set{elems: make([]any, len(val.elems))}
		for i, e := range val.elems {
			s.elems[i] = FromGo(e)
		}
		return s
	default:
		return val
	}
}

// Plain converts containers back to plain Go values suitable for
// encoding/json and YAML encoders. Map keys are rendered with fmt.Sprint
// and sets become slices in insertion order.
func Plain(v any) any {
	switch val := v.(type) {
	case *Record:
		out := make(map[string]any, len(val.fields))
		for k, fv := range val.fields {
			out[k] = Plain(fv)
		}
		return out
	case *List:
		return plainSlice(val.items)
	case *Set:
		return plainSlice(val.elems)
	case *Map:
		out := make(map[string]any, len(val.keys))
		for _, k := range val.keys {
			out[fmt.Sprint(k)] = Plain(val.vals[k])
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, fv := range val {
			out[k] = Plain(fv)
		}
		return out
	case []any:
		return plainSlice(val)
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, mv := range val {
			out[fmt.Sprint(k)] = Plain(mv)
		}
		return out
	default:
		return v
	}
}

func plainSlice(items []any) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = Plain(item)
	}
	return out
}
