package tree

import (
	"encoding/json"
	"reflect"
)

// Equal reports whether a and b are structurally equal.
//
// Numbers compare by value regardless of their Go type, so int(1), uint8(1),
// float64(1) and json.Number("1") are all equal. Plain map[string]any and
// []any values compare equal to the records and lists they would convert to.
// Map and set equality ignore insertion order.
func Equal(a, b any) bool {
	ka, kb := Classify(a), Classify(b)
	if ka.IsContainer() || kb.IsContainer() {
		if ka != kb {
			return false
		}
		return equalContainers(asContainer(a), asContainer(b))
	}
	return reflect.DeepEqual(normalizeNumber(a), normalizeNumber(b))
}

func asContainer(v any) Container {
	switch val := v.(type) {
	case Container:
		return val
	case map[string]any:
		return RecordOf(val)
	case []any:
		return NewList(val...)
	case map[any]any:
		m := NewMap()
		for k, mv := range val {
			_ = m.Store(k, mv)
		}
		return m
	}
	return nil
}

func equalContainers(a, b Container) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Len() != b.Len() {
		return false
	}
	switch av := a.(type) {
	case *Map:
		bv, ok := b.(*Map)
		if !ok {
			return false
		}
		for _, k := range av.keys {
			other, found := bv.Load(k)
			if !found || !Equal(av.vals[k], other) {
				return false
			}
		}
		return true
	case *Set:
		bv, ok := b.(*Set)
		if !ok {
			return false
		}
		for _, e := range av.elems {
			if !bv.Contains(e) {
				return false
			}
		}
		return true
	}
	equal := true
	a.Range(func(key string, v any) bool {
		other, ok := b.Get(key)
		if !ok || !Equal(v, other) {
			equal = false
		}
		return equal
	})
	return equal
}

// normalizeNumber converts numeric values to float64 for comparison.
func normalizeNumber(v any) any {
	switch val := v.(type) {
	case int:
		return float64(val)
	case int8:
		return float64(val)
	case int16:
		return float64(val)
	case int32:
		return float64(val)
	case int64:
		return float64(val)
	case uint:
		return float64(val)
	case uint8:
		return float64(val)
	case uint16:
		return float64(val)
	case uint32:
		return float64(val)
	case uint64:
		return float64(val)
	case float32:
		return float64(val)
	case json.Number:
		if f, err := val.Float64(); err == nil {
			return f
		}
		return string(val)
	default:
		return v
	}
}
