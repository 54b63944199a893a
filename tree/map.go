package tree

import (
	"fmt"
	"reflect"
	"slices"
)

// Map is an insertion-ordered associative map with comparable keys.
//
// Path segments are strings, so a segment addresses the key equal to it or,
// failing that, the first key whose fmt.Sprint form equals it.
type Map struct {
	keys []any
	vals map[any]any
}

// NewMap returns an empty map.
func NewMap() *Map {
	return &Map{vals: make(map[any]any)}
}

// Kind implements Container.
func (m *Map) Kind() Kind { return KindMap }

// Len implements Container.
func (m *Map) Len() int { return len(m.keys) }

// Load returns the value stored under k.
func (m *Map) Load(k any) (any, bool) {
	if !comparableKey(k) {
		return nil, false
	}
	v, ok := m.vals[k]
	return v, ok
}

// Store writes v under k, keeping the original position of an existing key.
func (m *Map) Store(k, v any) error {
	if !comparableKey(k) {
		return fmt.Errorf("%w: map key of type %T is not comparable", ErrUnsupported, k)
	}
	if _, ok := m.vals[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.vals[k] = v
	return nil
}

// Remove deletes k and reports whether it was present.
func (m *Map) Remove(k any) bool {
	if !comparableKey(k) {
		return false
	}
	if _, ok := m.vals[k]; !ok {
		return false
	}
	delete(m.vals, k)
	if i := slices.Index(m.keys, k); i >= 0 {
		m.keys = slices.Delete(m.keys, i, i+1)
	}
	return true
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []any {
	return slices.Clone(m.keys)
}

// lookup resolves a path segment to a stored key.
func (m *Map) lookup(segment string) (any, bool) {
	if _, ok := m.vals[segment]; ok {
		return segment, true
	}
	for _, k := range m.keys {
		if _, isString := k.(string); isString {
			continue
		}
		if fmt.Sprint(k) == segment {
			return k, true
		}
	}
	return nil, false
}

// Get implements Container.
func (m *Map) Get(key string) (any, bool) {
	k, ok := m.lookup(key)
	if !ok {
		return nil, false
	}
	return m.vals[k], true
}

// Has implements Container.
func (m *Map) Has(key string) bool {
	_, ok := m.lookup(key)
	return ok
}

// Set implements Container. Unknown segments become new string keys.
func (m *Map) Set(key string, v any) error {
	if k, ok := m.lookup(key); ok {
		m.vals[k] = v
		return nil
	}
	return m.Store(key, v)
}

// Delete implements Container.
func (m *Map) Delete(key string) error {
	if k, ok := m.lookup(key); ok {
		m.Remove(k)
	}
	return nil
}

// InsertAt implements Container. Maps are not positional.
func (m *Map) InsertAt(int, any) error { return unsupported(KindMap, "insert") }

// RemoveAt implements Container. Maps are not positional.
func (m *Map) RemoveAt(int) error { return unsupported(KindMap, "remove at index") }

// Append implements Container. Maps are not positional.
func (m *Map) Append(any) error { return unsupported(KindMap, "append") }

// ShallowCopy implements Container.
func (m *Map) ShallowCopy() Container {
	cp := &Map{keys: slices.Clone(m.keys), vals: make(map[any]any, len(m.vals))}
	for k, v := range m.vals {
		cp.vals[k] = v
	}
	return cp
}

// Range implements Container. Keys are visited in insertion order.
func (m *Map) Range(fn func(key string, v any) bool) {
	for _, k := range m.keys {
		if !fn(fmt.Sprint(k), m.vals[k]) {
			return
		}
	}
}

func comparableKey(k any) bool {
	if k == nil {
		return true
	}
	return reflect.TypeOf(k).Comparable()
}

var _ Container = (*Map)(nil)
