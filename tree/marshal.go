package tree

import (
	"encoding/json"

	"go.yaml.in/yaml/v4"
)

// MarshalJSON encodes the record as a JSON object.
func (r *Record) MarshalJSON() ([]byte, error) { return json.Marshal(Plain(r)) }

// MarshalJSON encodes the list as a JSON array.
func (l *List) MarshalJSON() ([]byte, error) { return json.Marshal(Plain(l)) }

// MarshalJSON encodes the map as a JSON object keyed by the fmt form of each key.
func (m *Map) MarshalJSON() ([]byte, error) { return json.Marshal(Plain(m)) }

// MarshalJSON encodes the set as a JSON array in insertion order.
func (s *Set) MarshalJSON() ([]byte, error) { return json.Marshal(Plain(s)) }

// UnmarshalJSON decodes a JSON object, converting nested values with [FromGo].
func (r *Record) UnmarshalJSON(data []byte) error {
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*r = *FromGo(fields).(*Record)
	return nil
}

// UnmarshalJSON decodes a JSON array, converting nested values with [FromGo].
func (l *List) UnmarshalJSON(data []byte) error {
	var items []any
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	if items == nil {
		items = []any{}
	}
	*l = *FromGo(items).(*List)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (r *Record) MarshalYAML() (any, error) { return Plain(r), nil }

// MarshalYAML implements yaml.Marshaler.
func (l *List) MarshalYAML() (any, error) { return Plain(l), nil }

// MarshalYAML implements yaml.Marshaler.
func (m *Map) MarshalYAML() (any, error) { return Plain(m), nil }

// MarshalYAML implements yaml.Marshaler.
func (s *Set) MarshalYAML() (any, error) { return Plain(s), nil }

// UnmarshalYAML decodes a YAML mapping, converting nested values with [FromGo].
func (r *Record) UnmarshalYAML(node *yaml.Node) error {
	var fields map[string]any
	if err := node.Decode(&fields); err != nil {
		return err
	}
	*r = *FromGo(fields).(*Record)
	return nil
}

var (
	_ json.Marshaler   = (*Record)(nil)
	_ json.Unmarshaler = (*Record)(nil)
	_ json.Unmarshaler = (*List)(nil)
	_ yaml.Marshaler   = (*Set)(nil)
	_ yaml.Unmarshaler = (*Record)(nil)
)
