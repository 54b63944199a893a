package tree

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	m1 := NewMap()
	_ = m1.Store("a", 1)
	_ = m1.Store("b", 2)
	m2 := NewMap()
	_ = m2.Store("b", 2.0)
	_ = m2.Store("a", 1)

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{name: "int and float", a: 1, b: 1.0, want: true},
		{name: "uint8 and int64", a: uint8(3), b: int64(3), want: true},
		{name: "json number", a: json.Number("2.5"), b: 2.5, want: true},
		{name: "different numbers", a: 1, b: 2, want: false},
		{name: "number and string", a: 1, b: "1", want: false},
		{name: "strings", a: "x", b: "x", want: true},
		{name: "nil", a: nil, b: nil, want: true},
		{name: "nil and zero", a: nil, b: 0, want: false},
		{name: "record and plain object", a: RecordOf(map[string]any{"a": 1}), b: map[string]any{"a": 1.0}, want: true},
		{name: "record key mismatch", a: RecordOf(map[string]any{"a": 1}), b: RecordOf(map[string]any{"b": 1}), want: false},
		{name: "list order matters", a: NewList(1, 2), b: NewList(2, 1), want: false},
		{name: "list and plain array", a: NewList(1, 2), b: []any{1, 2}, want: true},
		{name: "set order ignored", a: NewSet(1, 2), b: NewSet(2, 1), want: true},
		{name: "set size differs", a: NewSet(1, 2), b: NewSet(1), want: false},
		{name: "map order ignored", a: m1, b: m2, want: true},
		{name: "list and set", a: NewList(1), b: NewSet(1), want: false},
		{name: "record and scalar", a: NewRecord(), b: "x", want: false},
		{name: "slices of non-any", a: []int{1}, b: []int{1}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, Equal(tt.b, tt.a), "Equal is symmetric")
		})
	}
}

func TestEqualNonComparableDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		Equal(map[string]int{"a": 1}, map[string]int{"a": 1})
		Equal(func() {}, func() {})
	})
}
