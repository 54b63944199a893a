package tree

import (
	"maps"

	"github.com/erraggy/treepatch/internal/maputil"
)

// Record is a string-keyed record.
type Record struct {
	fields map[string]any
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{fields: make(map[string]any)}
}

// RecordOf wraps fields without copying them.
// The caller must not keep using fields directly afterwards.
func RecordOf(fields map[string]any) *Record {
	if fields == nil {
		fields = make(map[string]any)
	}
	return &Record{fields: fields}
}

// Kind implements Container.
func (r *Record) Kind() Kind { return KindRecord }

// Len implements Container.
func (r *Record) Len() int { return len(r.fields) }

// Get implements Container.
func (r *Record) Get(key string) (any, bool) {
	v, ok := r.fields[key]
	return v, ok
}

// Has implements Container.
func (r *Record) Has(key string) bool {
	_, ok := r.fields[key]
	return ok
}

// Set implements Container.
func (r *Record) Set(key string, v any) error {
	r.fields[key] = v
	return nil
}

// Delete implements Container.
func (r *Record) Delete(key string) error {
	delete(r.fields, key)
	return nil
}

// InsertAt implements Container. Records are not positional.
func (r *Record) InsertAt(int, any) error { return unsupported(KindRecord, "insert") }

// RemoveAt implements Container. Records are not positional.
func (r *Record) RemoveAt(int) error { return unsupported(KindRecord, "remove at index") }

// Append implements Container. Records are not positional.
func (r *Record) Append(any) error { return unsupported(KindRecord, "append") }

// ShallowCopy implements Container.
func (r *Record) ShallowCopy() Container {
	return &Record{fields: maps.Clone(r.fields)}
}

// Range implements Container. Keys are visited in sorted order.
func (r *Record) Range(fn func(key string, v any) bool) {
	for _, k := range maputil.SortedKeys(r.fields) {
		if !fn(k, r.fields[k]) {
			return
		}
	}
}

// Keys returns the field names in sorted order.
func (r *Record) Keys() []string {
	return maputil.SortedKeys(r.fields)
}

var _ Container = (*Record)(nil)
