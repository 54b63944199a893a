package tree

import (
	"slices"
	"strconv"
)

// List is an ordered sequence addressed by 0-based index.
type List struct {
	items []any
}

// NewList returns a list holding items. The slice is not copied.
func NewList(items ...any) *List {
	return &List{items: items}
}

// Kind implements Container.
func (l *List) Kind() Kind { return KindSequence }

// Len implements Container.
func (l *List) Len() int { return len(l.items) }

// At returns the item at i, or nil when i is out of range.
func (l *List) At(i int) any {
	if i < 0 || i >= len(l.items) {
		return nil
	}
	return l.items[i]
}

// Items returns a copy of the items.
func (l *List) Items() []any {
	return slices.Clone(l.items)
}

// Get implements Container.
func (l *List) Get(key string) (any, bool) {
	i, err := ParseIndex(key)
	if err != nil || i >= len(l.items) {
		return nil, false
	}
	return l.items[i], true
}

// Has implements Container.
func (l *List) Has(key string) bool {
	_, ok := l.Get(key)
	return ok
}

// Set implements Container. The index must already exist.
func (l *List) Set(key string, v any) error {
	i, err := ParseIndex(key)
	if err != nil {
		return err
	}
	if i >= len(l.items) {
		return outOfRange(i, len(l.items))
	}
	l.items[i] = v
	return nil
}

// Delete implements Container by removing the item at the index key.
func (l *List) Delete(key string) error {
	i, err := ParseIndex(key)
	if err != nil {
		return err
	}
	return l.RemoveAt(i)
}

// InsertAt implements Container.
func (l *List) InsertAt(i int, v any) error {
	if i < 0 || i > len(l.items) {
		return outOfRange(i, len(l.items))
	}
	l.items = slices.Insert(l.items, i, v)
	return nil
}

// RemoveAt implements Container.
func (l *List) RemoveAt(i int) error {
	if i < 0 || i >= len(l.items) {
		return outOfRange(i, len(l.items))
	}
	l.items = slices.Delete(l.items, i, i+1)
	return nil
}

// Append implements Container.
func (l *List) Append(v any) error {
	l.items = append(l.items, v)
	return nil
}

// ShallowCopy implements Container.
func (l *List) ShallowCopy() Container {
	return &List{items: slices.Clone(l.items)}
}

// Range implements Container.
func (l *List) Range(fn func(key string, v any) bool) {
	for i, v := range l.items {
		if !fn(strconv.Itoa(i), v) {
			return
		}
	}
}

var _ Container = (*List)(nil)
