package tree

import (
	"slices"
	"strconv"
)

// Set is an insertion-ordered collection of unique elements.
// Membership is decided by [Equal]. Positions exist only so that paths can
// address an element; they carry no identity.
type Set struct {
	elems []any
}

// NewSet returns a set of elems with duplicates dropped.
func NewSet(elems ...any) *Set {
	s := &Set{elems: make([]any, 0, len(elems))}
	for _, e := range elems {
		s.Add(e)
	}
	return s
}

// Kind implements Container.
func (s *Set) Kind() Kind { return KindSet }

// Len implements Container.
func (s *Set) Len() int { return len(s.elems) }

// Elements returns the elements in insertion order.
func (s *Set) Elements() []any {
	return slices.Clone(s.elems)
}

// Contains reports whether an element equal to v is present.
func (s *Set) Contains(v any) bool {
	return s.indexOf(v) >= 0
}

// Add inserts v unless an equal element is present and reports whether it did.
func (s *Set) Add(v any) bool {
	if s.Contains(v) {
		return false
	}
	s.elems = append(s.elems, v)
	return true
}

// Remove deletes the element equal to v and reports whether one was present.
func (s *Set) Remove(v any) bool {
	i := s.indexOf(v)
	if i < 0 {
		return false
	}
	s.elems = slices.Delete(s.elems, i, i+1)
	return true
}

// ReplaceAt swaps the element at position i for v without moving it.
// Drafts use this to relink a copied element.
func (s *Set) ReplaceAt(i int, v any) error {
	if i < 0 || i >= len(s.elems) {
		return outOfRange(i, len(s.elems))
	}
	if j := s.indexOf(v); j >= 0 && j != i {
		return ErrDuplicate
	}
	s.elems[i] = v
	return nil
}

func (s *Set) indexOf(v any) int {
	for i, e := range s.elems {
		if Equal(e, v) {
			return i
		}
	}
	return -1
}

// Get implements Container. The key is a position.
func (s *Set) Get(key string) (any, bool) {
	i, err := ParseIndex(key)
	if err != nil || i >= len(s.elems) {
		return nil, false
	}
	return s.elems[i], true
}

// Has implements Container. The key is a position.
func (s *Set) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Set implements Container. Sets have no slot to replace in place.
func (s *Set) Set(string, any) error { return unsupported(KindSet, "replace") }

// Delete implements Container by removing the element at the position key.
func (s *Set) Delete(key string) error {
	i, err := ParseIndex(key)
	if err != nil {
		return err
	}
	return s.RemoveAt(i)
}

// InsertAt implements Container. Sets have no insertion positions.
func (s *Set) InsertAt(int, any) error { return unsupported(KindSet, "insert") }

// RemoveAt implements Container.
func (s *Set) RemoveAt(i int) error {
	if i < 0 || i >= len(s.elems) {
		return outOfRange(i, len(s.elems))
	}
	s.elems = slices.Delete(s.elems, i, i+1)
	return nil
}

// Append implements Container by adding v. Duplicates are ignored.
func (s *Set) Append(v any) error {
	s.Add(v)
	return nil
}

// ShallowCopy implements Container.
func (s *Set) ShallowCopy() Container {
	return &Set{elems: slices.Clone(s.elems)}
}

// Range implements Container.
func (s *Set) Range(fn func(key string, v any) bool) {
	for i, v := range s.elems {
		if !fn(strconv.Itoa(i), v) {
			return
		}
	}
}

var _ Container = (*Set)(nil)
