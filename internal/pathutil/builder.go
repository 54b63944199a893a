package pathutil

import (
	"strconv"
	"strings"
)

// PointerBuilder provides efficient incremental JSON Pointer construction.
// Uses push/pop semantics to avoid allocations during traversal.
// Segments are stored decoded; escaping happens in String().
type PointerBuilder struct {
	segments []string
	length   int // escaped length including separators
}

// Push adds a segment to the pointer.
func (p *PointerBuilder) Push(segment string) {
	p.segments = append(p.segments, segment)
	p.length += 1 + len(Escape(segment))
}

// PushIndex adds a sequence index segment.
func (p *PointerBuilder) PushIndex(i int) {
	p.Push(strconv.Itoa(i))
}

// Pop removes the last segment.
func (p *PointerBuilder) Pop() {
	if len(p.segments) == 0 {
		return
	}
	last := p.segments[len(p.segments)-1]
	p.segments = p.segments[:len(p.segments)-1]
	p.length -= 1 + len(Escape(last))
}

// Len returns the number of segments.
func (p *PointerBuilder) Len() int {
	return len(p.segments)
}

// Reset clears the builder for reuse.
func (p *PointerBuilder) Reset() {
	p.segments = p.segments[:0]
	p.length = 0
}

// String materializes the pointer. Only call when the pointer is needed.
func (p *PointerBuilder) String() string {
	if len(p.segments) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(p.length)
	for _, seg := range p.segments {
		b.WriteByte('/')
		b.WriteString(Escape(seg))
	}
	return b.String()
}
