package pathutil

import "sync"

const (
	defaultPointerCap = 8  // Most patch paths are <8 segments deep
	maxPointerCap     = 64 // Don't pool excessively deep pointers
)

var pointerBuilderPool = sync.Pool{
	New: func() any {
		return &PointerBuilder{
			segments: make([]string, 0, defaultPointerCap),
		}
	},
}

// Get retrieves a PointerBuilder from the pool, reset and ready to use.
func Get() *PointerBuilder {
	p := pointerBuilderPool.Get().(*PointerBuilder)
	p.Reset()
	return p
}

// Put returns a PointerBuilder to the pool if not oversized.
func Put(p *PointerBuilder) {
	if p == nil || cap(p.segments) > maxPointerCap {
		return // Let GC collect oversized builders
	}
	pointerBuilderPool.Put(p)
}
