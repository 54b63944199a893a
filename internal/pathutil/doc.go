// Package pathutil provides JSON Pointer (RFC 6901) helpers for patch paths.
//
// Patch paths are carried as decoded segments. This package converts between
// the two representations:
//
//	segs, err := pathutil.Split("/a~1b/0") // ["a/b", "0"]
//	ptr := pathutil.Join(segs)             // "/a~1b/0"
//
// # PointerBuilder Usage
//
// [PointerBuilder] uses push/pop semantics so a traversal can track where it
// is without allocating intermediate strings. The pointer is only materialised
// when [PointerBuilder.String] is called, usually to report an error.
//
//	ptr := pathutil.Get()
//	defer pathutil.Put(ptr)
//
//	ptr.Push("items")
//	ptr.PushIndex(3)
//	// ... on failure:
//	return fmt.Errorf("cannot resolve %s", ptr.String()) // "/items/3"
package pathutil
