// Package treepatch replays structural patches against trees of records,
// sequences, maps, sets and strings.
//
// A patch is a single add, remove, replace or move addressed by a path of
// string segments. A list of patches is replayed in order against either a
// plain state, which is drafted copy-on-write and never modified, or a live
// draft, which is edited in place.
//
// # Overview
//
// The library is organised into these packages:
//
//   - patch: the patch data model, JSON Pointer paths, YAML/JSON decoding,
//     validation, logging adapters and conversion from RFC 6902 libraries
//   - tree: the container model (Record, List, Map, Set), deep copy and
//     structural equality
//   - draft: copy-on-write drafts and the Producer interface
//   - applier: the replay engine, string splicing and Prometheus metrics
//   - patcherrors: typed errors and sentinels for errors.Is and errors.As
//
// # Installation
//
//	go get github.com/erraggy/treepatch
//
// # Quick Start
//
// Apply a decoded patch document to a plain state:
//
//	import (
//		"github.com/erraggy/treepatch/applier"
//		"github.com/erraggy/treepatch/patch"
//	)
//
//	patches, err := patch.ParseFile("changes.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	state, err := applier.Apply(map[string]any{"pets": []any{}}, patches)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Replay onto a live draft and commit it yourself:
//
//	d := draft.New(state)
//	if _, err := applier.ApplyDraft(d, patches); err != nil {
//		log.Fatal(err)
//	}
//	next, err := d.Commit()
//
// Convert a diff produced by github.com/wI2L/jsondiff:
//
//	diff, _ := jsondiff.Compare(oldDoc, newDoc)
//	patches, err := patch.FromJSONDiff(diff)
//
// # Semantics
//
// Before replay, every patch before the last whole-state replacement is
// pruned. The final path segment is then interpreted by the container that
// holds it: record and map keys, sequence indices (with "-" to append), set
// positions (removal is by value) or string character offsets. Paths that
// traverse "__proto__" or "constructor" through records and sequences, or
// "prototype" through func values, are rejected.
//
// See the applier package documentation for the full dispatch table.
package treepatch
