// Package patch defines the patch model replayed by the applier package.
//
// A [Patch] is one structural edit: an [Op], a [Path] into the tree, and the
// operands the op needs. Patches are applied in order, so a list of them
// ([Patches]) describes a complete state transition.
//
// # Paths
//
// A [Path] is a sequence of decoded segments. Numeric segments address
// sequence positions, the segment "-" appends to a sequence, and the empty
// path addresses the whole value. Paths decode from either a JSON Pointer
// string or an array of segments:
//
//	- op: add
//	  path: /pets/-
//	  value: {name: Rex}
//	- op: remove
//	  path: [pets, 0]
//
// # Parsing and Validation
//
// [Parse] and [ParseFile] read YAML or JSON documents. [Validate] reports
// structural problems without applying anything:
//
//	patches, err := patch.ParseFile("changes.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if errs := patch.Validate(patches); len(errs) > 0 {
//	    for _, e := range errs {
//	        fmt.Println(e.Error())
//	    }
//	}
//
// # RFC 6902 Interop
//
// [FromJSONPatch] converts documents decoded by github.com/evanphx/json-patch/v5
// and [FromJSONDiff] converts diffs produced by github.com/wI2L/jsondiff.
// The copy and test operations have no equivalent here and are rejected.
package patch
