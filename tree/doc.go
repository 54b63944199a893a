// Package tree provides the container model that patches are replayed against.
//
// A tree is any nesting of the following values:
//
//   - [Record]: string-keyed fields (a plain object)
//   - [List]: an ordered sequence addressed by 0-based index
//   - [Map]: an insertion-ordered associative map with comparable keys
//   - [Set]: an insertion-ordered collection of unique elements
//   - strings, numbers, booleans and nil
//
// Every container implements [Container], a capability set of keyed and
// positional operations. Capabilities a kind does not have (inserting into a
// record, replacing a set element in place) fail with [ErrUnsupported] so the
// caller can dispatch on [Kind] instead of probing concrete types.
//
// # Converting Plain Values
//
// Documents decoded from JSON or YAML use map[string]any and []any. [FromGo]
// converts them into containers, copying as it goes; [Plain] converts back:
//
//	root := tree.FromGo(map[string]any{"tags": []any{"a", "b"}})
//	data, _ := json.Marshal(tree.Plain(root))
//
// # Sets and Positions
//
// Sets keep insertion order so a path segment can address an element by
// position. Membership is still decided by [Equal], never by position.
package tree
