// Package applier replays patch lists against trees and live drafts.
//
// # Overview
//
// Patches are applied in order. Before replay the list is scanned from the
// end for the last patch that replaces the whole state (an add, replace or
// move with an empty path); everything before it is pruned, because it would
// only edit content that is about to be discarded. The remaining patches are
// then resolved and dispatched on the kind of container that holds their
// final segment:
//
//	op       record    sequence                  map       set
//	add      set key   "-" appends, else insert  set key   add element
//	remove   delete    remove at index           delete    delete by value
//	replace  set key   set at index              set key   error
//
// A path whose parent is a string edits a character range of that string;
// see [ApplyString].
//
// # Usage
//
// The simplest entry point converts plain Go values, applies patches through
// the default copy-on-write producer, and returns the new state:
//
//	state, err := applier.Apply(map[string]any{"pets": []any{}}, patches)
//
// An [Applier] carries reusable configuration and returns an [ApplyResult]
// with counts and warnings:
//
//	a := applier.New()
//	a.StrictStrings = true
//	result, err := a.Apply(state, patches)
//	for _, w := range result.Warnings {
//	    fmt.Println(w)
//	}
//
// Live drafts are edited in place with [ApplyDraft]. On error a produced
// state is never published, but a live draft is left partially edited and
// must be discarded.
//
// # Security
//
// Paths may not traverse records or sequences through "__proto__" or
// "constructor", nor func values through "prototype". These segments are
// configurable with [WithReservedKeys] and [WithCallableReservedKeys];
// violations abort the whole call with a patcherrors.SecurityError.
package applier
