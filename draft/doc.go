// Package draft provides copy-on-write drafts over immutable trees.
//
// A [Draft] wraps a base value. Nothing is copied until a container is
// written: [Draft.Root] and [Draft.Child] shallow-copy a shared container the
// first time it is reached, relink the copy into its (already writable)
// parent, and remember it as owned so later visits edit it in place.
// [Draft.Commit] returns the resulting state; subtrees that were never
// reached are shared with the base.
//
// A [Producer] runs a [Recipe] against a fresh draft and publishes the
// committed state. [COW] is the default producer:
//
//	next, err := draft.COW{}.Produce(base, func(d *draft.Draft) error {
//	    root, err := d.Root()
//	    if err != nil {
//	        return err
//	    }
//	    return root.(*tree.Record).Set("title", "updated")
//	}, draft.Config{})
//
// When a recipe fails the draft is discarded and the base is untouched.
package draft
