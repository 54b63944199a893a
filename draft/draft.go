package draft

import (
	"errors"
	"fmt"

	"github.com/erraggy/treepatch/patch"
	"github.com/erraggy/treepatch/tree"
)

var (
	// ErrFinalized is returned when a committed draft is used again.
	ErrFinalized = errors.New("draft: already committed")

	// ErrNoEntry is returned by Child when the key is absent.
	ErrNoEntry = errors.New("draft: no such entry")

	// ErrNotWritable is returned when a container outside the draft's
	// writable set is used as a parent.
	ErrNotWritable = errors.New("draft: container is not writable")
)

// Draft is a copy-on-write view over a base value.
// A Draft is not safe for concurrent use.
type Draft struct {
	base      any
	root      any
	owned     map[tree.Container]struct{}
	committed bool
	logger    patch.Logger
}

// New returns a draft over base. base is never modified. Plain
// map[string]any, []any and map[any]any values are converted with
// tree.FromGo and the converted copy becomes the writable root.
func New(base any) *Draft {
	return newDraft(base, nil)
}

func newDraft(base any, logger patch.Logger) *Draft {
	if logger == nil {
		logger = patch.NopLogger{}
	}
	d := &Draft{
		base:   base,
		root:   base,
		owned:  make(map[tree.Container]struct{}),
		logger: logger,
	}
	switch base.(type) {
	case map[string]any, []any, map[any]any:
		d.root = tree.FromGo(base)
		d.Adopt(d.root)
	}
	return d
}

// Is reports whether v is a live or committed draft.
func Is(v any) bool {
	_, ok := v.(*Draft)
	return ok
}

// Base returns the value the draft was created over.
func (d *Draft) Base() any {
	return d.base
}

// Committed reports whether Commit has been called.
func (d *Draft) Committed() bool {
	return d.committed
}

// Peek returns the current root without making it writable.
// The result must be treated as read-only.
func (d *Draft) Peek() any {
	return d.root
}

// Root returns the writable root. Non-container roots (strings, scalars)
// are returned as-is; use SetRoot to change them.
func (d *Draft) Root() (any, error) {
	if d.committed {
		return nil, ErrFinalized
	}
	c, ok := d.root.(tree.Container)
	if !ok || d.IsWritable(c) {
		return d.root, nil
	}
	cp := c.ShallowCopy()
	d.owned[cp] = struct{}{}
	d.root = cp
	return cp, nil
}

// Child returns the value stored at key in parent, which must be writable.
// A container child that is still shared with the base is shallow-copied,
// written back into parent and returned; the copy is writable from then on.
func (d *Draft) Child(parent tree.Container, key string) (any, error) {
	if d.committed {
		return nil, ErrFinalized
	}
	if !d.IsWritable(parent) {
		return nil, ErrNotWritable
	}
	v, ok := parent.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoEntry, key)
	}
	c, ok := v.(tree.Container)
	if !ok || d.IsWritable(c) {
		return v, nil
	}

	cp := c.ShallowCopy()
	if err := relink(parent, key, cp); err != nil {
		return nil, err
	}
	d.owned[cp] = struct{}{}
	return cp, nil
}

// relink writes a copied child back into its parent.
func relink(parent tree.Container, key string, child tree.Container) error {
	if s, ok := parent.(*tree.Set); ok {
		i, err := tree.ParseIndex(key)
		if err != nil {
			return err
		}
		return s.ReplaceAt(i, child)
	}
	return parent.Set(key, child)
}

// SetRoot replaces the root. Containers in v are adopted as writable, so
// v must not be shared with any other tree.
func (d *Draft) SetRoot(v any) error {
	if d.committed {
		return ErrFinalized
	}
	d.root = v
	d.Adopt(v)
	return nil
}

// Adopt marks every container in v as writable. Use it for values built
// fresh for this draft (for example by tree.FromGo or tree.Clone) so that
// later edits do not copy them again.
func (d *Draft) Adopt(v any) {
	c, ok := v.(tree.Container)
	if !ok {
		return
	}
	d.owned[c] = struct{}{}
	c.Range(func(_ string, child any) bool {
		d.Adopt(child)
		return true
	})
}

// IsWritable reports whether c belongs to this draft.
func (d *Draft) IsWritable(c tree.Container) bool {
	_, ok := d.owned[c]
	return ok
}

// Commit finalizes the draft and returns the produced state. If nothing was
// written the base itself is returned, or its converted copy for plain
// Go composites.
func (d *Draft) Commit() (any, error) {
	if d.committed {
		return nil, ErrFinalized
	}
	d.committed = true
	d.logger.Debug("draft committed", "copied", len(d.owned))
	return d.root, nil
}
