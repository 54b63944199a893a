package applier

import (
	"errors"
	"fmt"
	"reflect"
	"slices"

	"github.com/erraggy/treepatch/draft"
	"github.com/erraggy/treepatch/internal/pathutil"
	"github.com/erraggy/treepatch/patch"
	"github.com/erraggy/treepatch/patcherrors"
	"github.com/erraggy/treepatch/tree"
)

// replayer holds the per-call state of a single replay.
type replayer struct {
	a        *Applier
	d        *draft.Draft
	result   *ApplyResult
	log      patch.Logger
	reserved []string
	callable []string
}

// location is a resolved patch path: the value holding the final segment
// and, when there is one, the container holding that value.
type location struct {
	base any
	key  string

	holder    tree.Container
	holderKey string
}

func (a *Applier) replay(d *draft.Draft, patches patch.Patches, result *ApplyResult) error {
	r := &replayer{
		a:        a,
		d:        d,
		result:   result,
		log:      a.logger().With("patches", len(patches)),
		reserved: a.reservedKeys(),
		callable: a.callableReservedKeys(),
	}

	start := 0
	if i, ok := lastWholeStatePatch(patches); ok {
		p := patches[i]
		if err := r.replaceWholeState(p); err != nil {
			return &ApplyError{PatchIndex: i, Op: p.Op, Path: p.Path.Pointer(), Cause: err}
		}
		result.PatchesPruned = i
		result.PatchesApplied++
		a.Metrics.observePruned(i)
		a.Metrics.observeApplied(string(p.Op))
		r.log.Debug("replaced whole state", "index", i, "op", p.Op, "pruned", i)
		start = i + 1
	}

	for i := start; i < len(patches); i++ {
		p := patches[i]
		applied, err := r.apply(i, p)
		if err != nil {
			return &ApplyError{PatchIndex: i, Op: p.Op, Path: p.Path.Pointer(), Cause: err}
		}
		if applied {
			result.PatchesApplied++
			a.Metrics.observeApplied(string(p.Op))
			r.log.Debug("applied patch", "index", i, "op", p.Op, "path", p.Path.Pointer())
		}
	}
	return nil
}

// lastWholeStatePatch finds the last patch that replaces the whole state.
// Everything before it is irrelevant to the result.
func lastWholeStatePatch(patches patch.Patches) (int, bool) {
	for i := len(patches) - 1; i >= 0; i-- {
		p := patches[i]
		if !p.Path.IsRoot() {
			continue
		}
		switch p.Op {
		case patch.OpReplace, patch.OpAdd, patch.OpMove:
			return i, true
		}
	}
	return 0, false
}

func (r *replayer) replaceWholeState(p patch.Patch) error {
	var next any
	switch p.Op {
	case patch.OpMove:
		from, err := r.resolve(p.From)
		if err != nil {
			return err
		}
		v, err := from.value(p.From)
		if err != nil {
			return err
		}
		next = tree.FromGo(v)
	default:
		next = tree.FromGo(p.Value)
	}
	return r.d.SetRoot(next)
}

// apply replays one patch and reports whether it changed the state.
func (r *replayer) apply(i int, p patch.Patch) (bool, error) {
	if !p.Op.Valid() {
		return false, &patcherrors.OperationError{Op: string(p.Op), Path: p.Path.Pointer(), IsUnknown: true}
	}
	if p.Path.IsRoot() {
		if p.Op == patch.OpRemove {
			return false, &patcherrors.PathError{Message: "cannot remove the whole value"}
		}
		return true, r.replaceWholeState(p)
	}
	if p.Op == patch.OpMove {
		return true, r.move(p)
	}

	loc, err := r.resolve(p.Path)
	if err != nil {
		return false, err
	}

	switch base := loc.base.(type) {
	case string:
		return r.editString(i, loc, base, p)
	case tree.Container:
		return r.editContainer(i, base, loc.key, p)
	default:
		return false, notEditable(p.Path, loc.base)
	}
}

// resolve walks every segment but the last from the writable root, making
// each container on the way writable.
func (r *replayer) resolve(path patch.Path) (*location, error) {
	cur, err := r.d.Root()
	if err != nil {
		return nil, err
	}
	if path.IsRoot() {
		return &location{base: cur}, nil
	}

	pb := pathutil.Get()
	defer pathutil.Put(pb)

	loc := &location{key: path.Last()}
	for _, seg := range path.Parent() {
		if err := r.guard(cur, seg, path); err != nil {
			return nil, err
		}
		c, ok := cur.(tree.Container)
		if !ok {
			return nil, &patcherrors.PathError{
				Path:    path.Pointer(),
				At:      pb.String(),
				Message: fmt.Sprintf("cannot traverse into %s value", describe(cur)),
			}
		}
		pb.Push(seg)
		next, err := r.d.Child(c, seg)
		if err != nil {
			return nil, &patcherrors.PathError{Path: path.Pointer(), At: pb.String(), Message: "no such entry", Cause: err}
		}
		loc.holder, loc.holderKey = c, seg
		cur = next
	}

	if k := tree.Classify(cur); !k.IsContainer() && k != tree.KindString {
		return nil, notEditable(path, cur)
	}
	loc.base = cur
	return loc, nil
}

// guard rejects reserved segments before they are looked up.
func (r *replayer) guard(cur any, seg string, path patch.Path) error {
	switch tree.Classify(cur) {
	case tree.KindRecord, tree.KindSequence:
		if slices.Contains(r.reserved, seg) {
			return &patcherrors.SecurityError{Path: path.Pointer(), Segment: seg, Message: "reserved key"}
		}
	}
	if isCallable(cur) && slices.Contains(r.callable, seg) {
		return &patcherrors.SecurityError{Path: path.Pointer(), Segment: seg, Message: "reserved key on callable value"}
	}
	return nil
}

// sameValue reports identity for comparable values and false otherwise.
func sameValue(a, b any) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || ta == nil || !ta.Comparable() {
		return false
	}
	return a == b
}

func isCallable(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
}

// value returns the entry addressed by the location.
func (loc *location) value(path patch.Path) (any, error) {
	if path.IsRoot() {
		return loc.base, nil
	}
	c, ok := loc.base.(tree.Container)
	if !ok {
		return nil, notEditable(path, loc.base)
	}
	v, ok := c.Get(loc.key)
	if !ok {
		return nil, &patcherrors.PathError{Path: path.Pointer(), Message: "no such entry"}
	}
	return v, nil
}

func (r *replayer) editString(i int, loc *location, s string, p patch.Patch) (bool, error) {
	if loc.holder == nil {
		if r.a.StrictStrings {
			return false, &patcherrors.PathError{
				Path:    p.Path.Pointer(),
				Message: "string edit has no enclosing container",
			}
		}
		r.warn(&ApplyWarning{
			Category:   WarnOrphanStringEdit,
			PatchIndex: i,
			Path:       p.Path.Pointer(),
			Message:    "string edit has no enclosing container; skipped",
		})
		return false, nil
	}

	out, err := spliceString(s, p, r.a.StringUnits)
	if err != nil {
		return false, err
	}
	if err := writeBack(loc.holder, loc.holderKey, out); err != nil {
		return false, containerError(p, loc.holder, err)
	}
	return true, nil
}

// writeBack stores v at key in c, replacing set elements positionally.
func writeBack(c tree.Container, key string, v any) error {
	if s, ok := c.(*tree.Set); ok {
		i, err := tree.ParseIndex(key)
		if err != nil {
			return err
		}
		return s.ReplaceAt(i, v)
	}
	return c.Set(key, v)
}

func (r *replayer) editContainer(i int, c tree.Container, key string, p patch.Patch) (bool, error) {
	var err error
	switch c.Kind() {
	case tree.KindRecord, tree.KindMap:
		switch p.Op {
		case patch.OpAdd, patch.OpReplace:
			err = c.Set(key, r.fresh(p.Value))
		case patch.OpRemove:
			if !c.Has(key) {
				r.warn(&ApplyWarning{Category: WarnMissingKey, PatchIndex: i, Path: p.Path.Pointer(), Message: "key not present"})
				return false, nil
			}
			err = c.Delete(key)
		}

	case tree.KindSequence:
		switch p.Op {
		case patch.OpAdd:
			if key == patch.AppendSegment {
				err = c.Append(r.fresh(p.Value))
				break
			}
			var idx int
			if idx, err = tree.ParseIndex(key); err == nil {
				err = c.InsertAt(idx, r.fresh(p.Value))
			}
		case patch.OpRemove:
			var idx int
			if idx, err = tree.ParseIndex(key); err == nil {
				err = c.RemoveAt(idx)
			}
		case patch.OpReplace:
			err = c.Set(key, r.fresh(p.Value))
		}

	case tree.KindSet:
		s, ok := c.(*tree.Set)
		if !ok {
			return false, &patcherrors.OperationError{Op: string(p.Op), Kind: c.Kind().String(), Path: p.Path.Pointer(), Message: fmt.Sprintf("unsupported set type %T", c)}
		}
		switch p.Op {
		case patch.OpAdd:
			s.Add(r.fresh(p.Value))
		case patch.OpRemove:
			if !s.Remove(p.Value) {
				r.warn(&ApplyWarning{Category: WarnMissingSetElement, PatchIndex: i, Path: p.Path.Pointer(), Message: "value not present in set"})
				return false, nil
			}
		case patch.OpReplace:
			return false, &patcherrors.OperationError{
				Op:      string(p.Op),
				Kind:    tree.KindSet.String(),
				Path:    p.Path.Pointer(),
				Message: "set elements have no addressable slot",
			}
		}
	}

	if err != nil {
		return false, containerError(p, c, err)
	}
	return true, nil
}

// fresh deep-copies a patch value into containers owned by the draft.
func (r *replayer) fresh(v any) any {
	out := tree.FromGo(v)
	r.d.Adopt(out)
	return out
}

func (r *replayer) move(p patch.Patch) error {
	if p.From.IsRoot() {
		return &patcherrors.PathError{Path: p.From.Pointer(), Message: "cannot move the whole value"}
	}
	if len(p.From) < len(p.Path) && p.Path[:len(p.From)].Equal(p.From) {
		return &patcherrors.PathError{Path: p.Path.Pointer(), Message: "cannot move a value into itself"}
	}

	from, err := r.resolve(p.From)
	if err != nil {
		return err
	}
	to, err := r.resolve(p.Path)
	if err != nil {
		return err
	}
	if sameValue(from.base, to.base) && from.key == to.key {
		return nil
	}

	src, ok := from.base.(tree.Container)
	if !ok {
		return &patcherrors.OperationError{Op: string(p.Op), Kind: tree.Classify(from.base).String(), Path: p.From.Pointer()}
	}
	dst, ok := to.base.(tree.Container)
	if !ok {
		return &patcherrors.OperationError{Op: string(p.Op), Kind: tree.Classify(to.base).String(), Path: p.Path.Pointer()}
	}

	v, err := from.value(p.From)
	if err != nil {
		return err
	}
	moved := r.fresh(v)

	if list, ok := src.(*tree.List); ok && sameValue(src, dst) {
		return moveWithinList(p, list, from.key, to.key, moved)
	}

	if err := checkInsert(dst, to.key); err != nil {
		return containerError(p, dst, err)
	}
	if err := removeEntry(src, from.key, moved); err != nil {
		return containerError(p, src, err)
	}
	if err := insertEntry(dst, to.key, moved); err != nil {
		return containerError(p, dst, err)
	}
	return nil
}

// moveWithinList reorders a single sequence. Indices are checked before the
// sequence is touched.
func moveWithinList(p patch.Patch, l *tree.List, fromKey, toKey string, v any) error {
	fi, err := tree.ParseIndex(fromKey)
	if err != nil {
		return containerError(p, l, err)
	}
	ti := l.Len() - 1
	if toKey != patch.AppendSegment {
		if ti, err = tree.ParseIndex(toKey); err != nil {
			return containerError(p, l, err)
		}
	}
	if fi >= l.Len() || ti >= l.Len() {
		return containerError(p, l, fmt.Errorf("%w: move %d to %d (length %d)", tree.ErrIndexOutOfRange, fi, ti, l.Len()))
	}
	if fi == ti {
		return nil
	}

	if fi < ti {
		if err := l.RemoveAt(fi); err != nil {
			return containerError(p, l, err)
		}
		return l.InsertAt(ti, v)
	}
	if err := l.InsertAt(ti, v); err != nil {
		return containerError(p, l, err)
	}
	return l.RemoveAt(fi + 1)
}

// checkInsert verifies that insertEntry(c, key, ...) can succeed.
func checkInsert(c tree.Container, key string) error {
	if c.Kind() != tree.KindSequence || key == patch.AppendSegment {
		return nil
	}
	idx, err := tree.ParseIndex(key)
	if err != nil {
		return err
	}
	if idx > c.Len() {
		return fmt.Errorf("%w: %d (length %d)", tree.ErrIndexOutOfRange, idx, c.Len())
	}
	return nil
}

// removeEntry deletes the move source. Sets delete by value.
func removeEntry(c tree.Container, key string, v any) error {
	switch c.Kind() {
	case tree.KindSequence:
		idx, err := tree.ParseIndex(key)
		if err != nil {
			return err
		}
		return c.RemoveAt(idx)
	case tree.KindSet:
		if s, ok := c.(*tree.Set); ok {
			s.Remove(v)
			return nil
		}
		return c.Delete(key)
	default:
		return c.Delete(key)
	}
}

// insertEntry writes the move destination. Sets add the value.
func insertEntry(c tree.Container, key string, v any) error {
	switch c.Kind() {
	case tree.KindSequence:
		if key == patch.AppendSegment {
			return c.Append(v)
		}
		idx, err := tree.ParseIndex(key)
		if err != nil {
			return err
		}
		return c.InsertAt(idx, v)
	case tree.KindSet:
		return c.Append(v)
	default:
		return c.Set(key, v)
	}
}

func (r *replayer) warn(w *ApplyWarning) {
	r.result.AddWarning(w)
	r.result.PatchesSkipped++
	r.a.Metrics.observeWarning(w)
	r.log.Warn(w.Message, "category", w.Category, "index", w.PatchIndex, "path", w.Path)
}

// containerError converts container failures into typed errors.
func containerError(p patch.Patch, c tree.Container, err error) error {
	switch {
	case errors.Is(err, tree.ErrUnsupported):
		return &patcherrors.OperationError{Op: string(p.Op), Kind: c.Kind().String(), Path: p.Path.Pointer(), Message: err.Error()}
	case errors.Is(err, tree.ErrIndexOutOfRange), errors.Is(err, tree.ErrInvalidIndex), errors.Is(err, tree.ErrDuplicate):
		return &patcherrors.PathError{Path: p.Path.Pointer(), Message: c.Kind().String() + " edit failed", Cause: err}
	default:
		return err
	}
}

func notEditable(path patch.Path, v any) error {
	return &patcherrors.PathError{
		Path:    path.Pointer(),
		Message: fmt.Sprintf("parent is %s, not a container or string", describe(v)),
	}
}

func describe(v any) string {
	if v == nil {
		return "null"
	}
	if k := tree.Classify(v); k != tree.KindOther {
		return "a " + k.String()
	}
	return fmt.Sprintf("a %T", v)
}
