package patch

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/wI2L/jsondiff"

	"github.com/erraggy/treepatch/patcherrors"
)

// FromJSONPatch converts a decoded RFC 6902 document.
func FromJSONPatch(ops jsonpatch.Patch) (Patches, error) {
	patches := make(Patches, 0, len(ops))
	for i, op := range ops {
		kind := op.Kind()
		if err := checkInteropOp(kind, i); err != nil {
			return nil, err
		}
		p := Patch{Op: Op(kind)}

		ptr, err := op.Path()
		if err != nil {
			return nil, fmt.Errorf("patch: operation %d: %w", i, err)
		}
		if p.Path, err = ParsePointer(ptr); err != nil {
			return nil, fmt.Errorf("patch: operation %d: %w", i, err)
		}

		switch p.Op {
		case OpMove:
			from, err := op.From()
			if err != nil {
				return nil, fmt.Errorf("patch: operation %d: %w", i, err)
			}
			if p.From, err = ParsePointer(from); err != nil {
				return nil, fmt.Errorf("patch: operation %d: %w", i, err)
			}
		case OpAdd, OpReplace:
			if p.Value, err = op.ValueInterface(); err != nil {
				return nil, fmt.Errorf("patch: operation %d: %w", i, err)
			}
		}
		patches = append(patches, p)
	}
	return patches, nil
}

// FromJSONDiff converts a patch produced by jsondiff.Compare or
// jsondiff.CompareJSON.
func FromJSONDiff(ops jsondiff.Patch) (Patches, error) {
	patches := make(Patches, 0, len(ops))
	for i, op := range ops {
		if err := checkInteropOp(op.Type, i); err != nil {
			return nil, err
		}
		path, err := ParsePointer(op.Path)
		if err != nil {
			return nil, fmt.Errorf("patch: operation %d: %w", i, err)
		}
		p := Patch{Op: Op(op.Type), Path: path}
		switch p.Op {
		case OpMove:
			if p.From, err = ParsePointer(op.From); err != nil {
				return nil, fmt.Errorf("patch: operation %d: %w", i, err)
			}
		case OpAdd, OpReplace:
			p.Value = op.Value
		}
		patches = append(patches, p)
	}
	return patches, nil
}

func checkInteropOp(kind string, index int) error {
	switch Op(kind) {
	case OpAdd, OpRemove, OpReplace, OpMove:
		return nil
	case "copy", "test":
		return &patcherrors.OperationError{
			Op:      kind,
			Message: fmt.Sprintf("operation %d has no equivalent", index),
		}
	default:
		return &patcherrors.OperationError{
			Op:        kind,
			IsUnknown: true,
			Message:   fmt.Sprintf("operation %d", index),
		}
	}
}
