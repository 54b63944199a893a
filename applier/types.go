package applier

import (
	"fmt"

	"github.com/erraggy/treepatch/patch"
)

// ApplyResult contains the result of replaying a patch list.
type ApplyResult struct {
	// State is the produced state. For ApplyDraft it is the draft itself.
	State any

	// PatchesApplied is the number of patches that changed the state,
	// including a whole-state patch that short-circuited replay.
	PatchesApplied int

	// PatchesPruned is the number of patches skipped because a later
	// patch replaced the whole state.
	PatchesPruned int

	// PatchesSkipped is the number of patches that were skipped with a warning.
	PatchesSkipped int

	// Warnings contains non-fatal issues as plain messages.
	Warnings []string

	// StructuredWarnings contains detailed warning information with context.
	StructuredWarnings ApplyWarnings
}

// AddWarning adds a structured warning and populates the legacy Warnings slice.
func (r *ApplyResult) AddWarning(w *ApplyWarning) {
	r.StructuredWarnings = append(r.StructuredWarnings, w)
	r.Warnings = append(r.Warnings, w.String())
}

// HasChanges returns true if any patches were applied.
func (r *ApplyResult) HasChanges() bool {
	return r.PatchesApplied > 0
}

// HasWarnings returns true if any warnings were generated.
func (r *ApplyResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// WarningCategory identifies the type of apply warning.
type WarningCategory string

const (
	// WarnOrphanStringEdit indicates a string edit whose string is the
	// whole state, so there is no container to write the result into.
	WarnOrphanStringEdit WarningCategory = "orphan_string_edit"
	// WarnMissingSetElement indicates a set remove whose value was absent.
	WarnMissingSetElement WarningCategory = "missing_set_element"
	// WarnMissingKey indicates a record or map remove whose key was absent.
	WarnMissingKey WarningCategory = "missing_key"
)

// ApplyWarning represents a structured warning from patch replay.
type ApplyWarning struct {
	// Category identifies the type of warning.
	Category WarningCategory
	// PatchIndex is the zero-based index of the patch.
	PatchIndex int
	// Path is the JSON Pointer of the patch path.
	Path string
	// Message describes the warning.
	Message string
	// Cause is the underlying error, if applicable.
	Cause error
}

// String returns a formatted warning message.
func (w *ApplyWarning) String() string {
	if w.Cause != nil {
		return fmt.Sprintf("patches[%d] path %q: %v", w.PatchIndex, w.Path, w.Cause)
	}
	if w.Message != "" {
		return fmt.Sprintf("patches[%d] path %q: %s", w.PatchIndex, w.Path, w.Message)
	}
	return fmt.Sprintf("patches[%d] path %q: %s", w.PatchIndex, w.Path, w.Category)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (w *ApplyWarning) Unwrap() error {
	return w.Cause
}

// ApplyWarnings is a collection of ApplyWarning.
type ApplyWarnings []*ApplyWarning

// Strings returns the warning messages.
func (ws ApplyWarnings) Strings() []string {
	result := make([]string, len(ws))
	for i, w := range ws {
		if w == nil {
			continue
		}
		result[i] = w.String()
	}
	return result
}

// ByCategory filters warnings by category.
func (ws ApplyWarnings) ByCategory(cat WarningCategory) ApplyWarnings {
	var result ApplyWarnings
	for _, w := range ws {
		if w != nil && w.Category == cat {
			result = append(result, w)
		}
	}
	return result
}

// ApplyError reports the patch that aborted a replay.
type ApplyError struct {
	// PatchIndex is the zero-based index of the failing patch.
	PatchIndex int

	// Op is the failing patch's operation.
	Op patch.Op

	// Path is the JSON Pointer of the failing patch's path.
	Path string

	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *ApplyError) Error() string {
	return fmt.Sprintf("applier: patches[%d] %s %q: %v", e.PatchIndex, e.Op, e.Path, e.Cause)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ApplyError) Unwrap() error {
	return e.Cause
}
