// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/treepatch/patch"
	"github.com/erraggy/treepatch/tree"
)

// NewSimpleState creates a small plain state for testing.
// Contains a title string, a pets sequence and an owner record.
func NewSimpleState() map[string]any {
	return map[string]any{
		"title": "Pet Store",
		"pets": []any{
			map[string]any{"name": "Rex", "kind": "dog"},
			map[string]any{"name": "Tom", "kind": "cat"},
		},
		"owner": map[string]any{"name": "Ada"},
	}
}

// NewDetailedState creates a state holding every container kind.
// The "labels" map is keyed by integers and "tags" is a set.
func NewDetailedState() *tree.Record {
	labels := tree.NewMap()
	_ = labels.Store(1, "first")
	_ = labels.Store(2, "second")

	state := tree.FromGo(NewSimpleState()).(*tree.Record)
	_ = state.Set("labels", labels)
	_ = state.Set("tags", tree.NewSet("friendly", "indoor"))
	return state
}

// NewSamplePatches creates a patch list that touches every container kind
// of NewDetailedState.
func NewSamplePatches() patch.Patches {
	return patch.Patches{
		{Op: patch.OpAdd, Path: patch.MustParsePointer("/pets/-"), Value: map[string]any{"name": "Polly", "kind": "bird"}},
		{Op: patch.OpReplace, Path: patch.MustParsePointer("/labels/1"), Value: "primary"},
		{Op: patch.OpRemove, Path: patch.MustParsePointer("/tags/1"), Value: "indoor"},
		{Op: patch.OpAdd, Path: patch.MustParsePointer("/title/9"), Value: " Deluxe"},
		{Op: patch.OpMove, From: patch.MustParsePointer("/owner"), Path: patch.MustParsePointer("/pets/0/owner")},
	}
}

// WriteTempYAML marshals a value to YAML and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempYAML(t *testing.T, v any) string {
	t.Helper()

	data, err := yaml.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to marshal value to YAML: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "test.yaml")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to write temporary YAML file: %v", err)
	}

	return tmpFile
}

// WriteTempJSON marshals a value to JSON and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempJSON(t *testing.T, v any) string {
	t.Helper()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal value to JSON: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "test.json")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to write temporary JSON file: %v", err)
	}

	return tmpFile
}
