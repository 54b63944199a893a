package testutil

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/treepatch/patch"
	"github.com/erraggy/treepatch/tree"
)

// TestNewSimpleState verifies the plain fixture shape.
func TestNewSimpleState(t *testing.T) {
	state := NewSimpleState()

	assert.Equal(t, "Pet Store", state["title"])
	require.IsType(t, []any{}, state["pets"])
	assert.Len(t, state["pets"], 2)
	assert.Equal(t, map[string]any{"name": "Ada"}, state["owner"])
}

// TestNewSimpleStateIsFresh verifies each call returns an independent value.
func TestNewSimpleStateIsFresh(t *testing.T) {
	a := NewSimpleState()
	a["title"] = "changed"
	assert.Equal(t, "Pet Store", NewSimpleState()["title"])
}

// TestNewDetailedState verifies every container kind is present.
func TestNewDetailedState(t *testing.T) {
	state := NewDetailedState()

	kinds := map[string]tree.Kind{
		"title":  tree.KindString,
		"pets":   tree.KindSequence,
		"owner":  tree.KindRecord,
		"labels": tree.KindMap,
		"tags":   tree.KindSet,
	}
	for key, want := range kinds {
		v, ok := state.Get(key)
		require.True(t, ok, "missing %s", key)
		assert.Equal(t, want, tree.Classify(v), key)
	}

	labels, _ := state.Get("labels")
	assert.Equal(t, []any{1, 2}, labels.(*tree.Map).Keys())
}

// TestNewSamplePatches verifies the sample patches are valid.
func TestNewSamplePatches(t *testing.T) {
	patches := NewSamplePatches()
	assert.Len(t, patches, 5)
	assert.Empty(t, patch.Validate(patches))
}

// TestWriteTempYAML verifies a patch list round-trips through a YAML file.
func TestWriteTempYAML(t *testing.T) {
	path := WriteTempYAML(t, NewSamplePatches())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Len(t, decoded, 5)
	assert.Equal(t, "/pets/-", decoded[0]["path"])
	assert.Equal(t, "/owner", decoded[4]["from"])

	parsed, err := patch.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, NewSamplePatches()[2].Path, parsed[2].Path)
}

// TestWriteTempJSON verifies a value is written as JSON.
func TestWriteTempJSON(t *testing.T) {
	path := WriteTempJSON(t, NewSimpleState())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Pet Store", decoded["title"])
}
