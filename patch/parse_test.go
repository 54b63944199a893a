package patch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/treepatch/patcherrors"
)

const yamlPatches = `
- op: add
  path: /pets/-
  value:
    name: Rex
    tags: [good, dog]
- op: remove
  path: [pets, 0]
- op: replace
  path: /title/3
  value: "xyz"
  length: 2
- op: move
  from: /a
  path: /b
`

func TestParseYAML(t *testing.T) {
	patches, err := Parse([]byte(yamlPatches))
	require.NoError(t, err)
	require.Len(t, patches, 4)

	assert.Equal(t, OpAdd, patches[0].Op)
	assert.Equal(t, Path{"pets", "-"}, patches[0].Path)
	assert.Equal(t, map[string]any{"name": "Rex", "tags": []any{"good", "dog"}}, patches[0].Value)

	assert.Equal(t, Path{"pets", "0"}, patches[1].Path)

	require.NotNil(t, patches[2].Length)
	assert.Equal(t, 2, *patches[2].Length)

	assert.Equal(t, OpMove, patches[3].Op)
	assert.Equal(t, Path{"a"}, patches[3].From)
}

func TestParseJSON(t *testing.T) {
	data := []byte(`[
		{"op": "add", "path": "/a/b", "value": [1, 2]},
		{"op": "remove", "path": ["s", 4], "length": 3}
	]`)

	patches, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, patches, 2)
	assert.Equal(t, []any{1, 2}, patches[0].Value)
	assert.Equal(t, Path{"s", "4"}, patches[1].Path)
	assert.Equal(t, 3, patches[1].Len())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "not a sequence", input: `op: add`},
		{name: "bad pointer", input: `[{op: add, path: "no-slash"}]`},
		{name: "bad length", input: `[{op: remove, path: /s/0, length: many}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, patcherrors.ErrParse))
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "patches.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlPatches), 0o600))

	patches, err := ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, patches, 4)

	_, err = ParseFile(filepath.Join(dir, "missing.yaml"))
	var pe *patcherrors.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Path, "missing.yaml")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("op: add"), 0o600))
	_, err = ParseFile(bad)
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, bad, pe.Path)
}

func TestMarshalRoundTrip(t *testing.T) {
	patches := Patches{
		{Op: OpAdd, Path: Path{"a/b", "-"}, Value: map[string]any{"k": "v"}},
		{Op: OpRemove, Path: Path{"s", "1"}, Length: Int(2)},
		{Op: OpMove, Path: Path{"x"}, From: Path{"y"}},
	}

	data, err := Marshal(patches)
	require.NoError(t, err)

	got, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, patches, got)
}
