package applier

import (
	"encoding/json"
	"testing"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wI2L/jsondiff"

	"github.com/erraggy/treepatch/patch"
	"github.com/erraggy/treepatch/tree"
)

var documentPairs = []struct {
	name     string
	src, tgt string
}{
	{
		name: "nested edits",
		src:  `{"a":1,"b":{"c":[1,2,3]},"d":"x"}`,
		tgt:  `{"a":2,"b":{"c":[1,3],"e":null},"f":true}`,
	},
	{
		name: "sequence grows",
		src:  `{"l":[1]}`,
		tgt:  `{"l":[1,2,3,{"k":"v"}]}`,
	},
	{
		name: "sequence shrinks",
		src:  `{"l":[1,2,3,4]}`,
		tgt:  `{"l":[9]}`,
	},
	{
		name: "records in sequences",
		src:  `{"pets":[{"name":"Rex"},{"name":"Tom"}]}`,
		tgt:  `{"pets":[{"name":"Tom","age":3}]}`,
	},
	{
		name: "escaped keys",
		src:  `{"a/b":1,"m~n":{"x":1}}`,
		tgt:  `{"a/b":2,"m~n":{}}`,
	},
	{
		name: "empty to deep",
		src:  `{}`,
		tgt:  `{"x":{"y":{"z":[true,false,null]}}}`,
	},
	{
		name: "top-level sequence",
		src:  `[{"id":1},{"id":2}]`,
		tgt:  `[{"id":1,"tags":["a"]}]`,
	},
}

func mustDecode(t *testing.T, doc string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(doc), &v))
	return v
}

func mustEncode(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(tree.Plain(v))
	require.NoError(t, err)
	return string(data)
}

func TestJSONDiffRoundTrip(t *testing.T) {
	for _, tt := range documentPairs {
		t.Run(tt.name, func(t *testing.T) {
			diff, err := jsondiff.CompareJSON([]byte(tt.src), []byte(tt.tgt))
			require.NoError(t, err)

			patches, err := patch.FromJSONDiff(diff)
			require.NoError(t, err)

			got, err := Apply(mustDecode(t, tt.src), patches)
			require.NoError(t, err)
			assertState(t, mustDecode(t, tt.tgt), got)
		})
	}
}

func TestJSONPatchOracle(t *testing.T) {
	for _, tt := range documentPairs {
		t.Run(tt.name, func(t *testing.T) {
			diff, err := jsondiff.CompareJSON([]byte(tt.src), []byte(tt.tgt))
			require.NoError(t, err)
			raw, err := json.Marshal(diff)
			require.NoError(t, err)

			decoded, err := jsonpatch.DecodePatch(raw)
			require.NoError(t, err)
			want, err := decoded.Apply([]byte(tt.src))
			require.NoError(t, err)

			patches, err := patch.FromJSONPatch(decoded)
			require.NoError(t, err)
			got, err := Apply(mustDecode(t, tt.src), patches)
			require.NoError(t, err)

			assert.JSONEq(t, string(want), mustEncode(t, got))
		})
	}
}

func TestJSONDiffFactorizedMove(t *testing.T) {
	src := `{"a":{"x":1,"y":[2,3]},"z":0}`
	tgt := `{"b":{"x":1,"y":[2,3]},"z":0}`

	diff, err := jsondiff.CompareJSON([]byte(src), []byte(tgt), jsondiff.Factorize())
	require.NoError(t, err)

	patches, err := patch.FromJSONDiff(diff)
	require.NoError(t, err)
	require.Len(t, patches, 1)
	assert.Equal(t, patch.OpMove, patches[0].Op)

	got, err := Apply(mustDecode(t, src), patches)
	require.NoError(t, err)
	assertState(t, mustDecode(t, tgt), got)
}

func TestJSONDiffWholeDocumentReplace(t *testing.T) {
	src, tgt := `[1,2]`, `{"a":1}`

	diff, err := jsondiff.CompareJSON([]byte(src), []byte(tgt))
	require.NoError(t, err)
	patches, err := patch.FromJSONDiff(diff)
	require.NoError(t, err)

	result, err := New().Apply(mustDecode(t, src), patches)
	require.NoError(t, err)
	assertState(t, mustDecode(t, tgt), result.State)
	assert.Equal(t, 1, result.PatchesApplied)
}

func TestJSONDiffOfTrees(t *testing.T) {
	base := tree.FromGo(mustDecode(t, `{"pets":[{"name":"Rex"}],"owner":"Ada"}`))
	target := mustDecode(t, `{"pets":[{"name":"Rex","age":4},{"name":"Tom"}]}`)

	diff, err := jsondiff.Compare(base, target)
	require.NoError(t, err)
	patches, err := patch.FromJSONDiff(diff)
	require.NoError(t, err)

	got, err := Apply(base, patches)
	require.NoError(t, err)
	assertState(t, target, got)
	assertState(t, mustDecode(t, `{"pets":[{"name":"Rex"}],"owner":"Ada"}`), base)
}
