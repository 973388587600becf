package jsontree

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/quarryapp/quarry/internal/errors"
)

const searchResponse = `{
  "took": 5,
  "timed_out": false,
  "hits": {
    "total": { "value": 2, "relation": "eq" },
    "max_score": 1.0,
    "hits": [
      { "_index": "logs", "_id": "1", "_source": { "message": "hello", "level": null } },
      { "_index": "logs", "_id": "2", "_source": { "message": "world", "count": 42 } }
    ]
  }
}`

func TestParse_SearchResponse(t *testing.T) {
	root, err := Parse([]byte(searchResponse))
	require.NoError(t, err)

	require.Equal(t, KindObject, root.Kind)
	require.Len(t, root.Children, 3)

	// Key order is preserved as received, not sorted.
	assert.Equal(t, "took", root.Children[0].Key)
	assert.Equal(t, "timed_out", root.Children[1].Key)
	assert.Equal(t, "hits", root.Children[2].Key)

	took := root.Children[0]
	assert.Equal(t, KindNumber, took.Kind)
	assert.Equal(t, "5", took.ValueString())

	timedOut := root.Children[1]
	assert.Equal(t, KindBool, timedOut.Kind)
	assert.Equal(t, "false", timedOut.ValueString())

	hits := root.Children[2].Child(2)
	require.NotNil(t, hits)
	assert.Equal(t, KindArray, hits.Kind)
	assert.Len(t, hits.Children, 2)
	assert.Equal(t, "[0]", hits.Children[0].Label())
	assert.Equal(t, "[1]", hits.Children[1].Label())
}

func TestParse_Scalars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  Kind
		value string
	}{
		{"string", `"hello"`, KindString, "hello"},
		{"integer", `42`, KindNumber, "42"},
		{"float", `1.5`, KindNumber, "1.5"},
		{"big integer keeps literal form", `9007199254740993`, KindNumber, "9007199254740993"},
		{"true", `true`, KindBool, "true"},
		{"false", `false`, KindBool, "false"},
		{"null", `null`, KindNull, "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := Parse([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.kind, node.Kind)
			assert.Equal(t, tt.value, node.ValueString())
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing value", `{"a":}`},
		{"unterminated object", `{"a": 1`},
		{"trailing content", `{} {}`},
		{"empty input", ``},
		{"bare word", `hello`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrInvalidJSON)
		})
	}
}

func TestReconstruct_Lossless(t *testing.T) {
	inputs := []string{
		searchResponse,
		`{}`,
		`[]`,
		`[1, "two", true, null, {"nested": [3.14]}]`,
		`{"b": 1, "a": 2, "escaped \"key\"": "va\nlue"}`,
		`{"unicode": "héllo wörld ⇒"}`,
		`null`,
	}

	for _, input := range inputs {
		root, err := Parse([]byte(input))
		require.NoError(t, err, "input: %s", input)

		out, err := root.Reconstruct()
		require.NoError(t, err)

		// The round trip is lossless: both documents decode to equal values.
		var want, got any
		require.NoError(t, json.Unmarshal([]byte(input), &want))
		require.NoError(t, json.Unmarshal(out, &got))
		assert.Equal(t, want, got, "input: %s", input)
	}
}

func TestReconstruct_PreservesKeyOrder(t *testing.T) {
	input := `{"zebra":1,"alpha":2,"mike":3}`
	root, err := Parse([]byte(input))
	require.NoError(t, err)

	out, err := root.Reconstruct()
	require.NoError(t, err)
	assert.Equal(t, input, string(out))
}

func TestFormatText_PreservesKeyOrder(t *testing.T) {
	formatted, err := FormatText([]byte(`{"zebra":1,"alpha":{"nested":true}}`))
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"zebra\": 1,\n  \"alpha\": {\n    \"nested\": true\n  }\n}", formatted)
}

func TestFormatText_Invalid(t *testing.T) {
	_, err := FormatText([]byte(`{"a":}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidJSON)
}

func TestTreeAndTextConsistent(t *testing.T) {
	// Tree mode and text mode render the same document: reconstructing the
	// tree and re-parsing the formatted text yield equal values.
	root, err := Parse([]byte(searchResponse))
	require.NoError(t, err)

	fromTree, err := root.Reconstruct()
	require.NoError(t, err)

	formatted, err := FormatText([]byte(searchResponse))
	require.NoError(t, err)

	var a, b any
	require.NoError(t, json.Unmarshal(fromTree, &a))
	require.NoError(t, json.Unmarshal([]byte(formatted), &b))
	assert.Equal(t, a, b)
}

func TestNodeLabelsAndTypes(t *testing.T) {
	root, err := Parse([]byte(`{"items": [{"ok": true}], "note": null}`))
	require.NoError(t, err)

	items := root.Children[0]
	assert.Equal(t, "items", items.Label())
	assert.Equal(t, "array", items.Kind.String())
	assert.Equal(t, "[1]", items.ValueString())
	assert.True(t, items.IsBranch())

	first := items.Child(0)
	require.NotNil(t, first)
	assert.Equal(t, "[0]", first.Label())
	assert.Equal(t, "{1}", first.ValueString())

	ok := first.Child(0)
	require.NotNil(t, ok)
	assert.Equal(t, "ok", ok.Label())
	assert.Equal(t, "boolean", ok.Kind.String())
	assert.False(t, ok.IsBranch())

	note := root.Children[1]
	assert.Equal(t, "null", note.Kind.String())
	assert.Equal(t, "null", note.ValueString())

	assert.Nil(t, items.Child(5))
	assert.Nil(t, items.Child(-1))
}

func TestNodeLabel_EmptyMemberKey(t *testing.T) {
	root, err := Parse([]byte(`{"": "anonymous", "named": [1]}`))
	require.NoError(t, err)

	// "" is a legal object key and must not be confused with an array index.
	assert.Equal(t, "", root.Children[0].Label())

	element := root.Children[1].Child(0)
	require.NotNil(t, element)
	assert.Equal(t, "[0]", element.Label())
}
