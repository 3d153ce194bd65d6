package exchange

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PolyBoard/internal/state"
)

func TestExportFormat(t *testing.T) {
	vs := []state.Vertex{
		state.NewVertex(state.Point{X: 1, Y: 2}),
		state.NewVertex(state.Point{X: 3, Y: 4}),
	}
	data, err := Export(vs)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"x":1,"y":2},{"x":3,"y":4}]`, string(data))
}

func TestExportEmptyAndUndefined(t *testing.T) {
	data, err := Export(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	data, err = Export([]state.Vertex{state.NewVertex(state.Point{}), state.UndefinedVertex()})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"x":0,"y":0},{}]`, string(data))
}

func TestRoundTrip(t *testing.T) {
	in := []byte(`[{"x":1,"y":2},{"x":3,"y":4}]`)
	vs, err := Import(in)
	require.NoError(t, err)
	require.Len(t, vs, 2)
	assert.Equal(t, state.Point{X: 1, Y: 2}, vs[0].Pos)
	assert.Equal(t, state.Point{X: 3, Y: 4}, vs[1].Pos)
	assert.NotEqual(t, vs[0].ID, vs[1].ID)

	out, err := Export(vs)
	require.NoError(t, err)
	assert.JSONEq(t, string(in), string(out))
}

func TestImportRejects(t *testing.T) {
	cases := map[string]string{
		"not json":     "not json",
		"empty":        "",
		"empty array":  "[]",
		"single point": `[{"x":1,"y":2}]`,
		"object":       `{"x":1,"y":2}`,
		"number":       "42",
		"null":         "null",
		"truncated":    `[{"x":1,"y":2},`,
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			vs, err := Import([]byte(text))
			assert.Nil(t, vs)
			var fe *FormatError
			require.True(t, errors.As(err, &fe), "got %v", err)
			assert.NotEmpty(t, fe.Error())
		})
	}
}

func TestImportKeepsMalformedElements(t *testing.T) {
	vs, err := Import([]byte(` [{"x":1,"y":2}, {"x":"a"}, 7, {"x":5,"y":6,"z":1}] `))
	require.NoError(t, err)
	require.Len(t, vs, 4)
	assert.True(t, vs[0].Defined)
	assert.False(t, vs[1].Defined)
	assert.False(t, vs[2].Defined)
	assert.True(t, vs[3].Defined)
	assert.Equal(t, state.Point{X: 5, Y: 6}, vs[3].Pos)
}

func TestDecodeAllowsShortLists(t *testing.T) {
	vs, err := Decode([]byte("[]"))
	require.NoError(t, err)
	assert.Empty(t, vs)

	vs, err = Decode([]byte(`[{"x":1,"y":2}]`))
	require.NoError(t, err)
	assert.Len(t, vs, 1)

	_, err = Decode([]byte("{}"))
	var fe *FormatError
	assert.ErrorAs(t, err, &fe)
}
