package export

import (
	"bytes"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PolyBoard/internal/render"
	"PolyBoard/internal/state"
)

func frame() render.Frame {
	return render.Frame{
		Vertices: []state.Vertex{
			state.NewVertex(state.Point{X: 50, Y: 50}),
			state.NewVertex(state.Point{X: 150, Y: 60}),
			state.NewVertex(state.Point{X: 120, Y: 140}),
		},
		PulseRadius: 12,
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	f := frame()
	f.Background = image.NewRGBA(image.Rect(0, 0, 8, 8))
	require.NoError(t, WritePDF(&buf, 200, 160, f))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestRGB(t *testing.T) {
	r, g, b := rgb(render.ActiveColor)
	assert.Equal(t, [3]int{255, 0, 0}, [3]int{r, g, b})
}
