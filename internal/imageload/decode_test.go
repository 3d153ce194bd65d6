package imageload

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func encoded(t *testing.T, enc func(*bytes.Buffer, image.Image) error) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, enc(&buf, image.NewRGBA(image.Rect(0, 0, 5, 3))))
	return buf.Bytes()
}

func TestDecodeFormats(t *testing.T) {
	pngData := encoded(t, func(b *bytes.Buffer, m image.Image) error { return png.Encode(b, m) })
	bmpData := encoded(t, func(b *bytes.Buffer, m image.Image) error { return bmp.Encode(b, m) })

	for name, data := range map[string][]byte{"a.png": pngData, "a.bmp": bmpData} {
		img, err := Decode(name, bytes.NewReader(data))
		require.NoError(t, err, name)
		assert.Equal(t, image.Rect(0, 0, 5, 3), img.Bounds())
	}
}

func TestDecodeError(t *testing.T) {
	_, err := Decode("notes.txt", bytes.NewReader([]byte("hello")))
	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "notes.txt", de.Name)
	assert.ErrorIs(t, err, image.ErrFormat)
	assert.Contains(t, err.Error(), "notes.txt")
}

func TestLoadAsync(t *testing.T) {
	data := encoded(t, func(b *bytes.Buffer, m image.Image) error { return png.Encode(b, m) })
	got := make(chan image.Image, 1)
	LoadAsync(context.Background(), "bg.png", data, func(img image.Image, err error) {
		assert.NoError(t, err)
		got <- img
	})
	select {
	case img := <-got:
		assert.NotNil(t, img)
	case <-time.After(2 * time.Second):
		t.Fatal("no result")
	}
}

func TestLoadAsyncCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := make(chan struct{}, 1)
	LoadAsync(ctx, "bg.png", []byte("x"), func(image.Image, error) { called <- struct{}{} })
	select {
	case <-called:
		t.Fatal("callback ran after cancel")
	case <-time.After(50 * time.Millisecond):
	}
}
