// Package imageload decodes user supplied background images.
package imageload

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeError reports an image that could not be loaded.
type DecodeError struct {
	Name string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("decode image: %v", e.Err)
	}
	return fmt.Sprintf("decode image %q: %v", e.Name, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Decode reads a complete image from r. The format is sniffed.
func Decode(name string, r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, &DecodeError{Name: name, Err: err}
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, &DecodeError{Name: name, Err: fmt.Errorf("empty %s image", format)}
	}
	return img, nil
}

// LoadAsync decodes data on its own goroutine and hands the result to done.
// done is not called if ctx is cancelled first.
func LoadAsync(ctx context.Context, name string, data []byte, done func(image.Image, error)) {
	go func() {
		img, err := Decode(name, bytes.NewReader(data))
		if ctx.Err() != nil {
			return
		}
		done(img, err)
	}()
}
