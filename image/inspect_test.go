package image

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	return img
}

func TestInspect(t *testing.T) {
	img := testImage(32, 16)

	var pngBuf, jpegBuf, gifBuf bytes.Buffer
	require.NoError(t, png.Encode(&pngBuf, img))
	require.NoError(t, jpeg.Encode(&jpegBuf, img, nil))
	require.NoError(t, gif.Encode(&gifBuf, img, nil))

	for _, tc := range []struct {
		name        string
		data        []byte
		format      string
		contentType string
	}{
		{"png", pngBuf.Bytes(), "png", "image/png"},
		{"jpeg", jpegBuf.Bytes(), "jpeg", "image/jpeg"},
		{"gif", gifBuf.Bytes(), "gif", "image/gif"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			info, err := Inspect(tc.data)
			require.NoError(t, err)
			require.Equal(t, tc.format, info.Format)
			require.Equal(t, 32, info.Width)
			require.Equal(t, 16, info.Height)
			require.Equal(t, tc.contentType, info.ContentType())
			require.Equal(t, tc.contentType, ContentType(tc.data))
		})
	}
}

func TestInspect_Invalid(t *testing.T) {
	_, err := Inspect(nil)
	require.ErrorIs(t, err, ErrEmpty)

	_, err = Inspect([]byte("definitely not an image"))
	require.Error(t, err)

	require.Equal(t, "text/plain; charset=utf-8", ContentType([]byte("definitely not an image")))
}
