package image

import (
	"bytes"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"net/http"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"  // Register BMP format
	_ "golang.org/x/image/tiff" // Register TIFF format
	_ "golang.org/x/image/webp" // Register WebP format
)

var ErrEmpty = errors.New("image data is empty")

var contentTypes = map[string]string{
	"gif":  "image/gif",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"bmp":  "image/bmp",
	"tiff": "image/tiff",
	"webp": "image/webp",
}

// Info describes an encoded image.
type Info struct {
	Format string
	Width  int
	Height int
}

// ContentType returns the MIME type of the image format.
func (i *Info) ContentType() string {
	return contentTypes[i.Format]
}

// Inspect reads the format and dimensions of an encoded image. Only the
// header is decoded.
func Inspect(data []byte) (*Info, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode image header")
	}

	return &Info{
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}

// ContentType returns the MIME type of an encoded image, falling back to
// content sniffing for formats that are not registered.
func ContentType(data []byte) string {
	if info, err := Inspect(data); err == nil {
		if ct := info.ContentType(); ct != "" {
			return ct
		}
	}
	return http.DetectContentType(data)
}
