package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

var (
	// ErrEmpty is returned when Decode is given no bytes at all.
	ErrEmpty = errors.New("empty image data")

	// ErrDecode marks data the codec could not turn into a raster.
	ErrDecode = errors.New("failed to decode image")

	// ErrEncode marks a raster the codec could not serialize.
	ErrEncode = errors.New("failed to encode image")
)

// Codec decodes file contents into a raster and encodes a raster back into
// a fixed on-disk format.
type Codec interface {
	// Decode parses data as an image in any registered format.
	Decode(data []byte) (image.Image, error)

	// Encode serializes img in the codec's target format.
	Encode(img image.Image) ([]byte, error)

	// Format returns the lowercase name of the target format (e.g. "png").
	Format() string
}

// PNGCodec decodes any registered format and always encodes PNG.
//
// The zero value is ready to use and applies the default PNG compression
// level.
type PNGCodec struct{}

// NewPNGCodec returns a codec targeting PNG.
func NewPNGCodec() *PNGCodec {
	return &PNGCodec{}
}

// Format returns "png".
func (c *PNGCodec) Format() string { return "png" }

// Decode parses data into a raster.
//
// Returns an error wrapping ErrEmpty for zero-length input and ErrDecode when
// the data is in an unrecognized format or is corrupt.
func (c *PNGCodec) Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrDecode, ErrEmpty)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return img, nil
}

// Encode serializes img as PNG.
func (c *PNGCodec) Encode(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrEncode)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return buf.Bytes(), nil
}
