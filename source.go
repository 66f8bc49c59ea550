package circlecrop

import (
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"

	// Register WebP alongside the standard PNG, JPEG and GIF decoders.
	_ "golang.org/x/image/webp"
)

// LoadImage decodes the image at path, applying any EXIF orientation so the
// picture is upright before it is cropped.
func LoadImage(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", path, err)
	}
	return img, nil
}

// DecodeImage decodes an image from r, applying any EXIF orientation.
func DecodeImage(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}
