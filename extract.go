package circlecrop

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"github.com/disintegration/imaging"
	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
)

// Extract produces the circular crop of src for a circle of the given radius.
// The output is a d x d image, d = round(2*radius), with every pixel outside
// the inscribed circle fully transparent and an anti-aliased edge.
//
// The whole source image is stretched to fill the d x d square. The live
// pan/zoom transform is not consulted, so the result is the same no matter
// how the preview was positioned.
//
// Extract reads only its arguments and is safe for concurrent use.
func Extract(src image.Image, radius float64) (*image.NRGBA, error) {
	if src == nil || src.Bounds().Empty() {
		return nil, ErrNoImageLoaded
	}
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("%w: radius %v", ErrDegenerateViewport, radius)
	}
	d := int(math.Round(2 * radius))
	if d <= 0 {
		return nil, fmt.Errorf("%w: radius %v", ErrDegenerateViewport, radius)
	}

	scaled := imaging.Resize(src, d, d, imaging.Lanczos)

	mask, err := circleCoverage(d)
	if err != nil {
		return nil, err
	}

	dst := image.NewNRGBA(image.Rect(0, 0, d, d))
	draw.DrawMask(dst, dst.Bounds(), scaled, image.Point{}, mask, image.Point{}, draw.Src)
	return dst, nil
}

// circleCoverage rasterizes an anti-aliased disc inscribed in a d x d square.
// Only the alpha channel of the result is meaningful.
func circleCoverage(d int) (*image.RGBA, error) {
	dc := gg.NewContext(d, d)
	defer func() { _ = dc.Close() }()

	half := float64(d) / 2
	dc.SetRGBA(1, 1, 1, 1)
	dc.DrawCircle(half, half, half)
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("fill crop circle: %w", err)
	}
	return toRGBA(dc.Image()), nil
}

// EncodeResult encodes img as PNG and returns the bytes as standard base64
// text.
func EncodeResult(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := WriteResult(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// WriteResult writes img to w as PNG.
func WriteResult(w io.Writer, img image.Image) error {
	if img == nil {
		return ErrNoImageLoaded
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode crop: %w", err)
	}
	return nil
}
